package commands

import (
	"strings"

	"github.com/goliatone/go-mdprogress/internal/logging"
	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

// CommandLogger returns a module-scoped logger for command handlers, tagged
// with the component and command family.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.CommandLogger(provider, name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
