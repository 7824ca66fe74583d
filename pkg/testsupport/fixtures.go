package testsupport

import (
	"encoding/json"
	"os"

	"github.com/goliatone/go-mdprogress/pkg/mdast"
)

func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// LoadTree decodes an mdast JSON fixture.
func LoadTree(path string) (*mdast.Root, error) {
	data, err := LoadFixture(path)
	if err != nil {
		return nil, err
	}
	return mdast.Decode(data)
}

// Canonical re-encodes a node through a generic JSON value so trees can be
// compared with golden files regardless of key order or whitespace.
func Canonical(n mdast.Node) (any, error) {
	data, err := mdast.Marshal(n)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
