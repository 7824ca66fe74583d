package progresscmd

import (
	"context"
	"sync"

	"github.com/goliatone/go-mdprogress/pkg/interfaces"
)

// Sink receives annotated documents as handlers produce them.
type Sink interface {
	Emit(ctx context.Context, doc *interfaces.Document) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, doc *interfaces.Document) error

// Emit calls f.
func (f SinkFunc) Emit(ctx context.Context, doc *interfaces.Document) error {
	return f(ctx, doc)
}

// Collector is a Sink that keeps every document it receives.
type Collector struct {
	mu   sync.Mutex
	docs []*interfaces.Document
}

// Emit appends doc to the collected set.
func (c *Collector) Emit(_ context.Context, doc *interfaces.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
	return nil
}

// Documents returns the collected documents in emission order.
func (c *Collector) Documents() []*interfaces.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*interfaces.Document(nil), c.docs...)
}

type discardSink struct{}

func (discardSink) Emit(context.Context, *interfaces.Document) error { return nil }
