package llm

import (
	"context"
)

// Client is the text-completion contract the rewriter depends on.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
