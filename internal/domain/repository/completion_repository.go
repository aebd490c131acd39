package repository

import "context"

// CompletionClient is the boundary to an external text-completion service.
// The engine treats it as opaque text-in/text-out; anything the model says is
// untrusted until validated.
type CompletionClient interface {
	IsConfigured() bool
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
