package ai

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned by providers that answered without text.
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// Provider produces one completion for a system instruction and a user turn.
// Implementations must honour ctx cancellation.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
