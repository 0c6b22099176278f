package interfaces

import (
	"context"

	"monauxiliaire/internal/domain/entities"
)

// ICompletionGateway abstracts the external chat-completion provider
// (OpenRouter in production).
//
// Complete forwards the role-tagged turns and returns the first completion's
// text. An empty string with a nil error means the provider answered without
// usable content; the caller substitutes its fallback.
type ICompletionGateway interface {
	Complete(ctx context.Context, turns []entities.ChatTurn) (string, error)
}
