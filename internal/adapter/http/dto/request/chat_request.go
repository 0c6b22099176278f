package request

import "monauxiliaire/internal/domain/entities"

// ChatRequest is the payload of POST /api/chat. Conversation carries the
// widget's prior transcript so the relay stays stateless between requests.
type ChatRequest struct {
	Message      string                 `json:"message"`
	Conversation []entities.ChatMessage `json:"conversation"`
}
