package entities

import "time"

// ChatSender tags who authored a transcript message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one entry of the chat widget transcript. Transcripts live
// for a single browser session and are never persisted.
type ChatMessage struct {
	ID        int        `json:"id"`
	Text      string     `json:"text"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

// ChatTurn is a role-tagged message in the upstream completion API's format.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
