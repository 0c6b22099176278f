// Package chatbot holds the chat widget's transcript state: optimistic user
// appends, one outstanding relay request at a time, and fixed fallback
// replies when the relay fails.
package chatbot

import (
	"context"
	"strings"
	"sync"
	"time"

	"monauxiliaire/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

// Greeting seeds every fresh transcript.
const Greeting = "Bonjour ! Je suis votre assistant virtuel Mon Auxiliaire. Comment puis-je vous aider avec votre déménagement ?"

// FallbackReply replaces the assistant's turn when the relay fails; the
// conversation continues instead of surfacing an error.
const FallbackReply = "Désolé, je rencontre un problème technique. Vous pouvez nous contacter directement au 06 61 20 69 29 ou utiliser notre formulaire de devis gratuit."

// Relay sends one message plus the prior transcript and returns the
// assistant's reply.
type Relay interface {
	Relay(ctx context.Context, message string, conversation []entities.ChatMessage) (string, error)
}

// Controller is one widget session's transcript. Safe for concurrent use,
// though the widget only ever issues one send at a time.
type Controller struct {
	mu       sync.Mutex
	messages []entities.ChatMessage
	nextID   int
	awaiting bool

	relay Relay
	now   func() time.Time
}

func NewController(relay Relay) *Controller {
	c := &Controller{
		nextID: 1,
		relay:  relay,
		now:    time.Now,
	}
	c.append(Greeting, entities.SenderBot)
	return c
}

// Messages returns a snapshot of the transcript in append order.
func (c *Controller) Messages() []entities.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Awaiting reports whether a relay request is outstanding; the widget
// disables its send control while true.
func (c *Controller) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaiting
}

// SendMessage appends the user's message and the assistant's reply. Empty
// input (after trimming) and sends issued while a request is outstanding are
// ignored. The transcript never stays stuck awaiting: every send resolves
// with either a reply or the fallback.
func (c *Controller) SendMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.awaiting {
		c.mu.Unlock()
		return
	}
	c.awaiting = true
	// The relay gets the transcript as it stood before this message; the
	// user turn itself is passed separately.
	prior := make([]entities.ChatMessage, len(c.messages))
	copy(prior, c.messages)
	c.append(text, entities.SenderUser)
	c.mu.Unlock()

	reply, err := c.relay.Relay(ctx, text, prior)
	if err != nil {
		logrus.Printf("[chatbot] relay failed err=%v", err)
		reply = FallbackReply
	}

	c.mu.Lock()
	c.append(reply, entities.SenderBot)
	c.awaiting = false
	c.mu.Unlock()
}

// append adds a transcript entry. Callers hold mu (or are the constructor).
func (c *Controller) append(text string, sender entities.ChatSender) {
	c.messages = append(c.messages, entities.ChatMessage{
		ID:        c.nextID,
		Text:      text,
		Sender:    sender,
		Timestamp: c.now().UTC(),
	})
	c.nextID++
}
