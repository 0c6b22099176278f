package chatbot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"monauxiliaire/internal/domain/entities"
)

type stubRelay struct {
	mu      sync.Mutex
	calls   int
	reply   string
	err     error
	gotText string
	gotLen  int
	block   chan struct{}
}

func (s *stubRelay) Relay(_ context.Context, message string, conversation []entities.ChatMessage) (string, error) {
	s.mu.Lock()
	s.calls++
	s.gotText = message
	s.gotLen = len(conversation)
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.reply, s.err
}

func TestController_SeededGreeting(t *testing.T) {
	c := NewController(&stubRelay{})
	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected seeded transcript, got %d messages", len(msgs))
	}
	if msgs[0].ID != 1 || msgs[0].Sender != entities.SenderBot || msgs[0].Text != Greeting {
		t.Fatalf("unexpected greeting message: %+v", msgs[0])
	}
}

func TestController_SendMessage(t *testing.T) {
	t.Run("appends user turn and reply with sequential ids", func(t *testing.T) {
		relay := &stubRelay{reply: "Avec plaisir !"}
		c := NewController(relay)

		c.SendMessage(context.Background(), "  Bonjour  ")

		msgs := c.Messages()
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(msgs))
		}
		if msgs[1].ID != 2 || msgs[1].Sender != entities.SenderUser || msgs[1].Text != "Bonjour" {
			t.Fatalf("unexpected user message: %+v", msgs[1])
		}
		if msgs[2].ID != 3 || msgs[2].Sender != entities.SenderBot || msgs[2].Text != "Avec plaisir !" {
			t.Fatalf("unexpected bot message: %+v", msgs[2])
		}
		if relay.gotText != "Bonjour" {
			t.Fatalf("relay received %q", relay.gotText)
		}
		// Prior transcript excludes the message being sent.
		if relay.gotLen != 1 {
			t.Fatalf("expected 1 prior message, got %d", relay.gotLen)
		}
		if c.Awaiting() {
			t.Fatalf("must not stay awaiting after resolution")
		}
	})

	t.Run("empty trim is ignored", func(t *testing.T) {
		relay := &stubRelay{reply: "x"}
		c := NewController(relay)

		c.SendMessage(context.Background(), "   ")

		if relay.calls != 0 {
			t.Fatalf("relay called for empty input")
		}
		if len(c.Messages()) != 1 {
			t.Fatalf("transcript changed for empty input")
		}
	})

	t.Run("relay failure appends fallback", func(t *testing.T) {
		relay := &stubRelay{err: errors.New("upstream down")}
		c := NewController(relay)

		c.SendMessage(context.Background(), "Bonjour")

		msgs := c.Messages()
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(msgs))
		}
		if msgs[2].Text != FallbackReply || msgs[2].Sender != entities.SenderBot {
			t.Fatalf("expected fallback message, got %+v", msgs[2])
		}
		if c.Awaiting() {
			t.Fatalf("stuck awaiting after failure")
		}
	})

	t.Run("second send while awaiting is dropped", func(t *testing.T) {
		relay := &stubRelay{reply: "ok", block: make(chan struct{})}
		c := NewController(relay)

		done := make(chan struct{})
		go func() {
			c.SendMessage(context.Background(), "premier")
			close(done)
		}()

		for !c.Awaiting() {
		}
		c.SendMessage(context.Background(), "deuxième")

		close(relay.block)
		<-done

		if relay.calls != 1 {
			t.Fatalf("expected one relay call, got %d", relay.calls)
		}
		msgs := c.Messages()
		for _, m := range msgs {
			if m.Text == "deuxième" {
				t.Fatalf("dropped message was appended")
			}
		}
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(msgs))
		}
	})
}
