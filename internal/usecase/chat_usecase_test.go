package usecase

import (
	"context"
	"errors"
	"testing"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_Relay(t *testing.T) {
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockICompletionGateway(ctrl)
		uc := NewChatUseCase(gw)

		if _, err := uc.Relay(ctx, "   ", nil); !errors.Is(err, ErrMessageRequired) {
			t.Fatalf("expected ErrMessageRequired, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		uc := NewChatUseCase(nil)

		if _, err := uc.Relay(ctx, "Bonjour", nil); !errors.Is(err, ErrChatNotConfigured) {
			t.Fatalf("expected ErrChatNotConfigured, got %v", err)
		}
	})

	t.Run("transcript maps to roles with system prompt first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockICompletionGateway(ctrl)
		uc := NewChatUseCase(gw)

		conversation := []entities.ChatMessage{
			{ID: 1, Text: "Bonjour !", Sender: entities.SenderBot},
			{ID: 2, Text: "Je déménage", Sender: entities.SenderUser},
		}

		gw.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, turns []entities.ChatTurn) (string, error) {
				if len(turns) != 4 {
					t.Fatalf("expected 4 turns, got %d", len(turns))
				}
				if turns[0].Role != "system" || turns[0].Content == "" {
					t.Fatalf("expected leading system turn, got %+v", turns[0])
				}
				if turns[1].Role != "assistant" || turns[2].Role != "user" {
					t.Fatalf("unexpected transcript mapping: %+v", turns[1:3])
				}
				if turns[3].Role != "user" || turns[3].Content != "Quel est le prix ?" {
					t.Fatalf("unexpected final turn: %+v", turns[3])
				}
				return "Cela dépend de la surface.", nil
			})

		reply, err := uc.Relay(ctx, "Quel est le prix ?", conversation)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "Cela dépend de la surface." {
			t.Fatalf("unexpected reply: %q", reply)
		}
	})

	t.Run("blank completion falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockICompletionGateway(ctrl)
		uc := NewChatUseCase(gw)

		gw.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("  ", nil)

		reply, err := uc.Relay(ctx, "Bonjour", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != FallbackReply {
			t.Fatalf("expected fallback reply, got %q", reply)
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockICompletionGateway(ctrl)
		uc := NewChatUseCase(gw)

		gw.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("upstream 502"))

		if _, err := uc.Relay(ctx, "Bonjour", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
