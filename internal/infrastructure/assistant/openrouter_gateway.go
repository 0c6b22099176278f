package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"monauxiliaire/internal/domain/entities"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

var ErrMissingOpenRouterAPIKey = errors.New("missing OPENROUTER_API_KEY")
var ErrChatGatewayNotConfigured = errors.New("chat gateway not configured")

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	completionModel   = "anthropic/claude-3.5-sonnet"
	maxTokens         = 500
	temperature       = 0.7
)

// OpenRouterGateway relays chat turns to OpenRouter's OpenAI-compatible
// chat-completions endpoint.
type OpenRouterGateway struct {
	client   *openai.Client
	mockMode bool
}

func NewOpenRouterGateway(apiKey string) (*OpenRouterGateway, error) {
	if isChatGatewayMockEnabled() {
		logrus.Printf("[chat][gateway] mock mode enabled")
		return &OpenRouterGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		logrus.Printf("[chat][gateway] missing OPENROUTER_API_KEY")
		return nil, ErrMissingOpenRouterAPIKey
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
		option.WithHeader("HTTP-Referer", "https://monauxiliaire.ma"),
		option.WithHeader("X-Title", "Mon Auxiliaire Assistant"),
	)
	logrus.Printf("[chat][gateway] OpenRouter client initialized model=%s", completionModel)

	return &OpenRouterGateway{client: &client}, nil
}

func (g *OpenRouterGateway) Complete(ctx context.Context, turns []entities.ChatTurn) (string, error) {
	if g != nil && g.mockMode {
		logrus.Printf("[chat][gateway] mock complete turns=%d", len(turns))
		return "Bonjour ! Comment puis-je vous aider avec votre déménagement ? N'hésitez pas à demander un devis gratuit sur /devis.", nil
	}

	if g == nil || g.client == nil {
		logrus.Printf("[chat][gateway] gateway not configured")
		return "", ErrChatGatewayNotConfigured
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(turn.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       completionModel,
		Messages:    messages,
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		logrus.Printf("[chat][gateway] completion failed err=%v", err)
		return "", fmt.Errorf("openrouter: %w", err)
	}
	if len(resp.Choices) == 0 {
		logrus.Printf("[chat][gateway] completion returned no choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func isChatGatewayMockEnabled() bool {
	for _, key := range []string{"CHAT_GATEWAY_MOCK", "OPENROUTER_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
