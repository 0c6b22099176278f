package usecase

import (
	"context"
	"errors"
	"strings"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrMessageRequired   = errors.New("message required")
	ErrChatNotConfigured = errors.New("chat gateway not configured")
)

// FallbackReply is shown whenever the upstream completion carries no usable
// text; FallbackReplyUnavailable whenever the relay itself fails. Both keep
// the chat surface useful by pointing to the phone line.
const (
	FallbackReply            = "Désolé, je rencontre un problème technique. Contactez-nous au 06 61 20 69 29."
	FallbackReplyUnavailable = "Désolé, je rencontre un problème technique. Vous pouvez nous contacter directement au 06 61 20 69 29 ou utiliser notre formulaire de devis gratuit."
)

// systemPrompt pins the assistant to the Mon Auxiliaire persona and topic
// scope. Kept verbatim from the production prompt.
const systemPrompt = `Tu es l'assistant commercial expert de Mon Auxiliaire, une entreprise de déménagement au Maroc. Tu es un expert en déménagement et tu guides les clients sur le site web.

RÈGLES IMPORTANTES:
- Tu représentes uniquement Mon Auxiliaire et ses services
- Tu es expert en déménagement et conseille les clients professionnellement
- Tu restes TOUJOURS dans le sujet du déménagement et des services Mon Auxiliaire
- Tu suggères uniquement nos services
- Tu guides les clients vers notre formulaire de devis gratuit (/devis)
- Tu orientes vers notre numéro de téléphone: 06 61 20 69 29
- Tu ne sors JAMAIS du contexte déménagement/Mon Auxiliaire

NOS SERVICES:
- Déménagement résidentiel (appartements, maisons, villas)
- Déménagement d'entreprise (bureaux, magasins, industries)
- Emballage professionnel et protection des biens
- Stockage sécurisé temporaire ou longue durée
- Transport sécurisé partout au Maroc
- Démontage/remontage de meubles
- Services de nettoyage post-déménagement

CONSEILS DÉMÉNAGEMENT:
- Planification 4-6 semaines à l'avance
- Tri et désencombrement avant le déménagement
- Emballage soigné avec matériaux adaptés
- Étiquetage des cartons par pièce
- Protection des objets fragiles
- Coordination le jour J

HORAIRES: Lundi-Samedi 8h-18h
ZONE: Tout le Maroc (Casablanca, Rabat, Marrakech, etc.)

Réponds en français, sois professionnel et commercial, guide vers nos services.`

// IChatUseCase relays one widget message (plus the prior transcript for
// conversational context) to the external completion provider.
type IChatUseCase interface {
	Relay(ctx context.Context, message string, conversation []entities.ChatMessage) (string, error)
}

type ChatUseCase struct {
	gateway interfaces.ICompletionGateway
}

var _ IChatUseCase = (*ChatUseCase)(nil)

// NewChatUseCase accepts a nil gateway; Relay then fails with
// ErrChatNotConfigured, mirroring a missing provider credential.
func NewChatUseCase(gateway interfaces.ICompletionGateway) *ChatUseCase {
	return &ChatUseCase{gateway: gateway}
}

func (u *ChatUseCase) Relay(ctx context.Context, message string, conversation []entities.ChatMessage) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrMessageRequired
	}
	if u.gateway == nil {
		logrus.Printf("[chat][usecase] relay rejected: gateway not configured")
		return "", ErrChatNotConfigured
	}

	turns := make([]entities.ChatTurn, 0, len(conversation)+2)
	turns = append(turns, entities.ChatTurn{Role: "system", Content: systemPrompt})
	for _, msg := range conversation {
		role := "assistant"
		if msg.Sender == entities.SenderUser {
			role = "user"
		}
		turns = append(turns, entities.ChatTurn{Role: role, Content: msg.Text})
	}
	turns = append(turns, entities.ChatTurn{Role: "user", Content: message})

	reply, err := u.gateway.Complete(ctx, turns)
	if err != nil {
		logrus.Printf("[chat][usecase] relay failed err=%v", err)
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackReply, nil
	}
	return reply, nil
}
