package handlers

import (
	"errors"
	"net/http"

	request "monauxiliaire/internal/adapter/http/dto/request"
	response "monauxiliaire/internal/adapter/http/dto/response"
	"monauxiliaire/internal/usecase"
	"monauxiliaire/pkg"

	"github.com/gin-gonic/gin"
)

// ChatHandler relays chat widget messages to the completion provider.
//
// Error envelopes on this surface always carry a `response` fallback: the
// widget renders it as a bot message instead of surfacing the error.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Message requis", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reply, err := h.usecase.Relay(c.Request.Context(), payload.Message, payload.Conversation)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatReply(reply))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMessageRequired):
		return pkg.NewDomainErrorSimple("MESSAGE_REQUIRED", "Message requis", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChatNotConfigured):
		return pkg.NewDomainErrorSimple("CHAT_NOT_CONFIGURED", "Configuration OpenRouter manquante", http.StatusInternalServerError).
			WithResponse(usecase.FallbackReplyUnavailable)
	default:
		return pkg.NewDomainError("CHAT_ERROR", "Erreur du service de chat", err, http.StatusInternalServerError).
			WithResponse(usecase.FallbackReplyUnavailable)
	}
}
