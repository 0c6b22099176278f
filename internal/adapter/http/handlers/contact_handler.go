package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "monauxiliaire/internal/adapter/http/dto/request"
	response "monauxiliaire/internal/adapter/http/dto/response"
	"monauxiliaire/internal/usecase"
	"monauxiliaire/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Données invalides", http.StatusBadRequest)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload request.ContactCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := errInvalidContactPayload.WithDetails(bindingDetails(payload, err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contact, err := h.usecase.CreateContact(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContactError(err, "Erreur lors de l'envoi du message")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("CONTACT_LIST_FAILED", "Erreur lors de la récupération des messages", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContacts(contacts))
}

func (h *ContactHandler) GetContactByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	contact, err := h.usecase.GetContactByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapContactError(err, "Erreur lors de la récupération du message")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContact(contact))
}

func mapContactError(err error, fallback string) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidContactPayload.WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidContactID):
		return errInvalidID
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Message non trouvé", http.StatusNotFound)
	default:
		return pkg.NewDomainError("CONTACT_ERROR", fallback, err, http.StatusInternalServerError)
	}
}
