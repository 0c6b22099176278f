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

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Données invalides", http.StatusBadRequest)
	errInvalidID           = pkg.NewDomainErrorSimple("INVALID_ID", "ID invalide", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote submissions.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote persists a quote draft submitted by the wizard.
//
// The success status is 200, matching what the funnel frontend checks for.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := errInvalidQuotePayload.WithDetails(bindingDetails(payload, err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err, "Erreur lors de la création du devis")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("QUOTE_LIST_FAILED", "Erreur lors de la récupération des devis", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err, "Erreur lors de la récupération du devis")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error, fallback string) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidQuotePayload.WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return errInvalidID
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Devis non trouvé", http.StatusNotFound)
	default:
		return pkg.NewDomainError("QUOTE_ERROR", fallback, err, http.StatusInternalServerError)
	}
}
