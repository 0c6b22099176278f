package routes

import (
	"monauxiliaire/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathContacts = "/contacts"
	PathChat     = "/chat"
)

func addFunnelRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, contactHandler *handlers.ContactHandler, chatHandler *handlers.ChatHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.GetQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
	}

	contacts := rg.Group(PathContacts)
	{
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("", contactHandler.GetContacts)
		contacts.GET("/:id", contactHandler.GetContactByID)
	}

	rg.POST(PathChat, chatHandler.Chat)
}
