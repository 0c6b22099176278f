package response

import "monauxiliaire/internal/domain/entities"

// Success envelopes for the funnel API. Every 2xx body carries success=true
// next to the named resource key the frontend destructures.

type QuoteEnvelope struct {
	Success bool           `json:"success"`
	Quote   entities.Quote `json:"quote"`
}

func FromQuote(q entities.Quote) QuoteEnvelope {
	return QuoteEnvelope{Success: true, Quote: q}
}

type QuoteListEnvelope struct {
	Success bool             `json:"success"`
	Quotes  []entities.Quote `json:"quotes"`
}

func FromQuotes(quotes []entities.Quote) QuoteListEnvelope {
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return QuoteListEnvelope{Success: true, Quotes: quotes}
}

type ContactEnvelope struct {
	Success bool             `json:"success"`
	Contact entities.Contact `json:"contact"`
}

func FromContact(c entities.Contact) ContactEnvelope {
	return ContactEnvelope{Success: true, Contact: c}
}

type ContactListEnvelope struct {
	Success  bool               `json:"success"`
	Contacts []entities.Contact `json:"contacts"`
}

func FromContacts(contacts []entities.Contact) ContactListEnvelope {
	if contacts == nil {
		contacts = []entities.Contact{}
	}
	return ContactListEnvelope{Success: true, Contacts: contacts}
}

// ChatEnvelope is the assistant's reply envelope.
type ChatEnvelope struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

func FromChatReply(reply string) ChatEnvelope {
	return ChatEnvelope{Success: true, Response: reply}
}
