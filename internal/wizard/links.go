package wizard

import (
	"fmt"
	"net/url"
	"strings"

	"monauxiliaire/internal/domain/entities"
)

const (
	quoteEmail      = "devis@d3drone.com"
	whatsAppNumber  = "212661206929"
	mailtoSubject   = "Demande de devis déménagement"
	mailtoBodyTmpl  = "Bonjour,\n\nJe souhaite obtenir un devis pour mon déménagement avec les détails suivants :\n\nType de logement: %s\nSurface: %d m²\nDépart: %s, %s\nArrivée: %s, %s\nDate souhaitée: %s\nServices: %s\n\nCordialement,\n%s %s\n%s\n%s"
	whatsAppMsgTmpl = "Bonjour, je souhaite un devis déménagement.\nType: %s\nSurface: %dm²\nDe: %s vers %s\nDate: %s\nContact: %s %s"
)

// MailtoLink builds the pre-filled email draft for a finished quote. The
// template text is fixed; only draft fields are interpolated.
func MailtoLink(q entities.Quote) string {
	body := fmt.Sprintf(mailtoBodyTmpl,
		q.HousingType, q.Surface,
		q.DepartureAddress, q.DepartureCity,
		q.ArrivalAddress, q.ArrivalCity,
		q.MovingDate, joinServices(q.AdditionalServices),
		q.FirstName, q.LastName, q.Email, q.Phone,
	)
	return "mailto:" + quoteEmail + "?subject=" + encodeURIComponent(mailtoSubject) + "&body=" + encodeURIComponent(body)
}

// WhatsAppLink builds the pre-filled WhatsApp message for a finished quote.
func WhatsAppLink(q entities.Quote) string {
	text := fmt.Sprintf(whatsAppMsgTmpl,
		q.HousingType, q.Surface,
		q.DepartureCity, q.ArrivalCity,
		q.MovingDate,
		q.FirstName, q.LastName,
	)
	return "https://wa.me/" + whatsAppNumber + "?text=" + encodeURIComponent(text)
}

func joinServices(services []entities.AdditionalService) string {
	parts := make([]string, 0, len(services))
	for _, s := range services {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// encodeURIComponent matches the browser encoder the deep links were written
// for: spaces become %20, not the "+" form encoding of url.QueryEscape.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
