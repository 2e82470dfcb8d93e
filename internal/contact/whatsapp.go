// Package contact builds WhatsApp deep links for the storefront and the
// admin. No message is ever sent from the server.
package contact

import (
	"net/url"
	"strings"

	"github.com/BruksfildServices01/sling-library/internal/models"
	"github.com/BruksfildServices01/sling-library/internal/validators"
)

const baseURL = "https://wa.me/"

// WhatsAppLink returns https://wa.me/<digits>?text=<message>. The message is
// percent-encoded like JavaScript's encodeURIComponent: spaces become %20 and
// !'()* stay literal.
func WhatsAppLink(phone, message string) string {
	return baseURL + validators.Digits(phone) + "?text=" + encodeComponent(message)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// CustomerChatLink opens a chat with the shop, using custom when given and
// the configured greeting otherwise.
func CustomerChatLink(s models.SiteSettings, custom string) string {
	msg := strings.TrimSpace(custom)
	if msg == "" && s.WhatsAppMessage != nil {
		msg = *s.WhatsAppMessage
	}
	return WhatsAppLink(s.WhatsAppNumber, msg)
}

func CarrierInterestMessage(c models.Carrier) string {
	return "Hi! I'm interested in renting the " + c.DisplayName() + "."
}

// CarrierInterestLink is the "Enquire on WhatsApp" button of a carrier page.
func CarrierInterestLink(s models.SiteSettings, c models.Carrier) string {
	return WhatsAppLink(s.WhatsAppNumber, CarrierInterestMessage(c))
}

func CustomerContactMessage(b models.BookingRequest) string {
	return "Hi " + b.CustomerName + "! This is regarding your baby carrier rental request."
}

// CustomerContactLink lets the admin reply to whoever placed the booking.
func CustomerContactLink(b models.BookingRequest) string {
	return WhatsAppLink(b.Phone, CustomerContactMessage(b))
}
