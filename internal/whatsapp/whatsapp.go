// Package whatsapp builds wa.me chat links with prefilled Spanish messages.
// Checkout happens over WhatsApp, so these links are the storefront's only
// conversion path.
package whatsapp

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultMessage is the generic catalog enquiry used by site-wide buttons.
const DefaultMessage = "Hola quiero informacion del catalogo disponible en iTech Peru"

var nonDigitRegex = regexp.MustCompile(`\D`)

var penPrinter = message.NewPrinter(language.MustParse("es-PE"))

// FormatPenPlain renders a whole-sol amount with es-PE digit grouping and no
// currency symbol, e.g. 4299 -> "4,299".
func FormatPenPlain(value int) string {
	return penPrinter.Sprintf("%d", value)
}

func sanitizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// encodeMessage matches JavaScript's encodeURIComponent for the characters
// that appear in our messages, notably "%20" for spaces rather than "+".
func encodeMessage(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func link(phone, text string) string {
	return "https://wa.me/" + sanitizePhone(phone) + "?text=" + encodeMessage(text)
}

// ProductLink builds the chat link for a product enquiry.
func ProductLink(productName string, price int, phone string) string {
	text := "Hola quiero informacion del " + productName + " precio S/ " + FormatPenPlain(price)
	return link(phone, text)
}

// GenericLink builds a chat link with an arbitrary prefilled message.
func GenericLink(text string, phone string) string {
	return link(phone, text)
}
