package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPenPlain(t *testing.T) {
	assert.Equal(t, "899", FormatPenPlain(899))
	assert.Equal(t, "4,299", FormatPenPlain(4299))
	assert.Equal(t, "12,500", FormatPenPlain(12500))
}

func TestProductLink(t *testing.T) {
	got := ProductLink("iPhone 15 Pro", 4299, "+51 987 654 321")

	assert.Equal(t,
		"https://wa.me/51987654321?text=Hola%20quiero%20informacion%20del%20iPhone%2015%20Pro%20precio%20S%2F%204%2C299",
		got)
}

func TestGenericLink(t *testing.T) {
	got := GenericLink("Hola quiero informacion del catalogo disponible en iTech Peru", "51987654321")

	assert.Equal(t,
		"https://wa.me/51987654321?text=Hola%20quiero%20informacion%20del%20catalogo%20disponible%20en%20iTech%20Peru",
		got)
}

func TestSanitizePhoneStripsNonDigits(t *testing.T) {
	assert.Equal(t, "51987654321", sanitizePhone("(+51) 987-654-321"))
}
