package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacySummary = "Modelo: iPhone 13\nAlmacenamiento: 128GB\nColores: Negro, Azul; Verde Alpino\nBateria: hasta 19 horas"

func TestSplitDescriptionLinesMultiline(t *testing.T) {
	lines := SplitDescriptionLines("  Modelo: iPhone 13\r\n\r\nAlmacenamiento: 128GB\rColores: Negro  ")

	assert.Equal(t, []string{
		"Modelo: iPhone 13",
		"Almacenamiento: 128GB",
		"Colores: Negro",
	}, lines)
}

func TestSplitDescriptionLinesSingleBlob(t *testing.T) {
	lines := SplitDescriptionLines("Equipo importado Modelo: iPhone 13 Almacenamiento: 128GB Colores: Negro")

	assert.Equal(t, []string{
		"Equipo importado",
		"Modelo: iPhone 13",
		"Almacenamiento: 128GB",
		"Colores: Negro",
	}, lines)
}

func TestSplitDescriptionLinesNoLabels(t *testing.T) {
	assert.Equal(t, []string{"Solo un parrafo simple."}, SplitDescriptionLines("Solo un parrafo simple."))
	assert.Empty(t, SplitDescriptionLines("   "))
}

func TestModelFromSummary(t *testing.T) {
	assert.Equal(t, "iPhone 13", ModelFromSummary(legacySummary))
	assert.Equal(t, "", ModelFromSummary("Almacenamiento: 128GB"))
}

func TestStorageFromSummary(t *testing.T) {
	assert.Equal(t, "128GB", StorageFromSummary(legacySummary))
	assert.Equal(t, "512GB", StorageFromSummary("Espacio: 512GB"))
	assert.Equal(t, "1TB", StorageFromSummary("storage: 1TB"))
}

func TestColorsFromSummary(t *testing.T) {
	colors := ColorsFromSummary(legacySummary)

	require.Len(t, colors, 3)
	assert.Equal(t, ProductColor{Name: "Negro", Hex: "#111827", Order: 0}, colors[0])
	assert.Equal(t, ProductColor{Name: "Azul", Hex: "#2563EB", Order: 1}, colors[1])
	// Unknown names fall back to the neutral swatch.
	assert.Equal(t, ProductColor{Name: "Verde Alpino", Hex: "#64748B", Order: 2}, colors[2])
}

func TestColorsFromSummaryAbsent(t *testing.T) {
	assert.Empty(t, ColorsFromSummary("Modelo: iPhone 13"))
}
