package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLandingContentDefaultsEveryField(t *testing.T) {
	assert.Equal(t, DefaultLandingContent(), MergeLandingContent(nil))
	assert.Equal(t, DefaultLandingContent(), MergeLandingContent(map[string]any{}))
}

func TestMergeLandingContentFieldByField(t *testing.T) {
	merged := MergeLandingContent(map[string]any{
		"heroTitle":    "  Titulo nuevo  ",
		"heroEyebrow":  "   ",
		"catalogTitle": 42,
		"trustTitle":   "Confianza total",
	})

	assert.Equal(t, "Titulo nuevo", merged.HeroTitle)
	assert.Equal(t, "Confianza total", merged.TrustTitle)
	// blank and wrongly-typed values fall back independently
	assert.Equal(t, DefaultLandingContent().HeroEyebrow, merged.HeroEyebrow)
	assert.Equal(t, DefaultLandingContent().CatalogTitle, merged.CatalogTitle)
	assert.Equal(t, DefaultLandingContent().UrgencyTitle, merged.UrgencyTitle)
}

func TestRenderHeroDescription(t *testing.T) {
	content := DefaultLandingContent()
	rendered := content.RenderHeroDescription("12")

	assert.Contains(t, rendered.HeroDescription, "12+ productos")
	assert.NotContains(t, rendered.HeroDescription, CountPlaceholder)
	// substitution is render-only, the receiver keeps the template
	assert.Contains(t, content.HeroDescription, CountPlaceholder)
}

func TestRenderHeroDescriptionMultipleOccurrences(t *testing.T) {
	content := LandingContent{HeroDescription: "{count} equipos, {count} marcas"}
	rendered := content.RenderHeroDescription("5")

	assert.Equal(t, "5 equipos, 5 marcas", rendered.HeroDescription)
	assert.False(t, strings.Contains(rendered.HeroDescription, "{count}"))
}
