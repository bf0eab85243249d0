package domain

import "strings"

// LandingContent is the flat landing-page copy record. It is always fully
// populated: every field independently falls back to its default when
// absent, blank, or wrongly shaped. The {count} placeholder inside the hero
// description is substituted on the public read path, never in storage.
type LandingContent struct {
	HeroEyebrow           string `json:"heroEyebrow"`
	HeroTitle             string `json:"heroTitle"`
	HeroDescription       string `json:"heroDescription"`
	HeroPrimaryCtaLabel   string `json:"heroPrimaryCtaLabel"`
	HeroSecondaryCtaLabel string `json:"heroSecondaryCtaLabel"`
	HeroCardEyebrow       string `json:"heroCardEyebrow"`
	HeroCardTitle         string `json:"heroCardTitle"`
	HeroImageURL          string `json:"heroImageUrl"`
	HeroImageAlt          string `json:"heroImageAlt"`
	CatalogEyebrow        string `json:"catalogEyebrow"`
	CatalogTitle          string `json:"catalogTitle"`
	CatalogDescription    string `json:"catalogDescription"`
	TrustEyebrow          string `json:"trustEyebrow"`
	TrustTitle            string `json:"trustTitle"`
	TrustDescription      string `json:"trustDescription"`
	UrgencyEyebrow        string `json:"urgencyEyebrow"`
	UrgencyTitle          string `json:"urgencyTitle"`
	UrgencyDescription    string `json:"urgencyDescription"`
}

// CountPlaceholder is the template token inside HeroDescription.
const CountPlaceholder = "{count}"

func DefaultLandingContent() LandingContent {
	return LandingContent{
		HeroEyebrow:           "Tecnologia verificada y garantizada",
		HeroTitle:             "Tecnologia importada de USA al mejor precio en Peru",
		HeroDescription:       "Equipos de segunda mano en estado premium, revisados por especialistas y listos para entrega rapida. Ya tenemos {count}+ productos en stock para despacho inmediato.",
		HeroPrimaryCtaLabel:   "Ver Productos",
		HeroSecondaryCtaLabel: "Contactar por WhatsApp",
		HeroCardEyebrow:       "Seleccion premium",
		HeroCardTitle:         "Equipos listos para hoy",
		HeroImageURL:          "",
		HeroImageAlt:          "Coleccion premium de equipos iTech Peru",
		CatalogEyebrow:        "Catalogo",
		CatalogTitle:          "Productos listos para entrega inmediata",
		CatalogDescription:    "Seleccion curada para usuarios que ya llegan con intencion de compra. Cada equipo incluye estado real, precio transparente y boton directo a WhatsApp.",
		TrustEyebrow:          "Confianza",
		TrustTitle:            "Compras con respaldo real",
		TrustDescription:      "Diseno limpio y transparente para reducir dudas en segundos y acelerar la decision de compra desde movil.",
		UrgencyEyebrow:        "Urgencia",
		UrgencyTitle:          "Se agotan rapido",
		UrgencyDescription:    "Stock actualizado de forma dinamica para reflejar la disponibilidad del dia y activar accion inmediata.",
	}
}

// MergeLandingContent normalizes a loosely-typed partial record. Total:
// never fails, field-by-field defaulting, no whole-object fallback.
func MergeLandingContent(raw map[string]any) LandingContent {
	merged := DefaultLandingContent()
	if raw == nil {
		return merged
	}
	for key, target := range landingFields(&merged) {
		if value, ok := raw[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				*target = trimmed
			}
		}
	}
	return merged
}

func landingFields(c *LandingContent) map[string]*string {
	return map[string]*string{
		"heroEyebrow":           &c.HeroEyebrow,
		"heroTitle":             &c.HeroTitle,
		"heroDescription":       &c.HeroDescription,
		"heroPrimaryCtaLabel":   &c.HeroPrimaryCtaLabel,
		"heroSecondaryCtaLabel": &c.HeroSecondaryCtaLabel,
		"heroCardEyebrow":       &c.HeroCardEyebrow,
		"heroCardTitle":         &c.HeroCardTitle,
		"heroImageUrl":          &c.HeroImageURL,
		"heroImageAlt":          &c.HeroImageAlt,
		"catalogEyebrow":        &c.CatalogEyebrow,
		"catalogTitle":          &c.CatalogTitle,
		"catalogDescription":    &c.CatalogDescription,
		"trustEyebrow":          &c.TrustEyebrow,
		"trustTitle":            &c.TrustTitle,
		"trustDescription":      &c.TrustDescription,
		"urgencyEyebrow":        &c.UrgencyEyebrow,
		"urgencyTitle":          &c.UrgencyTitle,
		"urgencyDescription":    &c.UrgencyDescription,
	}
}

// RenderHeroDescription substitutes the product-count placeholder.
func (c LandingContent) RenderHeroDescription(count string) LandingContent {
	c.HeroDescription = strings.ReplaceAll(c.HeroDescription, CountPlaceholder, count)
	return c
}
