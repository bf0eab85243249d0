package domain

import (
	"fmt"
	"math"
	"strings"
)

// HomeSectionKey identifies one reorderable home section.
type HomeSectionKey string

const (
	SectionTestimonials HomeSectionKey = "testimonials"
	SectionPayments     HomeSectionKey = "payments"
	SectionFaq          HomeSectionKey = "faq"
)

// CanonicalSectionOrder is both the default order and the append order for
// keys missing from an admin payload.
var CanonicalSectionOrder = []HomeSectionKey{SectionTestimonials, SectionPayments, SectionFaq}

type HomeSectionTestimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating"`
}

type HomeSectionFaq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HomeSectionsContent holds the editable home-page sections. Lists are never
// empty after a merge; the defaults backfill any empty or invalid list.
type HomeSectionsContent struct {
	SectionOrder         []HomeSectionKey         `json:"sectionOrder"`
	TestimonialsTitle    string                   `json:"testimonialsTitle"`
	TestimonialsSubtitle string                   `json:"testimonialsSubtitle"`
	Testimonials         []HomeSectionTestimonial `json:"testimonials"`
	PaymentsTitle        string                   `json:"paymentsTitle"`
	PaymentsSubtitle     string                   `json:"paymentsSubtitle"`
	BankTitle            string                   `json:"bankTitle"`
	Banks                []string                 `json:"banks"`
	MobileTitle          string                   `json:"mobileTitle"`
	MobileMethods        []string                 `json:"mobileMethods"`
	CashOnDeliveryText   string                   `json:"cashOnDeliveryText"`
	ProvinceShippingText string                   `json:"provinceShippingText"`
	FaqTitle             string                   `json:"faqTitle"`
	FaqSubtitle          string                   `json:"faqSubtitle"`
	Faqs                 []HomeSectionFaq         `json:"faqs"`
}

const defaultAvatarURL = "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=320&q=80"

func DefaultHomeSectionsContent() HomeSectionsContent {
	return HomeSectionsContent{
		SectionOrder:         append([]HomeSectionKey{}, CanonicalSectionOrder...),
		TestimonialsTitle:    "⭐ Lo que dicen nuestros clientes",
		TestimonialsSubtitle: "Experiencias reales de clientes peruanos que compraron con seguridad y atencion inmediata.",
		Testimonials:         defaultTestimonials(),
		PaymentsTitle:        "💳 Metodos de Pago Seguros",
		PaymentsSubtitle:     "Opciones flexibles para cerrar tu compra rapido y con total confianza.",
		BankTitle:            "🏦 Transferencias bancarias",
		Banks:                []string{"BCP", "Interbank", "BBVA"},
		MobileTitle:          "📱 Pagos moviles",
		MobileMethods:        []string{"YAPE", "PLIN"},
		CashOnDeliveryText:   "🚚 Contraentrega disponible",
		ProvinceShippingText: "📦 Envios a provincia via Shalom",
		FaqTitle:             "❓ Preguntas Frecuentes",
		FaqSubtitle:          "Resolvemos tus dudas antes de comprar",
		Faqs:                 defaultFaqs(),
	}
}

// MergeHomeSectionsContent normalizes a loosely-typed partial record. Total:
// malformed elements are dropped, empty lists fall back to defaults, the
// section order is canonicalized.
func MergeHomeSectionsContent(raw map[string]any) HomeSectionsContent {
	merged := DefaultHomeSectionsContent()
	if raw == nil {
		return merged
	}

	merged.SectionOrder = normalizeSectionOrder(raw["sectionOrder"])
	merged.TestimonialsTitle = stringOr(raw["testimonialsTitle"], merged.TestimonialsTitle)
	merged.TestimonialsSubtitle = stringOr(raw["testimonialsSubtitle"], merged.TestimonialsSubtitle)
	merged.Testimonials = normalizeTestimonials(raw["testimonials"], merged.Testimonials)
	merged.PaymentsTitle = stringOr(raw["paymentsTitle"], merged.PaymentsTitle)
	merged.PaymentsSubtitle = stringOr(raw["paymentsSubtitle"], merged.PaymentsSubtitle)
	merged.BankTitle = stringOr(raw["bankTitle"], merged.BankTitle)
	merged.Banks = stringListOr(raw["banks"], merged.Banks)
	merged.MobileTitle = stringOr(raw["mobileTitle"], merged.MobileTitle)
	merged.MobileMethods = stringListOr(raw["mobileMethods"], merged.MobileMethods)
	merged.CashOnDeliveryText = stringOr(raw["cashOnDeliveryText"], merged.CashOnDeliveryText)
	merged.ProvinceShippingText = stringOr(raw["provinceShippingText"], merged.ProvinceShippingText)
	merged.FaqTitle = stringOr(raw["faqTitle"], merged.FaqTitle)
	merged.FaqSubtitle = stringOr(raw["faqSubtitle"], merged.FaqSubtitle)
	merged.Faqs = normalizeFaqs(raw["faqs"], merged.Faqs)

	return merged
}

// NormalizeSectionOrder filters to the known keys, de-duplicates preserving
// first occurrence, then appends missing keys in canonical order.
func NormalizeSectionOrder(keys []string) []HomeSectionKey {
	unique := make([]HomeSectionKey, 0, len(CanonicalSectionOrder))
	seen := map[HomeSectionKey]bool{}
	for _, raw := range keys {
		key := HomeSectionKey(raw)
		switch key {
		case SectionTestimonials, SectionPayments, SectionFaq:
			if !seen[key] {
				seen[key] = true
				unique = append(unique, key)
			}
		}
	}
	for _, key := range CanonicalSectionOrder {
		if !seen[key] {
			unique = append(unique, key)
		}
	}
	return unique
}

func normalizeSectionOrder(value any) []HomeSectionKey {
	items, ok := value.([]any)
	if !ok {
		return append([]HomeSectionKey{}, CanonicalSectionOrder...)
	}
	keys := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			keys = append(keys, s)
		}
	}
	return NormalizeSectionOrder(keys)
}

func normalizeTestimonials(value any, fallback []HomeSectionTestimonial) []HomeSectionTestimonial {
	items, ok := value.([]any)
	if !ok {
		return fallback
	}

	normalized := make([]HomeSectionTestimonial, 0, len(items))
	for index, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		avatarFallback := defaultAvatarURL
		if index < len(fallback) {
			avatarFallback = fallback[index].Avatar
		}
		normalized = append(normalized, HomeSectionTestimonial{
			ID:     stringOr(entry["id"], fmt.Sprintf("testimonial-%d", index+1)),
			Name:   stringOr(entry["name"], fmt.Sprintf("Cliente %d", index+1)),
			Text:   stringOr(entry["text"], "Compra confirmada con exito."),
			Avatar: stringOr(entry["avatar"], avatarFallback),
			Rating: clampRating(entry["rating"]),
		})
	}

	if len(normalized) == 0 {
		return fallback
	}
	return normalized
}

func normalizeFaqs(value any, fallback []HomeSectionFaq) []HomeSectionFaq {
	items, ok := value.([]any)
	if !ok {
		return fallback
	}

	normalized := make([]HomeSectionFaq, 0, len(items))
	for index, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		normalized = append(normalized, HomeSectionFaq{
			ID:       stringOr(entry["id"], fmt.Sprintf("faq-%d", index+1)),
			Question: stringOr(entry["question"], "Pregunta"),
			Answer:   stringOr(entry["answer"], "Respuesta"),
		})
	}

	if len(normalized) == 0 {
		return fallback
	}
	return normalized
}

// clampRating rounds and clamps to the inclusive 1..5 range; anything
// unparseable becomes the maximum rating, matching the legacy dashboard.
func clampRating(value any) int {
	rating := 5.0
	switch v := value.(type) {
	case float64:
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			rating = v
		}
	case int:
		if v != 0 {
			rating = float64(v)
		}
	case string:
		var parsed float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &parsed); err == nil && parsed != 0 {
			rating = parsed
		}
	}
	rounded := int(math.Round(rating))
	if rounded < 1 {
		return 1
	}
	if rounded > 5 {
		return 5
	}
	return rounded
}

func stringOr(value any, fallback string) string {
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func stringListOr(value any, fallback []string) []string {
	items, ok := value.([]any)
	if !ok {
		return fallback
	}
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	if len(normalized) == 0 {
		return fallback
	}
	return normalized
}

func defaultTestimonials() []HomeSectionTestimonial {
	return []HomeSectionTestimonial{
		{ID: "andrea-r", Name: "Andrea R.", Text: "Me entregaron el iPhone tal como en fotos, super cuidado y rapido. Excelente atencion por WhatsApp 🔥", Avatar: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "jose-l", Name: "Jose L.", Text: "Compre una laptop para trabajo remoto y llego probada, lista para usar. Muy recomendados 💯", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "camila-p", Name: "Camila P.", Text: "La contraentrega en Lima me dio mucha confianza. Todo transparente desde el primer mensaje.", Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "diego-v", Name: "Diego V.", Text: "Mi iPad vino en excelente estado y con garantia funcional. Se nota que revisan bien cada equipo 📦", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "valeria-c", Name: "Valeria C.", Text: "Todo el proceso fue super rapido. Me ayudaron a elegir segun mi presupuesto y quedo perfecto.", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "miguel-s", Name: "Miguel S.", Text: "Buena comunicacion y equipos originales. El reloj que compre esta impecable, como nuevo.", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "fiorella-g", Name: "Fiorella G.", Text: "Me dieron videos reales antes de comprar y eso me convencio. Llegada puntual y segura.", Avatar: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "ricardo-t", Name: "Ricardo T.", Text: "Primera vez comprando reacondicionado y quede sorprendido. Calidad top y precio justo.", Avatar: "https://images.unsplash.com/photo-1507591064344-4c6ce005b128?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "karla-m", Name: "Karla M.", Text: "Respuesta inmediata por WhatsApp y asesoria clara. Mi MacBook llego lista para trabajar.", Avatar: "https://images.unsplash.com/photo-1520813792240-56fc4a3765a7?auto=format&fit=crop&w=320&q=80", Rating: 5},
		{ID: "adrian-f", Name: "Adrian F.", Text: "Compre desde provincia y enviaron por Shalom sin problemas. Todo seguro y bien embalado 📦", Avatar: "https://images.unsplash.com/photo-1504257432389-52343af06ae3?auto=format&fit=crop&w=320&q=80", Rating: 5},
	}
}

func defaultFaqs() []HomeSectionFaq {
	return []HomeSectionFaq{
		{ID: "originales", Question: "¿Los productos son originales?", Answer: "Si. Trabajamos con equipos originales importados de USA y verificamos numero de serie, estado fisico y funcionamiento antes de publicarlos."},
		{ID: "garantia", Question: "¿Tienen garantia?", Answer: "Si, todos los equipos se entregan con garantia funcional. Si aparece una falla cubierta, te asistimos de inmediato por WhatsApp 🤝"},
		{ID: "contraentrega", Question: "¿Como funciona la contraentrega?", Answer: "Coordinamos punto y horario en Lima, revisas el producto y luego realizas el pago. Buscamos que compres con total confianza."},
		{ID: "provincia", Question: "¿Realizan envios a provincia?", Answer: "Si. Enviamos a nivel nacional mediante Shalom con embalaje seguro y seguimiento para que recibas tu compra sin riesgo 📦"},
		{ID: "probados", Question: "¿Los equipos estan probados?", Answer: "Si. Probamos pantalla, bateria, puertos, camaras, conectividad y rendimiento general para asegurar que el equipo llegue operativo al 100% 💯"},
	}
}
