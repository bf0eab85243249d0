package domain

import (
	"regexp"
	"strings"
)

// Legacy products carry model, storage and colors embedded in the summary as
// labeled lines ("Modelo: ...", "Colores: negro, azul"). Read paths re-derive
// structured fields from those lines when the structured columns are empty.

var (
	sectionLabelRegex = regexp.MustCompile(`(?i)(?:modelo|pantalla|espacio|almacenamiento|storage|color(?:es)?|rendimiento|audio|c[aá]maras|seguridad|bater[ií]a|regalo|compra segura)\s*:`)
	modelLineRegex    = regexp.MustCompile(`(?i)^[^A-Za-z0-9]*modelo\s*:`)
	storageLineRegex  = regexp.MustCompile(`(?i)^[^A-Za-z0-9]*(?:espacio|almacenamiento|storage)\s*:`)
	colorsLineRegex   = regexp.MustCompile(`(?i)^[^A-Za-z0-9]*color(?:es)?\s*:`)
	colorSplitRegex   = regexp.MustCompile(`[;,/|]`)
	newlineRegex      = regexp.MustCompile("\r\n?")
)

const unknownColorHex = "#64748B"

var colorNameToHex = map[string]string{
	"negro":  "#111827",
	"blanco": "#F8FAFC",
	"azul":   "#2563EB",
	"rojo":   "#DC2626",
	"verde":  "#16A34A",
	"dorado": "#C8A45A",
	"gris":   "#6B7280",
	"plata":  "#94A3B8",
	"morado": "#7C3AED",
	"rosa":   "#EC4899",
}

// SplitDescriptionLines breaks a summary into display lines. Multi-line
// summaries split on newlines; single-line summaries split on the known
// section labels so legacy one-blob descriptions still render as a list.
func SplitDescriptionLines(summary string) []string {
	normalized := strings.TrimSpace(newlineRegex.ReplaceAllString(summary, "\n"))
	if normalized == "" {
		return []string{}
	}

	if strings.Contains(normalized, "\n") {
		lines := make([]string, 0)
		for _, line := range strings.Split(normalized, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	}

	matches := sectionLabelRegex.FindAllStringIndex(normalized, -1)
	if len(matches) == 0 {
		return []string{normalized}
	}

	lines := make([]string, 0, len(matches)+1)
	if header := strings.TrimSpace(normalized[:matches[0][0]]); header != "" {
		lines = append(lines, header)
	}
	for index, match := range matches {
		end := len(normalized)
		if index+1 < len(matches) {
			end = matches[index+1][0]
		}
		if line := strings.TrimSpace(normalized[match[0]:end]); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ModelFromSummary extracts the "Modelo:" line value, if present.
func ModelFromSummary(summary string) string {
	for _, line := range SplitDescriptionLines(summary) {
		if modelLineRegex.MatchString(line) {
			return strings.TrimSpace(modelLineRegex.ReplaceAllString(line, ""))
		}
	}
	return ""
}

// StorageFromSummary extracts the storage descriptor line value, if present.
func StorageFromSummary(summary string) string {
	for _, line := range SplitDescriptionLines(summary) {
		if storageLineRegex.MatchString(line) {
			return strings.TrimSpace(storageLineRegex.ReplaceAllString(line, ""))
		}
	}
	return ""
}

// ColorsFromSummary maps the "Colores:" line to structured colors using the
// Spanish color-name table; unknown names get a neutral hex.
func ColorsFromSummary(summary string) []ProductColor {
	var raw string
	for _, line := range SplitDescriptionLines(summary) {
		if colorsLineRegex.MatchString(line) {
			raw = strings.TrimSpace(colorsLineRegex.ReplaceAllString(line, ""))
			break
		}
	}
	if raw == "" {
		return []ProductColor{}
	}

	colors := make([]ProductColor, 0)
	for _, part := range colorSplitRegex.Split(raw, -1) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		hex, ok := colorNameToHex[strings.ToLower(name)]
		if !ok {
			hex = unknownColorHex
		}
		colors = append(colors, ProductColor{Name: name, Hex: hex, Order: len(colors)})
	}
	return colors
}
