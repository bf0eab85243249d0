package domain

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

var (
	hexColorRegex      = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	shortHexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
	listSplitRegex     = regexp.MustCompile(`[\n,]`)
)

// NormalizeHexColor canonicalizes #RGB and #RRGGBB values (with or without
// the leading #) to uppercase #RRGGBB. Anything else is rejected.
func NormalizeHexColor(input string) (string, bool) {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return "", false
	}

	withHash := normalized
	if !strings.HasPrefix(withHash, "#") {
		withHash = "#" + withHash
	}
	if shortHexColorRegex.MatchString(withHash) {
		short := strings.ToUpper(withHash[1:])
		return "#" + strings.Repeat(string(short[0]), 2) +
			strings.Repeat(string(short[1]), 2) +
			strings.Repeat(string(short[2]), 2), true
	}
	if !hexColorRegex.MatchString(withHash) {
		return "", false
	}
	return strings.ToUpper(withHash), true
}

// NormalizeColors validates hex values, silently drops invalid entries, then
// re-sequences the survivors to a dense 0..n-1 order.
func NormalizeColors(input []ProductColor) []ProductColor {
	mapped := make([]ProductColor, 0, len(input))
	for _, item := range input {
		hex, ok := NormalizeHexColor(item.Hex)
		if !ok {
			continue
		}
		mapped = append(mapped, ProductColor{
			Name:  strings.TrimSpace(item.Name),
			Hex:   hex,
			Order: item.Order,
		})
	}

	sort.SliceStable(mapped, func(i, j int) bool { return mapped[i].Order < mapped[j].Order })
	for index := range mapped {
		mapped[index].Order = index
	}
	return mapped
}

// NormalizeImages produces an ordered list with dense 0..n-1 indices and
// exactly one primary: the first flagged entry, or the first entry when none
// is flagged. A legacy single-URL fallback becomes a one-element primary
// list. An empty result means the product has no usable image at all.
func NormalizeImages(input []ProductImage, fallbackURL string) []ProductImage {
	mapped := make([]ProductImage, 0, len(input))
	for _, item := range input {
		url := strings.TrimSpace(item.URL)
		if url == "" {
			continue
		}
		mapped = append(mapped, ProductImage{
			URL:       url,
			Order:     item.Order,
			IsPrimary: item.IsPrimary,
		})
	}

	if len(mapped) == 0 {
		fallback := strings.TrimSpace(fallbackURL)
		if fallback == "" {
			return []ProductImage{}
		}
		return []ProductImage{{URL: fallback, Order: 0, IsPrimary: true}}
	}

	sort.SliceStable(mapped, func(i, j int) bool { return mapped[i].Order < mapped[j].Order })

	hasPrimary := false
	for index := range mapped {
		isPrimary := mapped[index].IsPrimary && !hasPrimary
		if isPrimary {
			hasPrimary = true
		}
		mapped[index].Order = index
		mapped[index].IsPrimary = isPrimary
	}
	if !hasPrimary {
		mapped[0].IsPrimary = true
	}
	return mapped
}

// MoveImage reorders the list and re-normalizes. Out-of-range indices leave
// the list untouched apart from normalization.
func MoveImage(images []ProductImage, fromIndex, toIndex int) []ProductImage {
	if fromIndex == toIndex || fromIndex < 0 || toIndex < 0 ||
		fromIndex >= len(images) || toIndex >= len(images) {
		return NormalizeImages(images, "")
	}

	next := make([]ProductImage, 0, len(images))
	next = append(next, images...)
	moved := next[fromIndex]
	next = append(next[:fromIndex], next[fromIndex+1:]...)
	next = append(next[:toIndex], append([]ProductImage{moved}, next[toIndex:]...)...)
	// the spliced slice still carries the pre-move order values, which the
	// normalization sort would otherwise restore
	for index := range next {
		next[index].Order = index
	}
	return NormalizeImages(next, "")
}

// RemoveImage drops one entry and re-normalizes.
func RemoveImage(images []ProductImage, index int) []ProductImage {
	if index < 0 || index >= len(images) {
		return NormalizeImages(images, "")
	}
	next := make([]ProductImage, 0, len(images)-1)
	next = append(next, images[:index]...)
	next = append(next, images[index+1:]...)
	return NormalizeImages(next, "")
}

// SetPrimaryImage flags one entry primary and re-normalizes.
func SetPrimaryImage(images []ProductImage, index int) []ProductImage {
	if index < 0 || index >= len(images) {
		return NormalizeImages(images, "")
	}
	next := make([]ProductImage, len(images))
	for i, image := range images {
		image.IsPrimary = i == index
		next[i] = image
	}
	return NormalizeImages(next, "")
}

// NormalizePayload turns a loosely-typed admin form payload into a
// well-formed Product. It is pure: same payload in, same product out.
//
// The any-typed coercion below is a migration compatibility layer for the
// legacy dashboard, which posts strings where lists belong and a single
// image URL where the structured list belongs.
func NormalizePayload(raw map[string]any) (Product, error) {
	name := coerceString(raw["name"])
	if name == "" {
		return Product{}, ErrNameRequired
	}

	slugRaw := coerceString(raw["slug"])
	if slugRaw == "" {
		slugRaw = slug.Make(name)
	}
	if slugRaw == "" {
		return Product{}, ErrSlugRequired
	}

	id := coerceString(raw["id"])
	if id == "" {
		id = slugRaw
	}

	summary := coerceString(raw["summary"])
	colors := coerceColors(raw["colors"])
	legacyImage := coerceString(raw["image"])
	images := NormalizeImages(coerceImages(raw["images"]), legacyImage)
	badgeText := coerceString(raw["badgeText"])
	conditionLabel := coerceString(raw["conditionLabel"])

	if summary == "" {
		return Product{}, ErrSummaryRequired
	}
	if len(images) == 0 {
		return Product{}, ErrImageRequired
	}
	if badgeText == "" {
		return Product{}, ErrBadgeTextRequired
	}
	if conditionLabel == "" {
		return Product{}, ErrConditionRequired
	}

	primaryImage := images[0].URL
	for _, image := range images {
		if image.IsPrimary {
			primaryImage = image.URL
			break
		}
	}

	price := clampPrice(coerceNumber(raw["price"], 0))
	var previousPrice *int
	if value, ok := maybeNumber(raw["previousPrice"]); ok {
		rounded := clampPrice(value)
		previousPrice = &rounded
	}
	baseStock := int(math.Round(coerceNumber(raw["baseStock"], 1)))
	if baseStock < 1 {
		baseStock = 1
	}

	return Product{
		ID:             id,
		Slug:           slugRaw,
		Name:           name,
		Category:       normalizeCategory(coerceString(raw["category"])),
		Model:          coerceString(raw["model"]),
		Storage:        coerceString(raw["storage"]),
		Colors:         colors,
		Images:         images,
		Summary:        summary,
		Highlights:     coerceStringList(raw["highlights"]),
		Tags:           coerceStringList(raw["tags"]),
		Image:          primaryImage,
		BadgeText:      badgeText,
		BadgeType:      normalizeBadgeType(coerceString(raw["badgeType"])),
		ConditionLabel: conditionLabel,
		Price:          price,
		PreviousPrice:  previousPrice,
		BaseStock:      baseStock,
		IsNewArrival:   coerceBool(raw["isNewArrival"]),
		IsBestSeller:   coerceBool(raw["isBestSeller"]),
		Featured:       coerceBool(raw["featured"]),
	}, nil
}

func normalizeCategory(value string) ProductCategory {
	for _, category := range ProductCategories {
		if value == string(category) {
			return category
		}
	}
	return DefaultCategory
}

func normalizeBadgeType(value string) ProductBadgeType {
	switch ProductBadgeType(value) {
	case BadgeOffer, BadgeScore, BadgeNew:
		return ProductBadgeType(value)
	default:
		return DefaultBadgeType
	}
}

func clampPrice(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	return rounded
}

func coerceString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func coerceNumber(value any, fallback float64) float64 {
	parsed, ok := maybeNumber(value)
	if !ok {
		return fallback
	}
	return parsed
}

func maybeNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v == 1
	case int:
		return v == 1
	default:
		return false
	}
}

// coerceStringList accepts either a list or a single comma/newline separated
// string; entries are trimmed and empties dropped.
func coerceStringList(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := strings.TrimSpace(stringify(item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := strings.TrimSpace(item)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		parts := listSplitRegex.Split(v, -1)
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			s := strings.TrimSpace(part)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func coerceColors(value any) []ProductColor {
	items, ok := value.([]any)
	if !ok {
		return []ProductColor{}
	}

	mapped := make([]ProductColor, 0, len(items))
	for index, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		order := index
		if parsed, ok := maybeNumber(entry["order"]); ok {
			order = int(parsed)
		}
		mapped = append(mapped, ProductColor{
			Name:  strings.TrimSpace(stringify(entry["name"])),
			Hex:   stringify(entry["hex"]),
			Order: order,
		})
	}
	return NormalizeColors(mapped)
}

func coerceImages(value any) []ProductImage {
	items, ok := value.([]any)
	if !ok {
		return []ProductImage{}
	}

	mapped := make([]ProductImage, 0, len(items))
	for index, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		order := index
		if parsed, ok := maybeNumber(entry["order"]); ok {
			order = int(parsed)
		}
		mapped = append(mapped, ProductImage{
			URL:       coerceString(entry["url"]),
			Order:     order,
			IsPrimary: entry["isPrimary"] == true,
		})
	}
	return mapped
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
