package domain

import "errors"

// ValidationError names the admin form field that failed normalization. The
// message is surfaced verbatim to the dashboard.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrNameRequired      = &ValidationError{Field: "name", Message: "El nombre del producto es obligatorio."}
	ErrSlugRequired      = &ValidationError{Field: "slug", Message: "No se pudo generar slug para el producto."}
	ErrSummaryRequired   = &ValidationError{Field: "summary", Message: "La descripcion corta (summary) es obligatoria."}
	ErrImageRequired     = &ValidationError{Field: "images", Message: "Debes cargar al menos una imagen del producto."}
	ErrBadgeTextRequired = &ValidationError{Field: "badgeText", Message: "El texto de badge es obligatorio."}
	ErrConditionRequired = &ValidationError{Field: "conditionLabel", Message: "La condicion del producto es obligatoria."}
	ErrIDRequired        = &ValidationError{Field: "id", Message: "id es obligatorio."}
	ErrSlugTaken         = &ValidationError{Field: "slug", Message: "Ya existe un producto con ese slug."}
)

var (
	ErrNotFound = errors.New("product_not_found")

	// ErrNotConfigured means the remote document store credentials are absent;
	// the admin feature is disabled, not broken.
	ErrNotConfigured = errors.New("catalog_backend_not_configured")

	// ErrReadOnly is returned by the static catalog for write operations.
	ErrReadOnly = errors.New("catalog_read_only")
)
