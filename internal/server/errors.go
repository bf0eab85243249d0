package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itechperu/storefront/internal/auth"
	catalogdomain "github.com/itechperu/storefront/internal/catalog/domain"
	contentdomain "github.com/itechperu/storefront/internal/content/domain"
	"github.com/itechperu/storefront/internal/storage"
)

// The dashboard renders these messages verbatim, so they stay in Spanish and
// every error response uses the same {"error": "..."} shape.
const (
	msgUnauthorized       = "No autorizado."
	msgInvalidCredentials = "Credenciales invalidas."
	msgInvalidPayload     = "Payload invalido."
	msgPasswordRequired   = "La contrasena es obligatoria."
	msgNotFound           = "No encontrado."
	msgInternal           = "Error interno."
	msgAdminUnconfigured  = "ADMIN_PASSWORD no configurado. Define la variable en Vercel para habilitar el panel."
	msgBackendRequired    = "Backend remoto no configurado. Define las credenciales de la base de datos para editar contenido."
	msgUploadUnconfigured = "Almacenamiento de imagenes no configurado."
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPayload = errors.New("invalid_payload")
)

// badRequestError carries a user-facing message for request-level
// validation the domain layers never see (missing form fields, bad MIME).
type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string { return e.message }

type errorResponse struct {
	Error string `json:"error"`
}

// ErrorHandlingMiddleware converts errors attached to the context into JSON
// responses after the handler chain runs.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	var vErr *catalogdomain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Message
	}
	var bErr *badRequestError
	if errors.As(err, &bErr) {
		return http.StatusBadRequest, bErr.message
	}

	switch {
	case errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest, msgInvalidPayload
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, auth.ErrNotConfigured):
		return http.StatusServiceUnavailable, msgAdminUnconfigured
	case errors.Is(err, catalogdomain.ErrNotConfigured),
		errors.Is(err, contentdomain.ErrNotConfigured),
		errors.Is(err, catalogdomain.ErrReadOnly):
		return http.StatusServiceUnavailable, msgBackendRequired
	case errors.Is(err, storage.ErrNotConfigured):
		return http.StatusServiceUnavailable, msgUploadUnconfigured
	case errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
