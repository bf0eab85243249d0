package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/itechperu/storefront/internal/catalog/domain"
)

func (s *Server) AdminListProducts(c *gin.Context) {
	products, err := s.catalogSvc.AdminListProducts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AdminSaveProduct accepts the loosely-typed dashboard payload, runs it
// through catalog normalization and upserts the result.
func (s *Server) AdminSaveProduct(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidPayload)
		return
	}

	product, err := catalogdomain.NormalizePayload(payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	saved, err := s.catalogSvc.SaveProduct(c.Request.Context(), product)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": saved})
}

type deleteProductRequest struct {
	ID string `json:"id"`
}

func (s *Server) AdminDeleteProduct(c *gin.Context) {
	var req deleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidPayload)
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		AbortWithError(c, catalogdomain.ErrIDRequired)
		return
	}

	if err := s.catalogSvc.DeleteProduct(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
