package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/itechperu/storefront/internal/catalog/domain"
	"github.com/itechperu/storefront/internal/whatsapp"
)

// productResponse decorates a catalog product with the per-day stock figure
// and the ready-made WhatsApp enquiry link the storefront renders.
type productResponse struct {
	catalogdomain.Product
	SimulatedStock int    `json:"simulatedStock"`
	WhatsAppURL    string `json:"whatsappUrl"`
}

func (s *Server) productResponse(product catalogdomain.Product) productResponse {
	return productResponse{
		Product:        product,
		SimulatedStock: s.stockCalc.Simulated(product.ID, product.BaseStock),
		WhatsAppURL:    whatsapp.ProductLink(product.Name, product.Price, s.cfg.WhatsAppPhone),
	}
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.catalogSvc.ListProducts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, s.productResponse(product))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (s *Server) GetProductBySlug(c *gin.Context) {
	product, err := s.catalogSvc.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if product == nil {
		AbortWithError(c, catalogdomain.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": s.productResponse(*product)})
}
