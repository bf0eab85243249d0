package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) AdminWhatsAppMetrics(c *gin.Context) {
	metrics, err := s.analyticsSvc.Metrics(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
