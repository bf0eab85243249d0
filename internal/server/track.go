package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	analyticsdomain "github.com/itechperu/storefront/internal/analytics/domain"
)

// TrackWhatsAppClick always answers 204: a broken tracking payload must
// never interfere with the user's jump into the WhatsApp chat.
func (s *Server) TrackWhatsAppClick(c *gin.Context) {
	var input analyticsdomain.ClickInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	input.UserAgent = c.Request.UserAgent()
	input.IPAddress = c.ClientIP()

	if s.analyticsSvc.Track(c.Request.Context(), input) {
		s.metrics.RecordWhatsAppClick(strings.TrimSpace(input.Source))
	}

	c.Status(http.StatusNoContent)
}
