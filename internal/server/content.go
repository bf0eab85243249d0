package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itechperu/storefront/internal/whatsapp"
)

func (s *Server) GetLandingContent(c *gin.Context) {
	ctx := c.Request.Context()
	landing := s.contentSvc.Landing(ctx)

	count, err := s.catalogSvc.CountProducts(ctx)
	if err != nil {
		s.log.Warn("product count unavailable for landing copy", zap.Error(err))
	}
	landing = landing.RenderHeroDescription(strconv.Itoa(count))

	c.JSON(http.StatusOK, gin.H{
		"landingContent": landing,
		"whatsappUrl":    whatsapp.GenericLink(whatsapp.DefaultMessage, s.cfg.WhatsAppPhone),
	})
}

func (s *Server) GetHomeSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"homeSections": s.contentSvc.HomeSections(c.Request.Context()),
	})
}
