package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) AdminGetLanding(c *gin.Context) {
	landing, err := s.contentSvc.AdminLanding(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingContent": landing})
}

func (s *Server) AdminSaveLanding(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidPayload)
		return
	}

	saved, err := s.contentSvc.SaveLanding(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"landingContent": saved})
}

func (s *Server) AdminGetHomeSections(c *gin.Context) {
	sections, err := s.contentSvc.AdminHomeSections(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homeSections": sections})
}

func (s *Server) AdminSaveHomeSections(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidPayload)
		return
	}

	saved, err := s.contentSvc.SaveHomeSections(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homeSections": saved})
}
