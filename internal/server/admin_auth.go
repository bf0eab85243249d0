package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errPasswordRequired = &badRequestError{message: msgPasswordRequired}

type loginRequest struct {
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidPayload)
		return
	}

	password := strings.TrimSpace(req.Password)
	if password == "" {
		AbortWithError(c, errPasswordRequired)
		return
	}

	token, expiresAt, err := s.authSvc.Login(password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.authSvc.Session().Set(c, token, expiresAt)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) Logout(c *gin.Context) {
	s.authSvc.Session().Clear(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
