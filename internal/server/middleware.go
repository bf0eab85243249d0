package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger emits one structured line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Warn("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// AdminRequired gates the dashboard API behind a valid session cookie.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authSvc.Authenticated(c) {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}
