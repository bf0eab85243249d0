package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 8 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

var (
	errImageFieldRequired = &badRequestError{message: "Debes enviar un archivo en el campo 'image'."}
	errImageTypeInvalid   = &badRequestError{message: "Formato no permitido. Usa JPG, PNG o WEBP."}
	errImageTooLarge      = &badRequestError{message: "Archivo demasiado grande. Maximo 8MB."}
)

func (s *Server) AdminUploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		AbortWithError(c, errImageFieldRequired)
		return
	}

	if _, ok := allowedImageTypes[header.Header.Get("Content-Type")]; !ok {
		AbortWithError(c, errImageTypeInvalid)
		return
	}
	if header.Size > maxUploadBytes {
		AbortWithError(c, errImageTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	imageURL, err := s.uploader.UploadImage(
		c.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordImageUpload()
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
