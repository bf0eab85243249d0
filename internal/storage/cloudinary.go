package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/itechperu/storefront/internal/clock"
	"github.com/itechperu/storefront/internal/config"
)

const defaultFolder = "products"

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CloudinaryUploader stores product images in a Cloudinary folder.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
	clock  clock.Clock
}

func NewCloudinaryUploader(cfg config.Config, c clock.Clock) (*CloudinaryUploader, error) {
	if strings.TrimSpace(cfg.CloudinaryURL) == "" {
		return &CloudinaryUploader{clock: c}, nil
	}

	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	folder := strings.TrimSpace(cfg.CloudinaryFolder)
	if folder == "" {
		folder = defaultFolder
	}
	return &CloudinaryUploader{client: client, folder: folder, clock: c}, nil
}

// publicID builds a collision-resistant object name keeping the original
// filename readable: "{millis}-{randomhex}-{clean-name}".
func (u *CloudinaryUploader) publicID(filename string) (string, error) {
	clean := strings.ToLower(whitespaceRegex.ReplaceAllString(strings.TrimSpace(filename), "-"))
	if clean == "" {
		clean = "imagen"
	}

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("no se pudo generar nombre de imagen: %w", err)
	}

	return fmt.Sprintf("%d-%s-%s", u.clock.Now().UnixMilli(), hex.EncodeToString(buf), clean), nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	if u.client == nil {
		return "", ErrNotConfigured
	}

	publicID, err := u.publicID(filename)
	if err != nil {
		return "", err
	}

	result, err := u.client.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("no se pudo subir imagen: %w", err)
	}
	return result.SecureURL, nil
}

func provideUploader(cfg config.Config, c clock.Clock, log *zap.Logger) (Uploader, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.ImageStorageProvider))
	if provider != "" && provider != "cloudinary" {
		log.Warn("unsupported image storage provider, uploads disabled",
			zap.String("provider", provider))
		return &CloudinaryUploader{clock: c}, nil
	}

	up, err := NewCloudinaryUploader(cfg, c)
	if err != nil {
		return nil, err
	}
	if up.client == nil {
		log.Info("image storage disabled, CLOUDINARY_URL is not set")
	}
	return up, nil
}

var Module = fx.Module("storage",
	fx.Provide(provideUploader),
)
