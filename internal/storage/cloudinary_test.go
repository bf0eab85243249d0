package storage

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itechperu/storefront/internal/clock"
)

func TestPublicIDFormat(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
	up := &CloudinaryUploader{clock: fc}

	id, err := up.publicID("Mi Foto Nueva.PNG")
	require.NoError(t, err)

	parts := strings.SplitN(id, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "1773489600000", parts[0])
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}$`), parts[1])
	assert.Equal(t, "mi-foto-nueva.png", parts[2])
}

func TestPublicIDFallbackName(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
	up := &CloudinaryUploader{clock: fc}

	id, err := up.publicID("   ")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(id, "-imagen"))
}

func TestUploadImageNotConfigured(t *testing.T) {
	up := &CloudinaryUploader{clock: clock.NewFakeClock(time.Now())}

	_, err := up.UploadImage(context.Background(), "foto.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
