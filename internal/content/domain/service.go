package domain

import (
	"context"
	"errors"
)

// ErrNotConfigured means the remote document store credentials are absent.
// Admin content editing is disabled, public pages serve defaults.
var ErrNotConfigured = errors.New("content_backend_not_configured")

// Repository stores the two singleton content documents. Saves replace the
// whole document (last write wins).
type Repository interface {
	GetLanding(ctx context.Context) (map[string]any, error)
	SaveLanding(ctx context.Context, content LandingContent) error
	GetHomeSections(ctx context.Context) (map[string]any, error)
	SaveHomeSections(ctx context.Context, content HomeSectionsContent) error
}

// Service merges stored documents with defaults. Public reads never fail:
// backend errors degrade to the default content.
type Service interface {
	Landing(ctx context.Context) LandingContent
	HomeSections(ctx context.Context) HomeSectionsContent

	AdminLanding(ctx context.Context) (LandingContent, error)
	SaveLanding(ctx context.Context, raw map[string]any) (LandingContent, error)
	AdminHomeSections(ctx context.Context) (HomeSectionsContent, error)
	SaveHomeSections(ctx context.Context, raw map[string]any) (HomeSectionsContent, error)
}
