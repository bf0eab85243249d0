package service

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/itechperu/storefront/internal/content/domain"
	"github.com/itechperu/storefront/internal/content/repository"
)

type Params struct {
	fx.In

	Log *zap.Logger
	DB  *gorm.DB `optional:"true"`
}

type contentService struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	s := &contentService{log: p.Log}
	if p.DB != nil {
		s.repo = repository.New(p.DB)
	}
	return s
}

// Landing returns the landing copy for the public site. Missing or broken
// backends degrade to the built-in defaults.
func (s *contentService) Landing(ctx context.Context) domain.LandingContent {
	if s.repo == nil {
		return domain.DefaultLandingContent()
	}
	raw, err := s.repo.GetLanding(ctx)
	if err != nil {
		s.log.Warn("landing content read failed, serving defaults", zap.Error(err))
		return domain.DefaultLandingContent()
	}
	return domain.MergeLandingContent(raw)
}

func (s *contentService) HomeSections(ctx context.Context) domain.HomeSectionsContent {
	if s.repo == nil {
		return domain.DefaultHomeSectionsContent()
	}
	raw, err := s.repo.GetHomeSections(ctx)
	if err != nil {
		s.log.Warn("home sections read failed, serving defaults", zap.Error(err))
		return domain.DefaultHomeSectionsContent()
	}
	return domain.MergeHomeSectionsContent(raw)
}

func (s *contentService) AdminLanding(ctx context.Context) (domain.LandingContent, error) {
	if s.repo == nil {
		return domain.LandingContent{}, domain.ErrNotConfigured
	}
	raw, err := s.repo.GetLanding(ctx)
	if err != nil {
		return domain.LandingContent{}, err
	}
	return domain.MergeLandingContent(raw), nil
}

func (s *contentService) SaveLanding(ctx context.Context, raw map[string]any) (domain.LandingContent, error) {
	if s.repo == nil {
		return domain.LandingContent{}, domain.ErrNotConfigured
	}
	content := domain.MergeLandingContent(raw)
	if err := s.repo.SaveLanding(ctx, content); err != nil {
		return domain.LandingContent{}, err
	}
	return content, nil
}

func (s *contentService) AdminHomeSections(ctx context.Context) (domain.HomeSectionsContent, error) {
	if s.repo == nil {
		return domain.HomeSectionsContent{}, domain.ErrNotConfigured
	}
	raw, err := s.repo.GetHomeSections(ctx)
	if err != nil {
		return domain.HomeSectionsContent{}, err
	}
	return domain.MergeHomeSectionsContent(raw), nil
}

func (s *contentService) SaveHomeSections(ctx context.Context, raw map[string]any) (domain.HomeSectionsContent, error) {
	if s.repo == nil {
		return domain.HomeSectionsContent{}, domain.ErrNotConfigured
	}
	content := domain.MergeHomeSectionsContent(raw)
	if err := s.repo.SaveHomeSections(ctx, content); err != nil {
		return domain.HomeSectionsContent{}, err
	}
	return content, nil
}
