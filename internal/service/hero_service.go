// Package service contains the hero lookup logic that sits between the HTTP
// handler and the repository port: filter normalization, logging and
// lookup metrics.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fleveque/heroes-service/internal/metrics"
	"github.com/fleveque/heroes-service/internal/model"
	"github.com/fleveque/heroes-service/internal/storage"
)

// HeroService looks heroes up by name. It holds no per-request state and is
// safe for concurrent use; any synchronization belongs to the repository.
type HeroService struct {
	repo    storage.HeroRepository
	metrics *metrics.Metrics // may be nil
	logger  *zap.Logger
}

// NewHeroService creates a HeroService over any HeroRepository.
func NewHeroService(repo storage.HeroRepository, m *metrics.Metrics, logger *zap.Logger) *HeroService {
	return &HeroService{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// Find normalizes the optional name filter and runs the lookup. The
// repository outcome is returned unchanged; there is no retry and no cache.
func (s *HeroService) Find(ctx context.Context, name string, present bool) ([]model.Hero, error) {
	pattern := model.NormalizeNameFilter(name, present)

	heroes, err := s.repo.FindByNamePattern(ctx, pattern)

	kind := storage.Classify(err)
	s.metrics.ObserveLookup(kind.String())

	switch kind {
	case storage.KindNone:
		s.logger.Debug("heroes found",
			zap.String("pattern", pattern),
			zap.Int("count", len(heroes)),
		)
	case storage.KindNotFound:
		// Expected outcome, not an error.
		s.logger.Debug("no hero matches", zap.String("pattern", pattern))
	default:
		s.logger.Error("hero lookup failed",
			zap.String("pattern", pattern),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
	}

	return heroes, err
}
