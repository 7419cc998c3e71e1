package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/fleveque/heroes-service/internal/model"
)

// referenceHeroes is the fixed data set served by the in-memory repository
// and seeded into SQL databases by the migrations.
var referenceHeroes = []model.Hero{
	{ID: "1", Name: "Wonder Woman"},
	{ID: "2", Name: "Deadpool"},
}

// ReferenceHeroes returns a copy of the built-in hero data set.
func ReferenceHeroes() []model.Hero {
	return append([]model.Hero(nil), referenceHeroes...)
}

// memoryHeroRepository serves the reference heroes from memory. It pretends
// to be a remote store by waiting `latency` before every lookup.
type memoryHeroRepository struct {
	heroes  []model.Hero
	latency time.Duration
}

// NewMemoryHeroRepository creates the in-memory HeroRepository. A zero
// latency skips the simulated round trip.
func NewMemoryHeroRepository(latency time.Duration) HeroRepository {
	return &memoryHeroRepository{
		heroes:  referenceHeroes,
		latency: latency,
	}
}

func (r *memoryHeroRepository) FindByNamePattern(ctx context.Context, pattern string) ([]model.Hero, error) {
	if err := r.roundTrip(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOther, err)
	}

	p := model.ParseNamePattern(pattern)
	var found []model.Hero
	for _, h := range r.heroes {
		if p.Matches(h.Name) {
			found = append(found, h)
		}
	}

	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found, nil
}

// roundTrip blocks for the configured latency or until ctx is done.
// Abandoning it leaves nothing behind: the repository holds no mutable state.
func (r *memoryHeroRepository) roundTrip(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
