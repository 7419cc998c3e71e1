package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fleveque/heroes-service/internal/model"
)

// likeEscaper escapes LIKE metacharacters with '!'. A backslash would need
// different quoting in SQLite and MySQL string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

const (
	selectByPrefix = `SELECT id, name FROM heroes WHERE name LIKE ? ESCAPE '!' ORDER BY seq`
	selectByName   = `SELECT id, name FROM heroes WHERE name = ? ORDER BY seq`
)

// sqlHeroRepository is the SQL implementation of HeroRepository. It works on
// both SQLite and MySQL since the queries only use `?` placeholders.
type sqlHeroRepository struct {
	db *sqlx.DB
}

// NewHeroRepository creates a SQL-backed HeroRepository.
func NewHeroRepository(db *sqlx.DB) HeroRepository {
	return &sqlHeroRepository{db: db}
}

func (r *sqlHeroRepository) FindByNamePattern(ctx context.Context, pattern string) ([]model.Hero, error) {
	p := model.ParseNamePattern(pattern)

	var rows []model.Hero
	var err error
	if p.Prefix {
		err = r.db.SelectContext(ctx, &rows, selectByPrefix, likeEscaper.Replace(p.Value)+"%")
	} else {
		err = r.db.SelectContext(ctx, &rows, selectByName, p.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: finding heroes by %q: %w", ErrTechnical, pattern, err)
	}

	// LIKE and = follow the column collation, which is case-insensitive on
	// both SQLite (ASCII) and MySQL defaults. Re-check in Go.
	heroes := rows[:0]
	for _, h := range rows {
		if p.Matches(h.Name) {
			heroes = append(heroes, h)
		}
	}

	if len(heroes) == 0 {
		return nil, ErrNotFound
	}
	return heroes, nil
}
