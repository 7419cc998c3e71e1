package storage

import (
	"context"
	"errors"

	"github.com/fleveque/heroes-service/internal/model"
)

// Data access failures. Callers check with errors.Is; implementations wrap
// the underlying cause with one of these so the kind survives wrapping.
var (
	// ErrNotFound means the lookup ran fine but matched zero heroes.
	ErrNotFound = errors.New("hero not found")
	// ErrTechnical means the storage itself failed (unreachable, bad query...).
	ErrTechnical = errors.New("storage failure")
	// ErrOther covers anything not classified above.
	ErrOther = errors.New("data access failure")
)

// HeroRepository is the data access port for heroes. Handlers depend on this
// interface only, so tests can script outcomes and real backends can be
// swapped in without touching the HTTP layer.
//
// FindByNamePattern returns the heroes whose name matches pattern: a trailing
// model.Wildcard means "starts with", anything else means exact equality.
// A successful result is never empty; zero matches is ErrNotFound.
type HeroRepository interface {
	FindByNamePattern(ctx context.Context, pattern string) ([]model.Hero, error)
}

// FailureKind is the category of a data access error.
type FailureKind int

const (
	KindNone FailureKind = iota
	KindNotFound
	KindTechnical
	KindOther
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindTechnical:
		return "technical"
	default:
		return "other"
	}
}

// Classify maps an error returned by a HeroRepository onto its category.
// Errors that don't wrap one of the sentinels are KindOther.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrTechnical):
		return KindTechnical
	default:
		return KindOther
	}
}
