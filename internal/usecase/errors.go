package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Distinct not-found kinds let pick callers tell a stale draft id from a
// stale player list; all of them still satisfy errors.Is(err, ErrNotFound).
var (
	ErrDraftNotFound  = fmt.Errorf("%w: draft not found", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("%w: player not found", ErrNotFound)
	ErrTeamNotFound   = fmt.Errorf("%w: team not found", ErrNotFound)
)

// ErrDraftCompleted rejects automated picks against a finished draft.
var ErrDraftCompleted = errors.New("draft already completed")
