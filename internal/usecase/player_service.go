package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
	"github.com/andrasetya/draft-league/internal/platform/cache"
	"github.com/andrasetya/draft-league/internal/platform/logging"
)

// PlayerService is the read side over the catalog: mode filtering and the
// derived available-players view for a draft.
type PlayerService struct {
	playerRepo           player.Repository
	draftRepo            draft.Repository
	championsLeagueClubs []string
	modeCache            *cache.Store
	logger               *logging.Logger
}

// NewPlayerService builds the query layer. modeCache may be nil to
// disable caching of per-mode catalog slices; the catalog is immutable so
// the cache holds no draft state either way.
func NewPlayerService(
	playerRepo player.Repository,
	draftRepo draft.Repository,
	championsLeagueClubs []string,
	modeCache *cache.Store,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo:           playerRepo,
		draftRepo:            draftRepo,
		championsLeagueClubs: championsLeagueClubs,
		modeCache:            modeCache,
		logger:               logger,
	}
}

// PlayersForMode returns the catalog slice draftable under the given mode.
func (s *PlayerService) PlayersForMode(ctx context.Context, rawMode string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.PlayersForMode")
	defer span.End()

	mode, err := draft.ParseMode(strings.TrimSpace(rawMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.modeCache == nil {
		return s.loadPlayersForMode(ctx, mode)
	}

	value, err := s.modeCache.GetOrLoad(ctx, "players:mode:"+string(mode), func(ctx context.Context) (any, error) {
		return s.loadPlayersForMode(ctx, mode)
	})
	if err != nil {
		return nil, err
	}

	players, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type for mode %s", mode)
	}

	// Callers receive their own copy; the cached slice stays pristine.
	return append([]player.Player(nil), players...), nil
}

func (s *PlayerService) loadPlayersForMode(ctx context.Context, mode draft.Mode) ([]player.Player, error) {
	catalog, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return filterByMode(catalog, mode, s.championsLeagueClubs), nil
}

// AvailablePlayers returns the mode pool minus every player already on a
// roster in the draft. It is recomputed from the stored draft on every
// call and never cached across picks.
func (s *PlayerService) AvailablePlayers(ctx context.Context, draftID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AvailablePlayers")
	defer span.End()

	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return nil, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}

	d, ok, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: draft=%s", ErrDraftNotFound, draftID)
	}

	pool, err := s.PlayersForMode(ctx, string(d.Mode))
	if err != nil {
		return nil, err
	}

	drafted := d.DraftedPlayerIDs()
	out := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if _, taken := drafted[p.ID]; !taken {
			out = append(out, p)
		}
	}

	return out, nil
}
