package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
	"github.com/andrasetya/draft-league/internal/domain/user"
	idgen "github.com/andrasetya/draft-league/internal/platform/id"
	"github.com/andrasetya/draft-league/internal/platform/logging"
)

// CreateDraftInput is the incoming payload for starting a new draft.
type CreateDraftInput struct {
	Name              string
	Mode              string
	TeamCount         int
	Owner             user.Principal
	OwnerTeamName     string
	OpponentTeamNames []string
}

// SelectPlayerInput is the incoming payload for one draft pick.
type SelectPlayerInput struct {
	DraftID  string
	PlayerID string
	TeamID   string
	Slot     string
}

// DraftService is the draft engine: it creates drafts, validates and
// applies picks, advances the turn, and detects completion.
type DraftService struct {
	draftRepo            draft.Repository
	playerRepo           player.Repository
	championsLeagueClubs []string
	idGen                idgen.Generator
	logger               *logging.Logger
	now                  func() time.Time

	// Picks against the same draft must serialize their
	// check-then-mutate sequence; different drafts stay independent.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewDraftService(
	draftRepo draft.Repository,
	playerRepo player.Repository,
	championsLeagueClubs []string,
	idGen idgen.Generator,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DraftService{
		draftRepo:            draftRepo,
		playerRepo:           playerRepo,
		championsLeagueClubs: championsLeagueClubs,
		idGen:                idGen,
		logger:               logger,
		now:                  time.Now,
		locks:                make(map[string]*sync.Mutex),
	}
}

func (s *DraftService) lockDraft(draftID string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[draftID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[draftID] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// CreateDraft allocates a draft with the owner's team first, empty
// rosters, status setup, and the turn on team 0.
func (s *DraftService) CreateDraft(ctx context.Context, input CreateDraftInput) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CreateDraft")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.OwnerTeamName = strings.TrimSpace(input.OwnerTeamName)

	if input.Name == "" {
		return draft.Draft{}, fmt.Errorf("%w: draft name is required", ErrInvalidInput)
	}
	if err := input.Owner.Validate(); err != nil {
		return draft.Draft{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.TeamCount < 2 {
		return draft.Draft{}, fmt.Errorf("%w: at least 2 teams are required", ErrInvalidInput)
	}

	mode, err := draft.ParseMode(input.Mode)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	draftID, err := s.idGen.NewID()
	if err != nil {
		return draft.Draft{}, fmt.Errorf("generate draft id: %w", err)
	}

	teams := make([]draft.Team, 0, input.TeamCount)
	for i := 0; i < input.TeamCount; i++ {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return draft.Draft{}, fmt.Errorf("generate team id: %w", err)
		}

		if i == 0 {
			name := input.OwnerTeamName
			if name == "" {
				name = fmt.Sprintf("%s's Team", input.Owner.Username)
			}
			teams = append(teams, draft.Team{
				ID:        teamID,
				Name:      name,
				OwnerID:   input.Owner.UserID,
				OwnerName: input.Owner.Username,
			})
			continue
		}

		name := ""
		if i-1 < len(input.OpponentTeamNames) {
			name = strings.TrimSpace(input.OpponentTeamNames[i-1])
		}
		if name == "" {
			name = fmt.Sprintf("Team %d", i+1)
		}
		teams = append(teams, draft.Team{
			ID:        teamID,
			Name:      name,
			OwnerID:   fmt.Sprintf("ai-%d", i),
			OwnerName: fmt.Sprintf("Player %d", i),
		})
	}

	d := draft.Draft{
		ID:               draftID,
		Name:             input.Name,
		Mode:             mode,
		Teams:            teams,
		Status:           draft.StatusSetup,
		CurrentTeamIndex: 0,
		CreatedAt:        s.now().UTC(),
	}

	if err := d.ValidateBasic(); err != nil {
		return draft.Draft{}, fmt.Errorf("validate draft: %w", err)
	}

	if err := s.draftRepo.Save(ctx, d); err != nil {
		return draft.Draft{}, fmt.Errorf("save draft: %w", err)
	}

	s.logger.InfoContext(ctx, "draft created",
		"draft_id", d.ID,
		"mode", string(d.Mode),
		"team_count", len(d.Teams),
		"owner_id", input.Owner.UserID,
	)

	return d, nil
}

// SelectPlayer validates and applies one pick. All checks run before any
// mutation; a failed pick leaves the stored draft untouched. On success
// the roster entry is added, the turn advances to the next team index
// regardless of roster completion, and the status is recomputed.
func (s *DraftService) SelectPlayer(ctx context.Context, input SelectPlayerInput) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SelectPlayer")
	defer span.End()

	slot, err := draft.ParseSlot(strings.TrimSpace(input.Slot))
	if err != nil {
		return draft.Draft{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	unlock := s.lockDraft(input.DraftID)
	defer unlock()

	return s.applyPick(ctx, input.DraftID, input.PlayerID, input.TeamID, slot)
}

func (s *DraftService) applyPick(ctx context.Context, draftID, playerID, teamID string, slot draft.Slot) (draft.Draft, error) {
	d, ok, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	if !ok {
		return draft.Draft{}, fmt.Errorf("%w: draft=%s", ErrDraftNotFound, draftID)
	}

	p, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return draft.Draft{}, fmt.Errorf("%w: player=%s", ErrPlayerNotFound, playerID)
	}

	teamIdx, ok := d.TeamIndexByID(teamID)
	if !ok {
		return draft.Draft{}, fmt.Errorf("%w: team=%s draft=%s", ErrTeamNotFound, teamID, draftID)
	}

	if err := draft.ValidatePick(d.Teams[teamIdx], p, slot); err != nil {
		return draft.Draft{}, err
	}

	d.Teams[teamIdx].Roster = append(d.Teams[teamIdx].Roster, draft.RosterEntry{
		PlayerID: p.ID,
		Name:     p.Name,
		Position: p.Position,
		Club:     p.Club,
		League:   p.League,
		Slot:     slot,
	})

	// The turn always rotates, even when the picking team just finished
	// its roster; callers route around fully drafted teams.
	d.CurrentTeamIndex = (d.CurrentTeamIndex + 1) % len(d.Teams)

	if d.Complete() {
		d.Status = draft.StatusCompleted
	} else if d.Status == draft.StatusSetup {
		d.Status = draft.StatusInProgress
	}

	if err := s.draftRepo.Save(ctx, d); err != nil {
		return draft.Draft{}, fmt.Errorf("save draft: %w", err)
	}

	s.logger.InfoContext(ctx, "player picked",
		"draft_id", d.ID,
		"team_id", teamID,
		"player_id", p.ID,
		"slot", string(slot),
		"status", string(d.Status),
	)

	return d, nil
}

// AutoPick makes a trivial automated pick for the team currently on the
// clock: next required position, its first free slot, and the first
// available player that passes the roster rules.
func (s *DraftService) AutoPick(ctx context.Context, draftID string) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.AutoPick")
	defer span.End()

	unlock := s.lockDraft(draftID)
	defer unlock()

	d, ok, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	if !ok {
		return draft.Draft{}, fmt.Errorf("%w: draft=%s", ErrDraftNotFound, draftID)
	}
	if d.Status == draft.StatusCompleted {
		return draft.Draft{}, fmt.Errorf("%w: draft=%s", ErrDraftCompleted, draftID)
	}

	team := d.CurrentTeam()

	catalog, err := s.playerRepo.List(ctx)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("list players: %w", err)
	}
	pool := filterByMode(catalog, d.Mode, s.championsLeagueClubs)
	drafted := d.DraftedPlayerIDs()

	for _, pos := range player.PositionPriority {
		if team.CountByPosition(pos) >= draft.CapByPosition(pos) {
			continue
		}

		slot, ok := firstFreeSlot(team, pos)
		if !ok {
			continue
		}

		for _, candidate := range pool {
			if candidate.Position != pos {
				continue
			}
			if _, taken := drafted[candidate.ID]; taken {
				continue
			}
			if team.CountByClub(candidate.Club) >= draft.MaxPlayersPerClub {
				continue
			}

			return s.applyPick(ctx, draftID, candidate.ID, team.ID, slot)
		}
	}

	return draft.Draft{}, fmt.Errorf("%w: no eligible player for team=%s draft=%s", ErrInvalidInput, team.ID, draftID)
}

func firstFreeSlot(t draft.Team, pos player.Position) (draft.Slot, bool) {
	for _, slot := range draft.SlotsForPosition(pos) {
		if !t.SlotTaken(slot) {
			return slot, true
		}
	}

	return "", false
}

// GetDraft returns the stored draft for the draft-room view.
func (s *DraftService) GetDraft(ctx context.Context, draftID string) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetDraft")
	defer span.End()

	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return draft.Draft{}, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}

	d, ok, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	if !ok {
		return draft.Draft{}, fmt.Errorf("%w: draft=%s", ErrDraftNotFound, draftID)
	}

	return d, nil
}

// ListDraftsByOwner returns the drafts created by the given owner, newest
// first. Ownership means the owner's team sits at index 0.
func (s *DraftService) ListDraftsByOwner(ctx context.Context, ownerID string) ([]draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListDraftsByOwner")
	defer span.End()

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	all, err := s.draftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	out := make([]draft.Draft, 0, len(all))
	for _, d := range all {
		if len(d.Teams) > 0 && d.Teams[0].OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sortDraftsNewestFirst(out)

	return out, nil
}

// DeleteDraft removes a draft from the store. Only the draft owner may
// delete it; the engine itself never deletes drafts as part of play.
func (s *DraftService) DeleteDraft(ctx context.Context, draftID, ownerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.DeleteDraft")
	defer span.End()

	d, ok, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return fmt.Errorf("get draft: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: draft=%s", ErrDraftNotFound, draftID)
	}
	if len(d.Teams) == 0 || d.Teams[0].OwnerID != ownerID {
		return fmt.Errorf("%w: only the draft owner can delete it", ErrUnauthorized)
	}

	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	s.logger.InfoContext(ctx, "draft deleted", "draft_id", draftID, "owner_id", ownerID)

	return nil
}

func sortDraftsNewestFirst(drafts []draft.Draft) {
	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.After(drafts[j].CreatedAt)
	})
}
