package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
	"github.com/andrasetya/draft-league/internal/platform/logging"
	"github.com/andrasetya/draft-league/internal/usecase"
)

type Handler struct {
	draftService  *usecase.DraftService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	draftService *usecase.DraftService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		draftService:  draftService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type createDraftRequest struct {
	Name              string   `json:"name" validate:"required,max=120"`
	Mode              string   `json:"mode" validate:"required"`
	TeamCount         int      `json:"team_count" validate:"required,gte=2,lte=8"`
	TeamName          string   `json:"team_name" validate:"omitempty,max=120"`
	OpponentTeamNames []string `json:"opponent_team_names" validate:"omitempty,dive,max=120"`
}

type selectPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   string `json:"team_id" validate:"required"`
	Slot     string `json:"slot" validate:"required"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Club     string `json:"club"`
	League   string `json:"league"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type rosterEntryDTO struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Club     string `json:"club"`
	League   string `json:"league"`
	Slot     string `json:"slot"`
}

type draftTeamDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	OwnerID   string           `json:"ownerId"`
	OwnerName string           `json:"ownerName"`
	Roster    []rosterEntryDTO `json:"roster"`
}

type draftDTO struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Mode             string         `json:"mode"`
	Status           string         `json:"status"`
	CurrentTeamIndex int            `json:"currentTeamIndex"`
	CurrentTeamID    string         `json:"currentTeamId,omitempty"`
	Teams            []draftTeamDTO `json:"teams"`
	CreatedAtUTC     string         `json:"created_at_utc"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:       v.ID,
		Name:     v.Name,
		Position: string(v.Position),
		Club:     v.Club,
		League:   v.League,
		ImageURL: v.ImageURL,
	}
}

func playersToDTO(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}

	return out
}

func draftToDTO(ctx context.Context, v draft.Draft) draftDTO {
	ctx, span := startSpan(ctx, "httpapi.draftToDTO")
	defer span.End()

	teams := make([]draftTeamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		roster := make([]rosterEntryDTO, 0, len(t.Roster))
		for _, entry := range t.Roster {
			roster = append(roster, rosterEntryDTO{
				PlayerID: entry.PlayerID,
				Name:     entry.Name,
				Position: string(entry.Position),
				Club:     entry.Club,
				League:   entry.League,
				Slot:     string(entry.Slot),
			})
		}
		teams = append(teams, draftTeamDTO{
			ID:        t.ID,
			Name:      t.Name,
			OwnerID:   t.OwnerID,
			OwnerName: t.OwnerName,
			Roster:    roster,
		})
	}

	currentTeamID := ""
	if v.CurrentTeamIndex >= 0 && v.CurrentTeamIndex < len(v.Teams) {
		currentTeamID = v.Teams[v.CurrentTeamIndex].ID
	}

	return draftDTO{
		ID:               v.ID,
		Name:             v.Name,
		Mode:             string(v.Mode),
		Status:           string(v.Status),
		CurrentTeamIndex: v.CurrentTeamIndex,
		CurrentTeamID:    currentTeamID,
		Teams:            teams,
		CreatedAtUTC:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func draftsToDTO(ctx context.Context, drafts []draft.Draft) []draftDTO {
	out := make([]draftDTO, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, draftToDTO(ctx, d))
	}

	return out
}
