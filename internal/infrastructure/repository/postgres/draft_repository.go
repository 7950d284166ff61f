package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
)

// DraftRepository stores drafts across three tables: drafts, draft_teams
// and draft_roster. Save replaces the whole draft inside one transaction
// so a pick is either fully visible or not at all.
type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) GetByID(ctx context.Context, draftID string) (draft.Draft, bool, error) {
	const draftQuery = `
SELECT public_id, name, mode, status, current_team_index, created_at
FROM drafts
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row struct {
		PublicID         string    `db:"public_id"`
		Name             string    `db:"name"`
		Mode             string    `db:"mode"`
		Status           string    `db:"status"`
		CurrentTeamIndex int       `db:"current_team_index"`
		CreatedAt        time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &row, draftQuery, draftID); err != nil {
		if isNotFound(err) {
			return draft.Draft{}, false, nil
		}
		return draft.Draft{}, false, fmt.Errorf("get draft: %w", err)
	}

	teams, err := r.loadTeams(ctx, draftID)
	if err != nil {
		return draft.Draft{}, false, err
	}

	return draft.Draft{
		ID:               row.PublicID,
		Name:             row.Name,
		Mode:             draft.Mode(row.Mode),
		Teams:            teams,
		Status:           draft.Status(row.Status),
		CurrentTeamIndex: row.CurrentTeamIndex,
		CreatedAt:        row.CreatedAt,
	}, true, nil
}

func (r *DraftRepository) loadTeams(ctx context.Context, draftID string) ([]draft.Team, error) {
	const teamsQuery = `
SELECT team_public_id, position, name, owner_id, owner_name
FROM draft_teams
WHERE draft_public_id = $1
ORDER BY position`

	var teamRows []struct {
		TeamPublicID string `db:"team_public_id"`
		Position     int    `db:"position"`
		Name         string `db:"name"`
		OwnerID      string `db:"owner_id"`
		OwnerName    string `db:"owner_name"`
	}
	if err := r.db.SelectContext(ctx, &teamRows, teamsQuery, draftID); err != nil {
		return nil, fmt.Errorf("list draft teams: %w", err)
	}

	const rosterQuery = `
SELECT team_public_id, player_id, player_name, position, club, league, slot
FROM draft_roster
WHERE draft_public_id = $1
ORDER BY pick_number`

	var rosterRows []struct {
		TeamPublicID string `db:"team_public_id"`
		PlayerID     string `db:"player_id"`
		PlayerName   string `db:"player_name"`
		Position     string `db:"position"`
		Club         string `db:"club"`
		League       string `db:"league"`
		Slot         string `db:"slot"`
	}
	if err := r.db.SelectContext(ctx, &rosterRows, rosterQuery, draftID); err != nil {
		return nil, fmt.Errorf("list draft roster: %w", err)
	}

	rosterByTeam := make(map[string][]draft.RosterEntry, len(teamRows))
	for _, rr := range rosterRows {
		rosterByTeam[rr.TeamPublicID] = append(rosterByTeam[rr.TeamPublicID], draft.RosterEntry{
			PlayerID: rr.PlayerID,
			Name:     rr.PlayerName,
			Position: player.Position(rr.Position),
			Club:     rr.Club,
			League:   rr.League,
			Slot:     draft.Slot(rr.Slot),
		})
	}

	teams := make([]draft.Team, 0, len(teamRows))
	for _, tr := range teamRows {
		teams = append(teams, draft.Team{
			ID:        tr.TeamPublicID,
			Name:      tr.Name,
			OwnerID:   tr.OwnerID,
			OwnerName: tr.OwnerName,
			Roster:    rosterByTeam[tr.TeamPublicID],
		})
	}

	return teams, nil
}

func (r *DraftRepository) Save(ctx context.Context, d draft.Draft) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for draft save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertDraftQuery = `
INSERT INTO drafts (public_id, name, mode, status, current_team_index, created_at)
VALUES (:public_id, :name, :mode, :status, :current_team_index, :created_at)
ON CONFLICT (public_id)
DO UPDATE SET
    name = EXCLUDED.name,
    status = EXCLUDED.status,
    current_team_index = EXCLUDED.current_team_index,
    updated_at = NOW(),
    deleted_at = NULL`

	upsertSQL, upsertArgs, err := sqlx.Named(upsertDraftQuery, map[string]any{
		"public_id":          d.ID,
		"name":               d.Name,
		"mode":               string(d.Mode),
		"status":             string(d.Status),
		"current_team_index": d.CurrentTeamIndex,
		"created_at":         d.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind upsert draft query: %w", err)
	}
	upsertSQL = tx.Rebind(upsertSQL)
	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}

	const clearTeamsQuery = `DELETE FROM draft_teams WHERE draft_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearTeamsQuery, d.ID); err != nil {
		return fmt.Errorf("clear draft teams: %w", err)
	}
	const clearRosterQuery = `DELETE FROM draft_roster WHERE draft_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearRosterQuery, d.ID); err != nil {
		return fmt.Errorf("clear draft roster: %w", err)
	}

	const insertTeamQuery = `
INSERT INTO draft_teams (draft_public_id, team_public_id, position, name, owner_id, owner_name)
VALUES (:draft_public_id, :team_public_id, :position, :name, :owner_id, :owner_name)`

	const insertRosterQuery = `
INSERT INTO draft_roster (draft_public_id, team_public_id, player_id, player_name, position, club, league, slot, pick_number)
VALUES (:draft_public_id, :team_public_id, :player_id, :player_name, :position, :club, :league, :slot, :pick_number)`

	for i, t := range d.Teams {
		teamSQL, teamArgs, err := sqlx.Named(insertTeamQuery, map[string]any{
			"draft_public_id": d.ID,
			"team_public_id":  t.ID,
			"position":        i,
			"name":            t.Name,
			"owner_id":        t.OwnerID,
			"owner_name":      t.OwnerName,
		})
		if err != nil {
			return fmt.Errorf("bind insert draft team %s query: %w", t.ID, err)
		}
		teamSQL = tx.Rebind(teamSQL)
		if _, err := tx.ExecContext(ctx, teamSQL, teamArgs...); err != nil {
			return fmt.Errorf("insert draft team %s: %w", t.ID, err)
		}

		for n, entry := range t.Roster {
			rosterSQL, rosterArgs, err := sqlx.Named(insertRosterQuery, map[string]any{
				"draft_public_id": d.ID,
				"team_public_id":  t.ID,
				"player_id":       entry.PlayerID,
				"player_name":     entry.Name,
				"position":        string(entry.Position),
				"club":            entry.Club,
				"league":          entry.League,
				"slot":            string(entry.Slot),
				"pick_number":     n,
			})
			if err != nil {
				return fmt.Errorf("bind insert roster entry player=%s query: %w", entry.PlayerID, err)
			}
			rosterSQL = tx.Rebind(rosterSQL)
			if _, err := tx.ExecContext(ctx, rosterSQL, rosterArgs...); err != nil {
				return fmt.Errorf("insert roster entry player=%s: %w", entry.PlayerID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit draft save tx: %w", err)
	}

	return nil
}

func (r *DraftRepository) List(ctx context.Context) ([]draft.Draft, error) {
	const listQuery = `
SELECT public_id
FROM drafts
WHERE deleted_at IS NULL
ORDER BY id`

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, listQuery); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	out := make([]draft.Draft, 0, len(ids))
	for _, id := range ids {
		d, ok, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}

	return out, nil
}

func (r *DraftRepository) Delete(ctx context.Context, draftID string) error {
	const deleteQuery = `
UPDATE drafts
SET deleted_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, deleteQuery, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	return nil
}
