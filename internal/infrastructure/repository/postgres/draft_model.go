package postgres

import "time"

type draftTableModel struct {
	ID               int64      `db:"id"`
	PublicID         string     `db:"public_id"`
	Name             string     `db:"name"`
	Mode             string     `db:"mode"`
	Status           string     `db:"status"`
	CurrentTeamIndex int        `db:"current_team_index"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

type draftTeamTableModel struct {
	ID            int64  `db:"id"`
	DraftPublicID string `db:"draft_public_id"`
	TeamPublicID  string `db:"team_public_id"`
	Position      int    `db:"position"`
	Name          string `db:"name"`
	OwnerID       string `db:"owner_id"`
	OwnerName     string `db:"owner_name"`
}

type draftRosterTableModel struct {
	ID            int64  `db:"id"`
	DraftPublicID string `db:"draft_public_id"`
	TeamPublicID  string `db:"team_public_id"`
	PlayerID      string `db:"player_id"`
	PlayerName    string `db:"player_name"`
	Position      string `db:"position"`
	Club          string `db:"club"`
	League        string `db:"league"`
	Slot          string `db:"slot"`
	PickNumber    int    `db:"pick_number"`
}
