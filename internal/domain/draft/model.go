package draft

import (
	"fmt"
	"time"

	"github.com/andrasetya/draft-league/internal/domain/player"
)

// Mode selects which slice of the catalog is draftable.
type Mode string

const (
	ModePremierLeague   Mode = "premier_league"
	ModeChampionsLeague Mode = "champions_league"
	ModeTopFiveLeagues  Mode = "top_5_leagues"
)

var AllModes = map[Mode]struct{}{
	ModePremierLeague:   {},
	ModeChampionsLeague: {},
	ModeTopFiveLeagues:  {},
}

func ParseMode(v string) (Mode, error) {
	m := Mode(v)
	if _, ok := AllModes[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, v)
	}

	return m, nil
}

// Status is the draft lifecycle state. Transitions only move forward:
// setup -> in_progress -> completed.
type Status string

const (
	StatusSetup      Status = "setup"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Slot is one of the 11 fixed formation positions in a 4-3-3.
type Slot string

const (
	SlotGK  Slot = "GK"
	SlotLB  Slot = "LB"
	SlotLCB Slot = "LCB"
	SlotRCB Slot = "RCB"
	SlotRB  Slot = "RB"
	SlotLCM Slot = "LCM"
	SlotCM  Slot = "CM"
	SlotRCM Slot = "RCM"
	SlotLW  Slot = "LW"
	SlotST  Slot = "ST"
	SlotRW  Slot = "RW"
)

// AllSlots lists every formation slot in pitch order. A roster is complete
// when each of these is occupied.
var AllSlots = []Slot{
	SlotGK,
	SlotLB, SlotLCB, SlotRCB, SlotRB,
	SlotLCM, SlotCM, SlotRCM,
	SlotLW, SlotST, SlotRW,
}

// ParseSlot validates a caller-supplied slot label. The empty string is
// accepted and means "no slot assigned yet".
func ParseSlot(v string) (Slot, error) {
	if v == "" {
		return "", nil
	}
	s := Slot(v)
	if _, ok := slotPositions[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, v)
	}

	return s, nil
}

// RosterEntry is a catalog player copied into a team's roster, optionally
// bound to a formation slot.
type RosterEntry struct {
	PlayerID string
	Name     string
	Position player.Position
	Club     string
	League   string
	Slot     Slot
}

// Team is one participant squad inside a draft. Owner identity is opaque
// to the engine and only compared for turn ownership.
type Team struct {
	ID        string
	Name      string
	OwnerID   string
	OwnerName string
	Roster    []RosterEntry
}

// CountByClub reports how many roster players come from the given real
// football club.
func (t Team) CountByClub(club string) int {
	n := 0
	for _, entry := range t.Roster {
		if entry.Club == club {
			n++
		}
	}

	return n
}

// CountByPosition reports how many roster players occupy the given
// general position bucket.
func (t Team) CountByPosition(pos player.Position) int {
	n := 0
	for _, entry := range t.Roster {
		if entry.Position == pos {
			n++
		}
	}

	return n
}

// SlotTaken reports whether a formation slot is already occupied.
func (t Team) SlotTaken(slot Slot) bool {
	if slot == "" {
		return false
	}
	for _, entry := range t.Roster {
		if entry.Slot == slot {
			return true
		}
	}

	return false
}

// RosterComplete reports whether every formation slot is occupied.
func (t Team) RosterComplete() bool {
	for _, slot := range AllSlots {
		if !t.SlotTaken(slot) {
			return false
		}
	}

	return true
}

// NextRequiredPosition returns the first general position, in fixed
// GK/DEF/MID/FWD priority, whose roster count is below its cap. The
// second result is false when every cap is met.
func (t Team) NextRequiredPosition() (player.Position, bool) {
	for _, pos := range player.PositionPriority {
		if t.CountByPosition(pos) < CapByPosition(pos) {
			return pos, true
		}
	}

	return "", false
}

// Draft is the shared state machine advanced one pick at a time.
type Draft struct {
	ID               string
	Name             string
	Mode             Mode
	Teams            []Team
	Status           Status
	CurrentTeamIndex int
	CreatedAt        time.Time
}

func (d Draft) TeamIndexByID(teamID string) (int, bool) {
	for i, t := range d.Teams {
		if t.ID == teamID {
			return i, true
		}
	}

	return 0, false
}

// CurrentTeam returns the team whose turn it is to pick.
func (d Draft) CurrentTeam() Team {
	return d.Teams[d.CurrentTeamIndex]
}

// IsTeamsTurn reports whether the given owner identity controls the team
// currently on the clock.
func (d Draft) IsTeamsTurn(ownerID string) bool {
	return d.CurrentTeam().OwnerID == ownerID
}

// Complete reports whether every team's roster covers all 11 slots.
func (d Draft) Complete() bool {
	for _, t := range d.Teams {
		if !t.RosterComplete() {
			return false
		}
	}

	return true
}

// DraftedPlayerIDs collects every player already picked by any team.
func (d Draft) DraftedPlayerIDs() map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range d.Teams {
		for _, entry := range t.Roster {
			out[entry.PlayerID] = struct{}{}
		}
	}

	return out
}

func (d Draft) ValidateBasic() error {
	if d.ID == "" {
		return fmt.Errorf("draft id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("draft name is required")
	}
	if _, ok := AllModes[d.Mode]; !ok {
		return fmt.Errorf("invalid draft mode: %s", d.Mode)
	}
	if len(d.Teams) < 2 {
		return fmt.Errorf("draft requires at least 2 teams")
	}
	if d.CurrentTeamIndex < 0 || d.CurrentTeamIndex >= len(d.Teams) {
		return fmt.Errorf("current team index %d out of range", d.CurrentTeamIndex)
	}

	return nil
}
