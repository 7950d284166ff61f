package player

import "fmt"

// Position represents the four general football position buckets.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// PositionPriority is the fixed order used when deriving the next
// required position for a roster.
var PositionPriority = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// Player is a draftable athlete in the static catalog. The catalog owns
// these entries; drafts only copy them into rosters.
type Player struct {
	ID       string
	Name     string
	Position Position
	Club     string
	League   string
	ImageURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Club == "" {
		return fmt.Errorf("player club is required")
	}
	if p.League == "" {
		return fmt.Errorf("player league is required")
	}

	return nil
}
