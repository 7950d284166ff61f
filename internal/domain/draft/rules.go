package draft

import (
	"errors"
	"fmt"

	"github.com/andrasetya/draft-league/internal/domain/player"
)

var (
	ErrUnknownMode         = errors.New("unknown draft mode")
	ErrInvalidSlot         = errors.New("unknown formation slot")
	ErrClubLimitExceeded   = errors.New("maximum 2 players from the same club allowed")
	ErrSlotMismatch        = errors.New("player cannot play in this slot")
	ErrPositionCapExceeded = errors.New("position cap reached")
	ErrSlotOccupied        = errors.New("slot is already filled")
)

// MaxPlayersPerClub caps how many players from one real club a single
// roster may hold.
const MaxPlayersPerClub = 2

var slotsByPosition = map[player.Position][]Slot{
	player.PositionGoalkeeper: {SlotGK},
	player.PositionDefender:   {SlotLB, SlotLCB, SlotRCB, SlotRB},
	player.PositionMidfielder: {SlotLCM, SlotCM, SlotRCM},
	player.PositionForward:    {SlotLW, SlotST, SlotRW},
}

var slotPositions = map[Slot]player.Position{
	SlotGK:  player.PositionGoalkeeper,
	SlotLB:  player.PositionDefender,
	SlotLCB: player.PositionDefender,
	SlotRCB: player.PositionDefender,
	SlotRB:  player.PositionDefender,
	SlotLCM: player.PositionMidfielder,
	SlotCM:  player.PositionMidfielder,
	SlotRCM: player.PositionMidfielder,
	SlotLW:  player.PositionForward,
	SlotST:  player.PositionForward,
	SlotRW:  player.PositionForward,
}

var capByPosition = map[player.Position]int{
	player.PositionGoalkeeper: 1,
	player.PositionDefender:   4,
	player.PositionMidfielder: 3,
	player.PositionForward:    3,
}

// SlotsForPosition returns the formation slots a general position may
// occupy.
func SlotsForPosition(pos player.Position) []Slot {
	return slotsByPosition[pos]
}

// PositionOfSlot returns the general position bucket a slot belongs to.
func PositionOfSlot(slot Slot) player.Position {
	return slotPositions[slot]
}

// CapByPosition returns the roster cap for a general position.
func CapByPosition(pos player.Position) int {
	return capByPosition[pos]
}

// IsSlotEligible reports whether a player may be assigned to a slot.
func IsSlotEligible(p player.Player, slot Slot) bool {
	return slotPositions[slot] == p.Position
}

// ValidatePick runs the roster-composition checks for adding p to team t,
// in the order callers depend on: club quota, slot eligibility, position
// cap, slot occupancy. Slot may be empty, which skips the slot checks.
// The team and player are not mutated.
func ValidatePick(t Team, p player.Player, slot Slot) error {
	if t.CountByClub(p.Club) >= MaxPlayersPerClub {
		return fmt.Errorf("%w: club=%s", ErrClubLimitExceeded, p.Club)
	}
	if slot != "" && !IsSlotEligible(p, slot) {
		return fmt.Errorf("%w: a %s cannot play as %s", ErrSlotMismatch, p.Position, slot)
	}
	if limit := CapByPosition(p.Position); t.CountByPosition(p.Position) >= limit {
		return fmt.Errorf("%w: maximum %d %s players allowed", ErrPositionCapExceeded, limit, p.Position)
	}
	if t.SlotTaken(slot) {
		return fmt.Errorf("%w: position %s", ErrSlotOccupied, slot)
	}

	return nil
}
