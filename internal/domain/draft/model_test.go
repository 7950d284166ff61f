package draft

import (
	"errors"
	"testing"

	"github.com/andrasetya/draft-league/internal/domain/player"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"premier_league", "champions_league", "top_5_leagues"} {
		mode, err := ParseMode(raw)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", raw, err)
		}
		if string(mode) != raw {
			t.Fatalf("ParseMode(%q) = %q", raw, mode)
		}
	}

	if _, err := ParseMode("serie_a"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if _, err := ParseMode(""); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode for empty mode, got %v", err)
	}
}

func fullRoster() []RosterEntry {
	out := make([]RosterEntry, 0, len(AllSlots))
	clubs := []string{"A", "B", "C", "D", "E", "F"}
	for i, slot := range AllSlots {
		out = append(out, RosterEntry{
			PlayerID: string(slot) + "-player",
			Position: PositionOfSlot(slot),
			Club:     clubs[i%len(clubs)],
			Slot:     slot,
		})
	}

	return out
}

func TestTeamRosterComplete(t *testing.T) {
	t.Parallel()

	team := Team{ID: "t1", Roster: fullRoster()}
	if !team.RosterComplete() {
		t.Fatalf("11-slot roster should be complete")
	}

	team.Roster = team.Roster[:10]
	if team.RosterComplete() {
		t.Fatalf("10-slot roster should not be complete")
	}
}

func TestTeamNextRequiredPosition(t *testing.T) {
	t.Parallel()

	team := Team{ID: "t1"}
	pos, ok := team.NextRequiredPosition()
	if !ok || pos != player.PositionGoalkeeper {
		t.Fatalf("empty roster should require GK first, got %s ok=%t", pos, ok)
	}

	team.Roster = append(team.Roster, RosterEntry{PlayerID: "gk", Position: player.PositionGoalkeeper, Slot: SlotGK})
	pos, ok = team.NextRequiredPosition()
	if !ok || pos != player.PositionDefender {
		t.Fatalf("after GK the next position should be DEF, got %s ok=%t", pos, ok)
	}

	team.Roster = fullRoster()
	if _, ok := team.NextRequiredPosition(); ok {
		t.Fatalf("full roster should not require any position")
	}
}

func TestDraftComplete(t *testing.T) {
	t.Parallel()

	d := Draft{
		ID:   "d1",
		Name: "Test",
		Mode: ModePremierLeague,
		Teams: []Team{
			{ID: "t1", Roster: fullRoster()},
			{ID: "t2", Roster: fullRoster()},
		},
	}
	if !d.Complete() {
		t.Fatalf("draft with all rosters full should be complete")
	}

	d.Teams[1].Roster = d.Teams[1].Roster[:5]
	if d.Complete() {
		t.Fatalf("draft with a partial roster should not be complete")
	}
}

func TestDraftIsTeamsTurn(t *testing.T) {
	t.Parallel()

	d := Draft{
		Teams: []Team{
			{ID: "t1", OwnerID: "alice"},
			{ID: "t2", OwnerID: "ai-1"},
		},
		CurrentTeamIndex: 1,
	}

	if d.IsTeamsTurn("alice") {
		t.Fatalf("it is not alice's turn")
	}
	if !d.IsTeamsTurn("ai-1") {
		t.Fatalf("it should be ai-1's turn")
	}
}

func TestDraftValidateBasic(t *testing.T) {
	t.Parallel()

	valid := Draft{
		ID:    "d1",
		Name:  "Test",
		Mode:  ModeTopFiveLeagues,
		Teams: []Team{{ID: "t1"}, {ID: "t2"}},
	}
	if err := valid.ValidateBasic(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"missing id", func(d *Draft) { d.ID = "" }},
		{"missing name", func(d *Draft) { d.Name = "" }},
		{"bad mode", func(d *Draft) { d.Mode = "serie_a" }},
		{"one team", func(d *Draft) { d.Teams = d.Teams[:1] }},
		{"index out of range", func(d *Draft) { d.CurrentTeamIndex = 2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			d.Teams = append([]Team(nil), valid.Teams...)
			tc.mutate(&d)
			if err := d.ValidateBasic(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
