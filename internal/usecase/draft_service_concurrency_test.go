package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc"

	"github.com/andrasetya/draft-league/internal/domain/draft"
)

// Concurrent picks against one draft must serialize through the per-draft
// lock: every non-conflicting pick lands exactly once and the stored draft
// stays internally consistent.
func TestSelectPlayer_ConcurrentPicksOneDraft(t *testing.T) {
	t.Parallel()

	svc, _, repo := newTestServices(t, completionCatalog())
	d := mustCreateDraft(t, svc, "top_5_leagues", 2)

	type pick struct {
		playerID string
		teamID   string
		slot     string
	}

	slotOrder := []string{"GK", "LB", "LCB", "RCB", "RB", "LCM", "CM", "RCM", "LW", "ST", "RW"}
	players := map[string][]string{
		"GK":  {"gk1", "gk2"},
		"LB":  {"def1", "def2"},
		"LCB": {"def3", "def4"},
		"RCB": {"def5", "def6"},
		"RB":  {"def7", "def8"},
		"LCM": {"mid1", "mid2"},
		"CM":  {"mid3", "mid4"},
		"RCM": {"mid5", "mid6"},
		"LW":  {"fwd1", "fwd2"},
		"ST":  {"fwd3", "fwd4"},
		"RW":  {"fwd5", "fwd6"},
	}

	picks := make([]pick, 0, 22)
	for _, slot := range slotOrder {
		for teamIdx := 0; teamIdx < 2; teamIdx++ {
			picks = append(picks, pick{
				playerID: players[slot][teamIdx],
				teamID:   d.Teams[teamIdx].ID,
				slot:     slot,
			})
		}
	}

	var failures atomic.Int64
	var wg conc.WaitGroup
	for _, p := range picks {
		p := p
		wg.Go(func() {
			_, err := svc.SelectPlayer(context.Background(), SelectPlayerInput{
				DraftID:  d.ID,
				PlayerID: p.playerID,
				TeamID:   p.teamID,
				Slot:     p.slot,
			})
			if err != nil {
				failures.Add(1)
				t.Logf("pick %s/%s failed: %v", p.playerID, p.slot, err)
			}
		})
	}
	wg.Wait()

	if got := failures.Load(); got != 0 {
		t.Fatalf("%d of %d non-conflicting concurrent picks failed", got, len(picks))
	}

	final, ok, err := repo.GetByID(context.Background(), d.ID)
	if err != nil || !ok {
		t.Fatalf("reload draft: ok=%t err=%v", ok, err)
	}
	if final.Status != draft.StatusCompleted {
		t.Fatalf("status %s after all picks, want completed", final.Status)
	}

	seen := make(map[string]struct{}, 22)
	for i, team := range final.Teams {
		if len(team.Roster) != len(draft.AllSlots) {
			t.Fatalf("team %d roster has %d entries, want %d", i, len(team.Roster), len(draft.AllSlots))
		}
		for _, e := range team.Roster {
			if _, dup := seen[e.PlayerID]; dup {
				t.Fatalf("player %s drafted twice", e.PlayerID)
			}
			seen[e.PlayerID] = struct{}{}
		}
	}
}

// Conflicting concurrent picks targeting the same slot: exactly one wins.
func TestSelectPlayer_ConcurrentSlotContention(t *testing.T) {
	t.Parallel()

	svc, _, repo := newTestServices(t, completionCatalog())
	d := mustCreateDraft(t, svc, "top_5_leagues", 2)
	teamID := d.Teams[0].ID

	const contenders = 6
	var wins atomic.Int64
	var wg conc.WaitGroup
	for i := 1; i <= contenders; i++ {
		playerID := fmt.Sprintf("fwd%d", i)
		wg.Go(func() {
			_, err := svc.SelectPlayer(context.Background(), SelectPlayerInput{
				DraftID:  d.ID,
				PlayerID: playerID,
				TeamID:   teamID,
				Slot:     "ST",
			})
			if err == nil {
				wins.Add(1)
			}
		})
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("%d picks won the ST slot, want exactly 1", got)
	}

	final, _, _ := repo.GetByID(context.Background(), d.ID)
	if len(final.Teams[0].Roster) != 1 {
		t.Fatalf("team roster has %d entries after contention, want 1", len(final.Teams[0].Roster))
	}
	if final.Teams[0].Roster[0].Slot != draft.SlotST {
		t.Fatalf("winning entry landed in %s, want ST", final.Teams[0].Roster[0].Slot)
	}
}

// Picks on different drafts never contend with each other.
func TestSelectPlayer_ConcurrentAcrossDrafts(t *testing.T) {
	t.Parallel()

	svc, _, repo := newTestServices(t, completionCatalog())

	const draftCount = 8
	ids := make([]string, draftCount)
	teams := make([]string, draftCount)
	for i := range ids {
		d := mustCreateDraft(t, svc, "top_5_leagues", 2)
		ids[i] = d.ID
		teams[i] = d.Teams[0].ID
	}

	var wg conc.WaitGroup
	errs := make([]error, draftCount)
	for i := range ids {
		i := i
		wg.Go(func() {
			_, errs[i] = svc.SelectPlayer(context.Background(), SelectPlayerInput{
				DraftID:  ids[i],
				PlayerID: "gk1",
				TeamID:   teams[i],
				Slot:     "GK",
			})
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("draft %d pick failed: %v", i, err)
		}
		stored, _, _ := repo.GetByID(context.Background(), ids[i])
		if len(stored.Teams[0].Roster) != 1 {
			t.Fatalf("draft %d roster has %d entries, want 1", i, len(stored.Teams[0].Roster))
		}
	}
}
