package memory

import (
	"context"
	"testing"

	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
)

func sampleDraft(id string) draft.Draft {
	return draft.Draft{
		ID:     id,
		Name:   "Draft " + id,
		Mode:   draft.ModePremierLeague,
		Status: draft.StatusSetup,
		Teams: []draft.Team{
			{ID: id + "-t1", Name: "Team 1", OwnerID: "u1"},
			{ID: id + "-t2", Name: "Team 2", OwnerID: "ai-1"},
		},
	}
}

func TestDraftRepository_SaveAndGet(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	if _, ok, err := repo.GetByID(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing draft: ok=%t err=%v", ok, err)
	}

	d := sampleDraft("d1")
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, "d1")
	if err != nil || !ok {
		t.Fatalf("GetByID: ok=%t err=%v", ok, err)
	}
	if got.Name != d.Name || len(got.Teams) != 2 {
		t.Fatalf("unexpected stored draft: %+v", got)
	}
}

func TestDraftRepository_ReadsAreIsolated(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleDraft("d1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating a loaded copy must not leak into the store until Save.
	loaded, _, _ := repo.GetByID(ctx, "d1")
	loaded.Teams[0].Roster = append(loaded.Teams[0].Roster, draft.RosterEntry{
		PlayerID: "p1",
		Position: player.PositionForward,
		Slot:     draft.SlotST,
	})
	loaded.Status = draft.StatusInProgress

	stored, _, _ := repo.GetByID(ctx, "d1")
	if len(stored.Teams[0].Roster) != 0 {
		t.Fatalf("roster mutation leaked into the store")
	}
	if stored.Status != draft.StatusSetup {
		t.Fatalf("status mutation leaked into the store")
	}

	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("Save staged copy: %v", err)
	}
	stored, _, _ = repo.GetByID(ctx, "d1")
	if len(stored.Teams[0].Roster) != 1 {
		t.Fatalf("saved roster not visible after commit")
	}
}

func TestDraftRepository_ListKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	for _, id := range []string{"d1", "d2", "d3"} {
		if err := repo.Save(ctx, sampleDraft(id)); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	// Re-saving an existing draft must not move it.
	if err := repo.Save(ctx, sampleDraft("d1")); err != nil {
		t.Fatalf("re-save d1: %v", err)
	}

	drafts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("List returned %d drafts, want 3", len(drafts))
	}
	for i, want := range []string{"d1", "d2", "d3"} {
		if drafts[i].ID != want {
			t.Fatalf("draft %d is %s, want %s", i, drafts[i].ID, want)
		}
	}
}

func TestDraftRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleDraft("d1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok, _ := repo.GetByID(ctx, "d1"); ok {
		t.Fatalf("draft still present after delete")
	}
	if drafts, _ := repo.List(ctx); len(drafts) != 0 {
		t.Fatalf("List still returns %d drafts after delete", len(drafts))
	}

	// Deleting an absent draft is a no-op.
	if err := repo.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete absent draft: %v", err)
	}
}
