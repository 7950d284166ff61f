package memory

import (
	"context"
	"sync"

	"github.com/andrasetya/draft-league/internal/domain/draft"
)

// DraftRepository is the default in-process draft store. Reads and writes
// exchange deep copies so a caller can stage roster changes and only
// commit them through Save.
type DraftRepository struct {
	mu    sync.RWMutex
	items map[string]draft.Draft
	order []string
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{items: make(map[string]draft.Draft)}
}

func (r *DraftRepository) GetByID(_ context.Context, draftID string) (draft.Draft, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[draftID]
	if !ok {
		return draft.Draft{}, false, nil
	}

	return cloneDraft(d), true, nil
}

func (r *DraftRepository) Save(_ context.Context, d draft.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.items[d.ID] = cloneDraft(d)

	return nil
}

func (r *DraftRepository) List(_ context.Context) ([]draft.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Draft, 0, len(r.order))
	for _, id := range r.order {
		if d, ok := r.items[id]; ok {
			out = append(out, cloneDraft(d))
		}
	}

	return out, nil
}

func (r *DraftRepository) Delete(_ context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, draftID)
	for i, id := range r.order {
		if id == draftID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func cloneDraft(d draft.Draft) draft.Draft {
	copied := d
	copied.Teams = make([]draft.Team, len(d.Teams))
	for i, t := range d.Teams {
		copied.Teams[i] = t
		copied.Teams[i].Roster = append([]draft.RosterEntry(nil), t.Roster...)
	}

	return copied
}
