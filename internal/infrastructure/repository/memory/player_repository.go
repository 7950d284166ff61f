package memory

import (
	"context"
	"sync"

	"github.com/andrasetya/draft-league/internal/domain/player"
)

// PlayerRepository holds the static player catalog in insertion order.
type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
	order []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		items[p.ID] = p
		order = append(order, p.ID)
	}

	return &PlayerRepository{items: items, order: order}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}
