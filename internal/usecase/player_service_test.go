package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andrasetya/draft-league/internal/infrastructure/repository/memory"
	"github.com/andrasetya/draft-league/internal/platform/cache"
	idgen "github.com/andrasetya/draft-league/internal/platform/id"
	"github.com/andrasetya/draft-league/internal/platform/logging"
)

func TestPlayersForMode(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	playerRepo := memory.NewPlayerRepository(catalog)
	svc := NewPlayerService(playerRepo, memory.NewDraftRepository(), testClubs, nil, logging.NewNop())

	tests := []struct {
		mode    string
		wantIDs []string
	}{
		{"premier_league", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"champions_league", []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}},
		{"top_5_leagues", []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			players, err := svc.PlayersForMode(context.Background(), tc.mode)
			if err != nil {
				t.Fatalf("PlayersForMode(%s): %v", tc.mode, err)
			}
			if len(players) != len(tc.wantIDs) {
				t.Fatalf("mode %s returned %d players, want %d", tc.mode, len(players), len(tc.wantIDs))
			}
			for i, want := range tc.wantIDs {
				if players[i].ID != want {
					t.Fatalf("mode %s player %d is %s, want %s (catalog order must be preserved)", tc.mode, i, players[i].ID, want)
				}
			}
		})
	}
}

func TestPlayersForMode_ChampionsLeagueWhitelist(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository(testCatalog())
	// Narrow whitelist: only Barcelona qualifies.
	svc := NewPlayerService(playerRepo, memory.NewDraftRepository(), []string{"Barcelona"}, nil, logging.NewNop())

	players, err := svc.PlayersForMode(context.Background(), "champions_league")
	if err != nil {
		t.Fatalf("PlayersForMode: %v", err)
	}
	if len(players) != 1 || players[0].ID != "p8" {
		t.Fatalf("whitelist of one club should yield only p8, got %v", players)
	}
}

func TestPlayersForMode_InvalidMode(t *testing.T) {
	t.Parallel()

	svc := NewPlayerService(memory.NewPlayerRepository(nil), memory.NewDraftRepository(), nil, nil, logging.NewNop())

	if _, err := svc.PlayersForMode(context.Background(), "serie_a"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayersForMode_CachedSliceIsolation(t *testing.T) {
	t.Parallel()

	playerRepo := memory.NewPlayerRepository(testCatalog())
	store := cache.NewStore(time.Minute)
	svc := NewPlayerService(playerRepo, memory.NewDraftRepository(), testClubs, store, logging.NewNop())

	first, err := svc.PlayersForMode(context.Background(), "premier_league")
	if err != nil {
		t.Fatalf("PlayersForMode: %v", err)
	}
	first[0].Name = "mutated"

	second, err := svc.PlayersForMode(context.Background(), "premier_league")
	if err != nil {
		t.Fatalf("PlayersForMode (cached): %v", err)
	}
	if second[0].Name == "mutated" {
		t.Fatalf("mutating a returned slice leaked into the cache")
	}
}

func TestAvailablePlayers(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	draftRepo := memory.NewDraftRepository()
	playerRepo := memory.NewPlayerRepository(catalog)
	draftSvc := NewDraftService(draftRepo, playerRepo, testClubs, idgen.NewRandomGenerator(), logging.NewNop())
	playerSvc := NewPlayerService(playerRepo, draftRepo, testClubs, nil, logging.NewNop())

	d := mustCreateDraft(t, draftSvc, "premier_league", 2)

	available, err := playerSvc.AvailablePlayers(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("AvailablePlayers: %v", err)
	}
	if len(available) != 5 {
		t.Fatalf("fresh premier_league draft should offer 5 players, got %d", len(available))
	}

	if _, err := draftSvc.SelectPlayer(context.Background(), SelectPlayerInput{
		DraftID: d.ID, PlayerID: "p1", TeamID: d.Teams[0].ID, Slot: "ST",
	}); err != nil {
		t.Fatalf("SelectPlayer: %v", err)
	}

	available, err = playerSvc.AvailablePlayers(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("AvailablePlayers after pick: %v", err)
	}
	if len(available) != 4 {
		t.Fatalf("pool should shrink to 4 after one pick, got %d", len(available))
	}
	for _, p := range available {
		if p.ID == "p1" {
			t.Fatalf("drafted player p1 still offered")
		}
	}

	if _, err := playerSvc.AvailablePlayers(context.Background(), "nope"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
	if _, err := playerSvc.AvailablePlayers(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}
