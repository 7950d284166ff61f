package usecase

import (
	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
)

const premierLeagueName = "Premier League"

// filterByMode narrows the catalog to the players draftable under a mode.
// The champions-league club list is configuration, not derived data, so it
// is injected from config rather than hardcoded here. Catalog order is
// preserved.
func filterByMode(players []player.Player, mode draft.Mode, championsLeagueClubs []string) []player.Player {
	switch mode {
	case draft.ModePremierLeague:
		out := make([]player.Player, 0, len(players))
		for _, p := range players {
			if p.League == premierLeagueName {
				out = append(out, p)
			}
		}
		return out
	case draft.ModeChampionsLeague:
		clubs := make(map[string]struct{}, len(championsLeagueClubs))
		for _, club := range championsLeagueClubs {
			clubs[club] = struct{}{}
		}
		out := make([]player.Player, 0, len(players))
		for _, p := range players {
			if _, ok := clubs[p.Club]; ok {
				out = append(out, p)
			}
		}
		return out
	default:
		// top_5_leagues: the whole catalog.
		return append([]player.Player(nil), players...)
	}
}
