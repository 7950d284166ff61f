// Package catalog loads a player catalog from a JSON file, for
// deployments that ship their own player pool instead of the built-in
// seed data.
package catalog

import (
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/andrasetya/draft-league/internal/domain/player"
)

type fileEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Club     string `json:"club"`
	League   string `json:"league"`
	ImageURL string `json:"image_url,omitempty"`
}

// LoadFile reads and validates a catalog file. The file is a JSON array
// of players; every entry must carry a unique id and a known position.
func LoadFile(path string) ([]player.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog file %s", path)
	}

	var entries []fileEntry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "decode catalog file %s", path)
	}
	if len(entries) == 0 {
		return nil, errors.Newf("catalog file %s contains no players", path)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]player.Player, 0, len(entries))
	for i, e := range entries {
		p := player.Player{
			ID:       e.ID,
			Name:     e.Name,
			Position: player.Position(e.Position),
			Club:     e.Club,
			League:   e.League,
			ImageURL: e.ImageURL,
		}
		if err := p.Validate(); err != nil {
			return nil, errors.WithHintf(
				errors.Wrapf(err, "catalog entry %d", i),
				"positions must be one of GK, DEF, MID, FWD",
			)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, errors.Newf("catalog entry %d: duplicate player id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}
