package queryengine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
)

// PlayersByName matches a case-insensitive substring of the player name.
func (e *Engine) PlayersByName(name string) []player.Player {
	needle := strings.ToLower(name)
	return e.filterPlayers(func(p player.Player) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// PlayersByNationality matches a case-insensitive substring of the nationality.
func (e *Engine) PlayersByNationality(nationality string) []player.Player {
	needle := strings.ToLower(nationality)
	return e.filterPlayers(func(p player.Player) bool {
		return p.Nationality != "" && strings.Contains(strings.ToLower(p.Nationality), needle)
	})
}

// PlayersByClub resolves club to a known team and returns its players.
func (e *Engine) PlayersByClub(club string) []player.Player {
	name, ok := e.ResolveTeam(club)
	if !ok {
		return []player.Player{}
	}
	return e.filterPlayers(func(p player.Player) bool {
		return p.Club == name
	})
}

// TopRatedPlayers orders rated players by rating, highest first. Players
// without a rating are excluded; equal ratings keep load order.
func (e *Engine) TopRatedPlayers(limit int) []player.Player {
	rated := e.filterPlayers(player.Player.HasRating)
	slices.SortStableFunc(rated, func(a, b player.Player) int {
		return cmp.Compare(*b.Rating, *a.Rating)
	})
	return rated[:clampLimit(limit, len(rated))]
}

// BrazilianPlayersAtBrazilianClubs returns Brazilian players whose club is a
// team present in the match data.
func (e *Engine) BrazilianPlayersAtBrazilianClubs() []player.Player {
	return e.filterPlayers(func(p player.Player) bool {
		return strings.Contains(strings.ToLower(p.Nationality), "brazil") && e.store.isTeam(p.Club)
	})
}

// AllPlayers returns the full collection in load order.
func (e *Engine) AllPlayers() []player.Player {
	return slices.Clone(e.store.players)
}

func (e *Engine) filterPlayers(keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0)
	for _, p := range e.store.players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
