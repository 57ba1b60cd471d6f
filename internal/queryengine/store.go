package queryengine

import (
	"slices"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
)

// store owns the record collections and the indexes built over them.
// It is never mutated after newStore returns.
type store struct {
	matches []match.Match
	players []player.Player

	byTeam        map[string][]match.Match
	byCompetition map[string][]match.Match
	bySeason      map[int][]match.Match

	teams        map[string]struct{}
	teamNames    []string
	competitions []string
	seasons      []int
}

func newStore(matches []match.Match, players []player.Player) *store {
	s := &store{
		matches:       slices.Clone(matches),
		players:       slices.Clone(players),
		byTeam:        make(map[string][]match.Match),
		byCompetition: make(map[string][]match.Match),
		bySeason:      make(map[int][]match.Match),
		teams:         make(map[string]struct{}),
	}

	for _, m := range s.matches {
		s.addTeam(m.HomeTeam)
		s.byTeam[m.HomeTeam] = append(s.byTeam[m.HomeTeam], m)
		if m.AwayTeam != m.HomeTeam {
			s.addTeam(m.AwayTeam)
			s.byTeam[m.AwayTeam] = append(s.byTeam[m.AwayTeam], m)
		}

		if _, seen := s.byCompetition[m.Competition]; !seen {
			s.competitions = append(s.competitions, m.Competition)
		}
		s.byCompetition[m.Competition] = append(s.byCompetition[m.Competition], m)

		if _, seen := s.bySeason[m.Season]; !seen {
			s.seasons = append(s.seasons, m.Season)
		}
		s.bySeason[m.Season] = append(s.bySeason[m.Season], m)
	}

	slices.Sort(s.teamNames)
	slices.Sort(s.seasons)
	return s
}

func (s *store) addTeam(name string) {
	if _, ok := s.teams[name]; ok {
		return
	}
	s.teams[name] = struct{}{}
	s.teamNames = append(s.teamNames, name)
}

func (s *store) isTeam(name string) bool {
	_, ok := s.teams[name]
	return ok
}
