package queryengine

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
)

// TopTeamsByGoals ranks every team that played in season by goals scored.
// Equal totals keep the order in which teams first appear in the season.
func (e *Engine) TopTeamsByGoals(season, limit int) []stats.TeamGoalStats {
	index := make(map[string]int)
	rows := make([]stats.TeamGoalStats, 0)
	credit := func(team string, goals int) {
		i, ok := index[team]
		if !ok {
			i = len(rows)
			index[team] = i
			rows = append(rows, stats.TeamGoalStats{Team: team, Season: season})
		}
		rows[i].GoalsScored += goals
		rows[i].Matches++
	}

	for _, m := range e.store.bySeason[season] {
		credit(m.HomeTeam, m.HomeGoals)
		credit(m.AwayTeam, m.AwayGoals)
	}

	order := firstSeenOrder(len(rows))
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(rows[b].GoalsScored, rows[a].GoalsScored); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	n := clampLimit(limit, len(order))
	out := make([]stats.TeamGoalStats, 0, n)
	for _, i := range order[:n] {
		out = append(out, rows[i])
	}
	return out
}

// CompetitionStandings builds the table for one competition season, ranked
// by points, goal difference and goals for. Rows still tied keep first-seen
// order. Positions run from 1.
func (e *Engine) CompetitionStandings(competition string, season int) []stats.Standing {
	index := make(map[string]int)
	rows := make([]stats.Standing, 0)
	row := func(team string) *stats.Standing {
		i, ok := index[team]
		if !ok {
			i = len(rows)
			index[team] = i
			rows = append(rows, stats.Standing{Team: team})
		}
		return &rows[i]
	}

	for _, m := range e.store.byCompetition[competition] {
		if m.Season != season {
			continue
		}
		row(m.HomeTeam).Add(m.HomeGoals, m.AwayGoals)
		row(m.AwayTeam).Add(m.AwayGoals, m.HomeGoals)
	}

	order := firstSeenOrder(len(rows))
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case rows[a].RanksAbove(rows[b]):
			return -1
		case rows[b].RanksAbove(rows[a]):
			return 1
		default:
			return cmp.Compare(a, b)
		}
	})

	out := make([]stats.Standing, 0, len(order))
	for pos, i := range order {
		standing := rows[i]
		standing.Position = pos + 1
		out = append(out, standing)
	}
	return out
}

func firstSeenOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
