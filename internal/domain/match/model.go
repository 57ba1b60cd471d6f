package match

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of a match from the home side's perspective.
type Result string

const (
	ResultWin  Result = "Win"
	ResultDraw Result = "Draw"
	ResultLoss Result = "Loss"
)

// Match is one fixture with a final score. Team names are canonical.
type Match struct {
	PlayedAt    time.Time
	HomeTeam    string
	AwayTeam    string
	HomeGoals   int
	AwayGoals   int
	Competition string
	Season      int
	Round       string
	Venue       string
}

func (m Match) Result() Result {
	switch {
	case m.HomeGoals > m.AwayGoals:
		return ResultWin
	case m.HomeGoals < m.AwayGoals:
		return ResultLoss
	default:
		return ResultDraw
	}
}

func (m Match) TotalGoals() int {
	return m.HomeGoals + m.AwayGoals
}

// GoalMargin is the absolute difference between both scores.
func (m Match) GoalMargin() int {
	if m.HomeGoals > m.AwayGoals {
		return m.HomeGoals - m.AwayGoals
	}
	return m.AwayGoals - m.HomeGoals
}

// Involves reports whether team played on either side.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// GoalsFor returns the goals scored and conceded by team in this match.
// ok is false when team did not play.
func (m Match) GoalsFor(team string) (scored, conceded int, ok bool) {
	switch team {
	case m.HomeTeam:
		return m.HomeGoals, m.AwayGoals, true
	case m.AwayTeam:
		return m.AwayGoals, m.HomeGoals, true
	default:
		return 0, 0, false
	}
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d-%d %s (%s %d)", m.HomeTeam, m.HomeGoals, m.AwayGoals, m.AwayTeam, m.Competition, m.Season)
}

func (m Match) Validate() error {
	if m.PlayedAt.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		return fmt.Errorf("match goals must be non-negative: %d-%d", m.HomeGoals, m.AwayGoals)
	}
	if strings.TrimSpace(m.Competition) == "" {
		return fmt.Errorf("match competition is required")
	}
	if m.Season <= 0 {
		return fmt.Errorf("match season must be a positive year: %d", m.Season)
	}

	return nil
}
