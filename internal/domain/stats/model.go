package stats

import sonic "github.com/bytedance/sonic"

// AllSeasons selects every season in season-filtered queries.
const AllSeasons = 0

// TeamStats aggregates a team's results, for one season or all time.
type TeamStats struct {
	Team   string
	Season int
	Tally
}

func (s TeamStats) AverageGoalsScored() float64 {
	return ratio(s.GoalsFor, s.Matches)
}

func (s TeamStats) AverageGoalsConceded() float64 {
	return ratio(s.GoalsAgainst, s.Matches)
}

func (s TeamStats) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Team                 string  `json:"team"`
		Season               *int    `json:"season"`
		Matches              int     `json:"matches"`
		Wins                 int     `json:"wins"`
		Draws                int     `json:"draws"`
		Losses               int     `json:"losses"`
		GoalsFor             int     `json:"goals_for"`
		GoalsAgainst         int     `json:"goals_against"`
		Points               int     `json:"points"`
		CleanSheets          int     `json:"clean_sheets"`
		GoalDifference       int     `json:"goal_difference"`
		WinPercentage        float64 `json:"win_percentage"`
		AverageGoalsScored   float64 `json:"average_goals_scored"`
		AverageGoalsConceded float64 `json:"average_goals_conceded"`
	}{
		Team:                 s.Team,
		Season:               seasonPtr(s.Season),
		Matches:              s.Matches,
		Wins:                 s.Wins,
		Draws:                s.Draws,
		Losses:               s.Losses,
		GoalsFor:             s.GoalsFor,
		GoalsAgainst:         s.GoalsAgainst,
		Points:               s.Points(),
		CleanSheets:          s.CleanSheets,
		GoalDifference:       s.GoalDifference(),
		WinPercentage:        round2(s.WinPercentage()),
		AverageGoalsScored:   round2(s.AverageGoalsScored()),
		AverageGoalsConceded: round2(s.AverageGoalsConceded()),
	})
}

// HeadToHeadStats aggregates every meeting between two teams.
type HeadToHeadStats struct {
	Team1        string
	Team2        string
	Team1Wins    int
	Team2Wins    int
	Draws        int
	TotalMatches int
	Team1Goals   int
	Team2Goals   int
}

// Add records one meeting with each side's goals.
func (h *HeadToHeadStats) Add(team1Goals, team2Goals int) {
	h.TotalMatches++
	h.Team1Goals += team1Goals
	h.Team2Goals += team2Goals
	switch {
	case team1Goals > team2Goals:
		h.Team1Wins++
	case team2Goals > team1Goals:
		h.Team2Wins++
	default:
		h.Draws++
	}
}

func (h HeadToHeadStats) Team1WinPercentage() float64 {
	return percentage(h.Team1Wins, h.TotalMatches)
}

func (h HeadToHeadStats) Team2WinPercentage() float64 {
	return percentage(h.Team2Wins, h.TotalMatches)
}

func (h HeadToHeadStats) DrawPercentage() float64 {
	return percentage(h.Draws, h.TotalMatches)
}

// Reversed returns the same record seen from the other side.
func (h HeadToHeadStats) Reversed() HeadToHeadStats {
	return HeadToHeadStats{
		Team1:        h.Team2,
		Team2:        h.Team1,
		Team1Wins:    h.Team2Wins,
		Team2Wins:    h.Team1Wins,
		Draws:        h.Draws,
		TotalMatches: h.TotalMatches,
		Team1Goals:   h.Team2Goals,
		Team2Goals:   h.Team1Goals,
	}
}

func (h HeadToHeadStats) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Team1              string  `json:"team1"`
		Team2              string  `json:"team2"`
		Team1Wins          int     `json:"team1_wins"`
		Team2Wins          int     `json:"team2_wins"`
		Draws              int     `json:"draws"`
		TotalMatches       int     `json:"total_matches"`
		Team1Goals         int     `json:"team1_goals"`
		Team2Goals         int     `json:"team2_goals"`
		Team1WinPercentage float64 `json:"team1_win_percentage"`
		Team2WinPercentage float64 `json:"team2_win_percentage"`
		DrawPercentage     float64 `json:"draw_percentage"`
	}{
		Team1:              h.Team1,
		Team2:              h.Team2,
		Team1Wins:          h.Team1Wins,
		Team2Wins:          h.Team2Wins,
		Draws:              h.Draws,
		TotalMatches:       h.TotalMatches,
		Team1Goals:         h.Team1Goals,
		Team2Goals:         h.Team2Goals,
		Team1WinPercentage: round2(h.Team1WinPercentage()),
		Team2WinPercentage: round2(h.Team2WinPercentage()),
		DrawPercentage:     round2(h.DrawPercentage()),
	})
}

// Record is a labelled subset of a team's results, such as home matches.
type Record struct {
	Team    string
	Context string
	Tally
}

func (r Record) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Team           string  `json:"team"`
		Context        string  `json:"context"`
		Matches        int     `json:"matches"`
		Wins           int     `json:"wins"`
		Draws          int     `json:"draws"`
		Losses         int     `json:"losses"`
		GoalsFor       int     `json:"goals_for"`
		GoalsAgainst   int     `json:"goals_against"`
		Points         int     `json:"points"`
		GoalDifference int     `json:"goal_difference"`
		WinPercentage  float64 `json:"win_percentage"`
	}{
		Team:           r.Team,
		Context:        r.Context,
		Matches:        r.Matches,
		Wins:           r.Wins,
		Draws:          r.Draws,
		Losses:         r.Losses,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		Points:         r.Points(),
		GoalDifference: r.GoalDifference(),
		WinPercentage:  round2(r.WinPercentage()),
	})
}

// Standing is one row of a competition table.
type Standing struct {
	Position int
	Team     string
	Tally
}

// RanksAbove orders standings by points, then goal difference, then goals for.
func (s Standing) RanksAbove(other Standing) bool {
	if s.Points() != other.Points() {
		return s.Points() > other.Points()
	}
	if s.GoalDifference() != other.GoalDifference() {
		return s.GoalDifference() > other.GoalDifference()
	}
	return s.GoalsFor > other.GoalsFor
}

func (s Standing) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Position int    `json:"position"`
		Team     string `json:"team"`
		Points   int    `json:"points"`
		Matches  int    `json:"matches"`
		Wins     int    `json:"wins"`
		Draws    int    `json:"draws"`
		Losses   int    `json:"losses"`
		GF       int    `json:"gf"`
		GA       int    `json:"ga"`
		GD       int    `json:"gd"`
	}{
		Position: s.Position,
		Team:     s.Team,
		Points:   s.Points(),
		Matches:  s.Matches,
		Wins:     s.Wins,
		Draws:    s.Draws,
		Losses:   s.Losses,
		GF:       s.GoalsFor,
		GA:       s.GoalsAgainst,
		GD:       s.GoalDifference(),
	})
}

// TeamGoalStats ranks a team by goals scored in one season.
type TeamGoalStats struct {
	Team        string
	Season      int
	GoalsScored int
	Matches     int
}

func (s TeamGoalStats) GoalsPerMatch() float64 {
	return ratio(s.GoalsScored, s.Matches)
}

func (s TeamGoalStats) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Team          string  `json:"team"`
		Season        int     `json:"season"`
		GoalsScored   int     `json:"goals_scored"`
		Matches       int     `json:"matches"`
		GoalsPerMatch float64 `json:"goals_per_match"`
	}{
		Team:          s.Team,
		Season:        s.Season,
		GoalsScored:   s.GoalsScored,
		Matches:       s.Matches,
		GoalsPerMatch: round2(s.GoalsPerMatch()),
	})
}
