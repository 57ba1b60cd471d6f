package stats

import "math"

const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Tally accumulates results from one team's perspective.
type Tally struct {
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	CleanSheets  int
}

// Add records one match in which the team scored and conceded the given goals.
func (t *Tally) Add(scored, conceded int) {
	t.Matches++
	t.GoalsFor += scored
	t.GoalsAgainst += conceded
	if conceded == 0 {
		t.CleanSheets++
	}
	switch {
	case scored > conceded:
		t.Wins++
	case scored == conceded:
		t.Draws++
	default:
		t.Losses++
	}
}

func (t Tally) Points() int {
	return PointsPerWin*t.Wins + PointsPerDraw*t.Draws
}

func (t Tally) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

func (t Tally) WinPercentage() float64 {
	return percentage(t.Wins, t.Matches)
}

func percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// round2 rounds to two decimal places for transport.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func seasonPtr(season int) *int {
	if season == 0 {
		return nil
	}
	return &season
}
