package httpapi

import (
	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

const matchDateLayout = "2006-01-02 15:04:05"

type matchDTO struct {
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeGoals   int    `json:"home_goals"`
	AwayGoals   int    `json:"away_goals"`
	Competition string `json:"competition"`
	Season      int    `json:"season"`
	Round       string `json:"round,omitempty"`
	Stadium     string `json:"stadium,omitempty"`
}

type matchSearchDTO struct {
	Matches    []matchDTO `json:"matches"`
	Count      int        `json:"count"`
	TotalFound int        `json:"total_found"`
}

type playerDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Age           *int64 `json:"age"`
	Nationality   string `json:"nationality"`
	Club          string `json:"club,omitempty"`
	Position      string `json:"position,omitempty"`
	OverallRating *int   `json:"overall_rating"`
	Potential     *int64 `json:"potential"`
}

type playerSearchDTO struct {
	Players []playerDTO `json:"players"`
	Count   int         `json:"count"`
}

type headToHeadDTO struct {
	Stats         stats.HeadToHeadStats `json:"stats"`
	RecentMatches []matchDTO            `json:"recent_matches"`
}

type averageGoalsDTO struct {
	Competition  string  `json:"competition,omitempty"`
	Season       int     `json:"season,omitempty"`
	AverageGoals float64 `json:"average_goals"`
}

type competitionDTO struct {
	Name    string `json:"name"`
	Format  string `json:"format"`
	Seasons []int  `json:"seasons"`
	Matches int    `json:"matches"`
}

type teamReportDTO struct {
	teamname.Team
	Resolved string `json:"resolved,omitempty"`
	Found    bool   `json:"found"`
}

type datasetSummaryDTO struct {
	Status string `json:"status"`
	usecase.DatasetSummary
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		Date:        m.PlayedAt.Format(matchDateLayout),
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		HomeGoals:   m.HomeGoals,
		AwayGoals:   m.AwayGoals,
		Competition: m.Competition,
		Season:      m.Season,
		Round:       m.Round,
		Stadium:     m.Venue,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		Name:          p.Name,
		Age:           intAttribute(p.Attributes, "age"),
		Nationality:   p.Nationality,
		Club:          p.Club,
		Position:      p.Position,
		OverallRating: p.Rating,
		Potential:     intAttribute(p.Attributes, "potential"),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func intAttribute(attrs player.Attributes, name string) *int64 {
	v, ok := attrs.Get(name)
	if !ok {
		return nil
	}
	n, ok := v.Int()
	if !ok {
		return nil
	}
	return &n
}

func competitionsToDTO(items []match.Competition) []competitionDTO {
	out := make([]competitionDTO, 0, len(items))
	for _, c := range items {
		seasons := c.Seasons
		if seasons == nil {
			seasons = []int{}
		}
		out = append(out, competitionDTO{
			Name:    c.Name,
			Format:  string(c.Format),
			Seasons: seasons,
			Matches: c.Matches,
		})
	}
	return out
}
