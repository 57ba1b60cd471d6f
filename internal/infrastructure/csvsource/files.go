package csvsource

import "github.com/riskibarqy/brazilian-soccer/internal/domain/match"

const PlayersFile = "fifa_players.csv"

// matchFile describes one match CSV. A file with a competition column uses
// defaultCompetition only for rows that leave it blank.
type matchFile struct {
	name               string
	competition        string
	defaultCompetition string
}

// matchFiles is also the order matches are combined in.
var matchFiles = []matchFile{
	{name: "brasileirao_matches.csv", competition: match.CompetitionBrasileirao},
	{name: "copa_brasil_matches.csv", competition: match.CompetitionCopaDoBrasil},
	{name: "libertadores_matches.csv", competition: match.CompetitionLibertadores},
	{name: "extended_matches.csv", defaultCompetition: "Unknown"},
	{name: "historical_matches.csv", defaultCompetition: "Historical"},
}

// MatchFiles lists the match CSV names in combination order.
func MatchFiles() []string {
	out := make([]string, 0, len(matchFiles))
	for _, f := range matchFiles {
		out = append(out, f.name)
	}
	return out
}

type matchRow struct {
	Date        string `csv:"date" validate:"required"`
	HomeTeam    string `csv:"home_team" validate:"required"`
	AwayTeam    string `csv:"away_team" validate:"required"`
	HomeGoals   string `csv:"home_goals"`
	AwayGoals   string `csv:"away_goals"`
	Season      string `csv:"season"`
	Round       string `csv:"round"`
	Stadium     string `csv:"stadium"`
	Competition string `csv:"competition"`
}

type playerRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Nationality string `csv:"nationality"`
	Club        string `csv:"club"`
	Overall     string `csv:"overall"`
	Position    string `csv:"position"`
}
