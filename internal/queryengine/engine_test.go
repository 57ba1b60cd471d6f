package queryengine

import (
	"slices"
	"testing"
	"time"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 16, 0, 0, 0, time.UTC)
}

func fixture(at time.Time, home string, hg, ag int, away, competition string, season int) match.Match {
	return match.Match{
		PlayedAt:    at,
		HomeTeam:    home,
		AwayTeam:    away,
		HomeGoals:   hg,
		AwayGoals:   ag,
		Competition: competition,
		Season:      season,
	}
}

func rating(v int) *int {
	return &v
}

func sampleMatches() []match.Match {
	return []match.Match{
		fixture(day(2023, time.May, 28), "Fluminense", 0, 2, "Flamengo", match.CompetitionBrasileirao, 2023),
		fixture(day(2023, time.May, 14), "Flamengo", 2, 1, "Fluminense", match.CompetitionBrasileirao, 2023),
		fixture(day(2023, time.June, 4), "Palmeiras", 3, 0, "Santos", match.CompetitionBrasileirao, 2023),
		fixture(day(2023, time.June, 11), "Santos", 1, 1, "Flamengo", match.CompetitionBrasileirao, 2023),
		fixture(day(2023, time.June, 18), "Palmeiras", 1, 1, "Fluminense", match.CompetitionBrasileirao, 2023),
		fixture(day(2022, time.August, 1), "Palmeiras", 1, 0, "Flamengo", match.CompetitionBrasileirao, 2022),
		fixture(day(2023, time.July, 1), "Grêmio", 4, 0, "Fluminense", match.CompetitionCopaDoBrasil, 2023),
		fixture(day(2023, time.July, 8), "Santos", 0, 3, "Grêmio", match.CompetitionCopaDoBrasil, 2023),
	}
}

func samplePlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Gabriel Barbosa", Nationality: "Brazil", Club: "Flamengo", Rating: rating(82), Position: "ST"},
		{ID: 2, Name: "Gabriel Jesus", Nationality: "Brazil", Club: "Arsenal", Rating: rating(84), Position: "ST"},
		{ID: 3, Name: "Raphael Veiga", Nationality: "Brazil", Club: "Palmeiras", Rating: rating(82), Position: "CAM"},
		{ID: 4, Name: "Germán Cano", Nationality: "Argentina", Club: "Fluminense", Rating: rating(80), Position: "ST"},
		{ID: 5, Name: "Youth Prospect", Nationality: "Brazil", Club: "Santos"},
		{ID: 6, Name: "Lionel Messi", Nationality: "Argentina", Rating: rating(91), Position: "RW"},
	}
}

func sampleEngine() *Engine {
	return New(sampleMatches(), samplePlayers())
}

func teamsOf(items []match.Match) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.HomeTeam+"-"+m.AwayTeam)
	}
	return out
}

func TestHeadToHead_TwoDerbies(t *testing.T) {
	t.Parallel()

	engine := New([]match.Match{
		fixture(day(2023, time.May, 14), "Flamengo", 2, 1, "Fluminense", match.CompetitionBrasileirao, 2023),
		fixture(day(2023, time.May, 28), "Fluminense", 0, 2, "Flamengo", match.CompetitionBrasileirao, 2023),
	}, nil)

	h2h, ok := engine.HeadToHead("Flamengo", "Fluminense")
	if !ok {
		t.Fatalf("expected head-to-head to resolve")
	}
	want := stats.HeadToHeadStats{
		Team1: "Flamengo", Team2: "Fluminense",
		Team1Wins: 2, Team2Wins: 0, Draws: 0, TotalMatches: 2, Team1Goals: 4, Team2Goals: 1,
	}
	if h2h != want {
		t.Fatalf("head-to-head=%+v want=%+v", h2h, want)
	}

	s, ok := engine.TeamStatistics("Flamengo", 2023)
	if !ok {
		t.Fatalf("expected team statistics to resolve")
	}
	if s.Matches != 2 || s.Wins != 2 || s.Draws != 0 || s.Losses != 0 {
		t.Fatalf("unexpected record: %+v", s)
	}
	if s.GoalsFor != 4 || s.GoalsAgainst != 1 || s.Points() != 6 || s.GoalDifference() != 3 {
		t.Fatalf("unexpected goals or points: %+v points=%d gd=%d", s, s.Points(), s.GoalDifference())
	}
}

func TestMatchesBetween(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	got := engine.MatchesBetween("Flamengo", "Fluminense")
	if want := []string{"Flamengo-Fluminense", "Fluminense-Flamengo"}; !slices.Equal(teamsOf(got), want) {
		t.Fatalf("MatchesBetween order=%v want=%v", teamsOf(got), want)
	}

	if got := engine.MatchesBetween("Totally Unknown Team X", "Flamengo"); len(got) != 0 {
		t.Fatalf("expected no matches for unresolved team, got %d", len(got))
	}
	if got := engine.MatchesBetween("Flamengo", "Flamengo"); len(got) != 0 {
		t.Fatalf("expected no matches for a team against itself, got %d", len(got))
	}
	if got := engine.MatchesBetween("CR Flamengo", "fluminense-rj"); len(got) != 2 {
		t.Fatalf("expected aliases to resolve, got %d matches", len(got))
	}
}

func TestMatchesByTeam_Sides(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	all := engine.MatchesByTeam("Palmeiras", SideAny)
	if len(all) != 3 {
		t.Fatalf("expected 3 Palmeiras matches, got %d", len(all))
	}
	if !all[0].PlayedAt.Before(all[1].PlayedAt) || !all[1].PlayedAt.Before(all[2].PlayedAt) {
		t.Fatalf("expected ascending dates: %v", teamsOf(all))
	}

	away := engine.MatchesByTeam("Fluminense", SideAway)
	for _, m := range away {
		if m.AwayTeam != "Fluminense" {
			t.Fatalf("away filter leaked %s", m)
		}
	}
	if len(away) != 3 {
		t.Fatalf("expected 3 away matches, got %d", len(away))
	}

	home := engine.MatchesByTeam("Fluminense", SideHome)
	if len(home) != 1 || home[0].HomeTeam != "Fluminense" {
		t.Fatalf("unexpected home matches: %v", teamsOf(home))
	}

	if got := engine.MatchesByTeam("zzzzqqqq", SideAny); len(got) != 0 {
		t.Fatalf("expected empty result for unresolved team")
	}
}

func TestMatchesByDateRange_Inclusive(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	got := engine.MatchesByDateRange(day(2023, time.June, 4), day(2023, time.June, 18))
	want := []string{"Palmeiras-Santos", "Santos-Flamengo", "Palmeiras-Fluminense"}
	if !slices.Equal(teamsOf(got), want) {
		t.Fatalf("date range=%v want=%v", teamsOf(got), want)
	}

	if got := engine.MatchesByDateRange(day(2024, time.January, 1), day(2023, time.January, 1)); len(got) != 0 {
		t.Fatalf("expected inverted range to be empty, got %d", len(got))
	}
}

func TestMatchesByCompetitionAndSeason(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	cup := engine.MatchesByCompetition(match.CompetitionCopaDoBrasil)
	if want := []string{"Grêmio-Fluminense", "Santos-Grêmio"}; !slices.Equal(teamsOf(cup), want) {
		t.Fatalf("competition matches=%v want=%v", teamsOf(cup), want)
	}
	if got := engine.MatchesByCompetition("Série Z"); len(got) != 0 {
		t.Fatalf("expected unknown competition to be empty")
	}

	season := engine.MatchesBySeason(2022)
	if len(season) != 1 || season[0].HomeTeam != "Palmeiras" {
		t.Fatalf("unexpected 2022 matches: %v", teamsOf(season))
	}
	if got := engine.MatchesBySeason(1999); len(got) != 0 {
		t.Fatalf("expected unknown season to be empty")
	}

	first := engine.MatchesBySeason(2023)
	first[0].HomeTeam = "mutated"
	if again := engine.MatchesBySeason(2023); again[0].HomeTeam == "mutated" {
		t.Fatalf("callers must not be able to mutate the index")
	}
}

func TestTeamStatistics(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	all, ok := engine.TeamStatistics("Flamengo", stats.AllSeasons)
	if !ok {
		t.Fatalf("expected Flamengo to resolve")
	}
	if all.Matches != 4 || all.Wins != 2 || all.Draws != 1 || all.Losses != 1 {
		t.Fatalf("unexpected all-time record: %+v", all)
	}
	if all.GoalsFor != 5 || all.GoalsAgainst != 3 || all.CleanSheets != 1 || all.Points() != 7 {
		t.Fatalf("unexpected all-time goals: %+v", all)
	}

	empty, ok := engine.TeamStatistics("Grêmio", 2022)
	if !ok {
		t.Fatalf("known team with no matches must still resolve")
	}
	if empty.Matches != 0 || empty.Points() != 0 || empty.WinPercentage() != 0 || empty.Team != "Grêmio" {
		t.Fatalf("expected zeroed stats, got %+v", empty)
	}

	if _, ok := engine.TeamStatistics("Totally Unknown Team X", stats.AllSeasons); ok {
		t.Fatalf("expected unresolved team to report not found")
	}
}

func TestHomeAndAwayRecord(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	home, ok := engine.HomeRecord("Palmeiras", 2023)
	if !ok {
		t.Fatalf("expected Palmeiras to resolve")
	}
	if home.Context != "Home matches in 2023" || home.Matches != 2 || home.Wins != 1 || home.Draws != 1 {
		t.Fatalf("unexpected home record: %+v", home)
	}

	away, ok := engine.AwayRecord("Fluminense", stats.AllSeasons)
	if !ok {
		t.Fatalf("expected Fluminense to resolve")
	}
	if away.Context != "Away matches" || away.Matches != 3 || away.Draws != 1 || away.Losses != 2 {
		t.Fatalf("unexpected away record: %+v", away)
	}

	if _, ok := engine.HomeRecord("Totally Unknown Team X", 0); ok {
		t.Fatalf("expected unresolved team to report not found")
	}
}

func TestCompetitionStandings(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	table := engine.CompetitionStandings(match.CompetitionBrasileirao, 2023)
	wantTeams := []string{"Flamengo", "Palmeiras", "Fluminense", "Santos"}
	wantPoints := []int{7, 4, 1, 1}
	if len(table) != len(wantTeams) {
		t.Fatalf("expected %d rows, got %d", len(wantTeams), len(table))
	}
	for i, row := range table {
		if row.Position != i+1 || row.Team != wantTeams[i] || row.Points() != wantPoints[i] {
			t.Fatalf("row %d=%+v want team=%s points=%d", i, row, wantTeams[i], wantPoints[i])
		}
	}

	if got := engine.CompetitionStandings(match.CompetitionBrasileirao, 1990); len(got) != 0 {
		t.Fatalf("expected empty table for season without matches")
	}
}

func TestTopTeamsByGoals(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	got := engine.TopTeamsByGoals(2023, 3)
	want := []stats.TeamGoalStats{
		{Team: "Grêmio", Season: 2023, GoalsScored: 7, Matches: 2},
		{Team: "Flamengo", Season: 2023, GoalsScored: 5, Matches: 3},
		{Team: "Palmeiras", Season: 2023, GoalsScored: 4, Matches: 2},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("top teams=%+v want=%+v", got, want)
	}

	if got := engine.TopTeamsByGoals(2023, -1); len(got) != 0 {
		t.Fatalf("expected negative limit to yield nothing")
	}
	if got := engine.TopTeamsByGoals(2023, 100); len(got) != 5 {
		t.Fatalf("expected every 2023 team, got %d", len(got))
	}
}

func TestTopTeamsByGoals_TiesKeepFirstAppearance(t *testing.T) {
	t.Parallel()

	engine := New([]match.Match{
		fixture(day(2020, time.March, 1), "Bahia", 1, 1, "Vitória", "Baiano", 2020),
		fixture(day(2020, time.March, 8), "Ceará", 2, 0, "Fortaleza", "Baiano", 2020),
		fixture(day(2020, time.March, 15), "Fortaleza", 1, 0, "Bahia", "Baiano", 2020),
	}, nil)

	got := engine.TopTeamsByGoals(2020, 10)
	names := make([]string, 0, len(got))
	for _, row := range got {
		names = append(names, row.Team)
	}
	if want := []string{"Ceará", "Bahia", "Vitória", "Fortaleza"}; !slices.Equal(names, want) {
		t.Fatalf("tie order=%v want=%v", names, want)
	}
}

func TestBiggestWins(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	got := engine.BiggestWins("", 3)
	if want := []string{"Grêmio-Fluminense", "Palmeiras-Santos", "Santos-Grêmio"}; !slices.Equal(teamsOf(got), want) {
		t.Fatalf("biggest wins=%v want=%v", teamsOf(got), want)
	}

	cup := engine.BiggestWins(match.CompetitionCopaDoBrasil, 10)
	if len(cup) != 2 || cup[0].GoalMargin() != 4 {
		t.Fatalf("unexpected cup biggest wins: %v", teamsOf(cup))
	}
	if got := engine.BiggestWins("", 0); len(got) != 0 {
		t.Fatalf("expected zero limit to yield nothing")
	}
}

func TestAverageGoalsPerMatch(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	tests := []struct {
		name        string
		competition string
		season      int
		want        float64
	}{
		{name: "all", want: 2.5},
		{name: "cup", competition: match.CompetitionCopaDoBrasil, want: 3.5},
		{name: "league 2022", competition: match.CompetitionBrasileirao, season: 2022, want: 1},
		{name: "unknown competition", competition: "Série Z", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.AverageGoalsPerMatch(tt.competition, tt.season); got != tt.want {
				t.Fatalf("AverageGoalsPerMatch=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestPlayerQueries(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()
	ids := func(items []player.Player) []int64 {
		out := make([]int64, 0, len(items))
		for _, p := range items {
			out = append(out, p.ID)
		}
		return out
	}

	if got := ids(engine.PlayersByName("GABRIEL")); !slices.Equal(got, []int64{1, 2}) {
		t.Fatalf("PlayersByName=%v", got)
	}
	if got := ids(engine.PlayersByNationality("argen")); !slices.Equal(got, []int64{4, 6}) {
		t.Fatalf("PlayersByNationality=%v", got)
	}
	if got := ids(engine.PlayersByClub("Flamengoo")); !slices.Equal(got, []int64{1}) {
		t.Fatalf("PlayersByClub fuzzy=%v", got)
	}
	if got := ids(engine.PlayersByClub("Sociedade Esportiva Palmeiras")); !slices.Equal(got, []int64{3}) {
		t.Fatalf("PlayersByClub alias=%v", got)
	}
	if got := engine.PlayersByClub("Totally Unknown Team X"); len(got) != 0 {
		t.Fatalf("expected no players for unresolved club")
	}
	if got := ids(engine.TopRatedPlayers(3)); !slices.Equal(got, []int64{6, 2, 1}) {
		t.Fatalf("TopRatedPlayers=%v", got)
	}
	if got := engine.TopRatedPlayers(100); len(got) != 5 {
		t.Fatalf("unrated players must be excluded, got %d", len(got))
	}
	if got := ids(engine.BrazilianPlayersAtBrazilianClubs()); !slices.Equal(got, []int64{1, 3, 5}) {
		t.Fatalf("BrazilianPlayersAtBrazilianClubs=%v", got)
	}
}

func TestEnumerations(t *testing.T) {
	t.Parallel()

	engine := sampleEngine()

	if got := engine.Teams(); !slices.Equal(got, []string{"Flamengo", "Fluminense", "Grêmio", "Palmeiras", "Santos"}) {
		t.Fatalf("Teams=%v", got)
	}
	if got := engine.Seasons(); !slices.Equal(got, []int{2022, 2023}) {
		t.Fatalf("Seasons=%v", got)
	}
	comps := engine.Competitions()
	if len(comps) != 2 || comps[0].Name != match.CompetitionBrasileirao || comps[0].Format != match.FormatLeague {
		t.Fatalf("Competitions=%+v", comps)
	}
	if !slices.Equal(comps[0].Seasons, []int{2022, 2023}) || comps[0].Matches != 6 {
		t.Fatalf("unexpected league summary: %+v", comps[0])
	}
	if engine.MatchCount() != 8 || engine.PlayerCount() != 6 {
		t.Fatalf("unexpected counts: matches=%d players=%d", engine.MatchCount(), engine.PlayerCount())
	}
}
