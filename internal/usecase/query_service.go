package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/cache"
	"github.com/riskibarqy/brazilian-soccer/internal/queryengine"
)

const (
	DefaultListLimit   = 10
	DefaultSearchLimit = 20
	DefaultMaxLimit    = 100
	RecentMatchesLimit = 5
)

var latestTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

type QueryConfig struct {
	MaxLimit     int
	CacheEnabled bool
	CacheTTL     time.Duration
}

// QueryService validates caller input and runs it against the engine.
type QueryService struct {
	engine    *queryengine.Engine
	cfg       QueryConfig
	standings *cache.Store[[]stats.Standing]
	rankings  *cache.Store[[]stats.TeamGoalStats]
}

func NewQueryService(engine *queryengine.Engine, cfg QueryConfig) *QueryService {
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = DefaultMaxLimit
	}

	s := &QueryService{engine: engine, cfg: cfg}
	if cfg.CacheEnabled {
		s.standings = cache.NewStore[[]stats.Standing](cfg.CacheTTL)
		s.rankings = cache.NewStore[[]stats.TeamGoalStats](cfg.CacheTTL)
	}
	return s
}

type DatasetSummary struct {
	Matches      int `json:"matches"`
	Players      int `json:"players"`
	Teams        int `json:"teams"`
	Competitions int `json:"competitions"`
}

func (s *QueryService) Summary(ctx context.Context) DatasetSummary {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.Summary")
	defer span.End()

	return DatasetSummary{
		Matches:      s.engine.MatchCount(),
		Players:      s.engine.PlayerCount(),
		Teams:        len(s.engine.Teams()),
		Competitions: len(s.engine.Competitions()),
	}
}

type MatchQuery struct {
	Team1       string
	Team2       string
	Team        string
	Side        queryengine.Side
	Season      int
	Competition string
	From        *time.Time
	To          *time.Time
	Limit       int
}

type MatchSearchResult struct {
	Matches    []match.Match
	Count      int
	TotalFound int
}

// SearchMatches picks the first applicable filter: both teams, one team,
// season, competition, date range, then the whole collection.
func (s *QueryService) SearchMatches(ctx context.Context, q MatchQuery) (MatchSearchResult, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.SearchMatches")
	defer span.End()

	limit, err := s.limit(q.Limit, DefaultSearchLimit)
	if err != nil {
		return MatchSearchResult{}, err
	}
	team1, team2 := strings.TrimSpace(q.Team1), strings.TrimSpace(q.Team2)
	if (team1 == "") != (team2 == "") {
		return MatchSearchResult{}, fmt.Errorf("%w: team1 and team2 must be provided together", ErrInvalidInput)
	}
	if q.Season < 0 {
		return MatchSearchResult{}, fmt.Errorf("%w: season must be a positive year", ErrInvalidInput)
	}

	var found []match.Match
	switch {
	case team1 != "":
		found = s.engine.MatchesBetween(team1, team2)
	case strings.TrimSpace(q.Team) != "":
		found = s.engine.MatchesByTeam(q.Team, q.Side)
	case q.Season > 0:
		found = s.engine.MatchesBySeason(q.Season)
	case strings.TrimSpace(q.Competition) != "":
		found = s.engine.MatchesByCompetition(s.competitionName(q.Competition))
	case q.From != nil || q.To != nil:
		start, end := time.Time{}, latestTime
		if q.From != nil {
			start = *q.From
		}
		if q.To != nil {
			end = *q.To
		}
		found = s.engine.MatchesByDateRange(start, end)
	default:
		found = s.engine.AllMatches()
	}

	page := found[:min(limit, len(found))]
	span.SetAttributes(attribute.Int("matches.total_found", len(found)))
	return MatchSearchResult{Matches: page, Count: len(page), TotalFound: len(found)}, nil
}

func (s *QueryService) TeamStatistics(ctx context.Context, team string, season int) (stats.TeamStats, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.TeamStatistics", attribute.String("team", team))
	defer span.End()

	if err := validateTeamSeason(team, season); err != nil {
		return stats.TeamStats{}, err
	}
	out, ok := s.engine.TeamStatistics(team, season)
	if !ok {
		return stats.TeamStats{}, fmt.Errorf("%w: team %q", ErrNotFound, team)
	}
	return out, nil
}

func (s *QueryService) HomeRecord(ctx context.Context, team string, season int) (stats.Record, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.HomeRecord", attribute.String("team", team))
	defer span.End()

	return s.record(team, season, s.engine.HomeRecord)
}

func (s *QueryService) AwayRecord(ctx context.Context, team string, season int) (stats.Record, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.AwayRecord", attribute.String("team", team))
	defer span.End()

	return s.record(team, season, s.engine.AwayRecord)
}

func (s *QueryService) record(team string, season int, fn func(string, int) (stats.Record, bool)) (stats.Record, error) {
	if err := validateTeamSeason(team, season); err != nil {
		return stats.Record{}, err
	}
	out, ok := fn(team, season)
	if !ok {
		return stats.Record{}, fmt.Errorf("%w: team %q", ErrNotFound, team)
	}
	return out, nil
}

type HeadToHeadReport struct {
	Stats         stats.HeadToHeadStats
	RecentMatches []match.Match
}

// HeadToHead returns the aggregate record and the latest meetings, newest first.
func (s *QueryService) HeadToHead(ctx context.Context, team1, team2 string) (HeadToHeadReport, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.HeadToHead",
		attribute.String("team1", team1),
		attribute.String("team2", team2),
	)
	defer span.End()

	if strings.TrimSpace(team1) == "" || strings.TrimSpace(team2) == "" {
		return HeadToHeadReport{}, fmt.Errorf("%w: team1 and team2 are required", ErrInvalidInput)
	}
	h2h, ok := s.engine.HeadToHead(team1, team2)
	if !ok {
		return HeadToHeadReport{}, fmt.Errorf("%w: teams %q and %q", ErrNotFound, team1, team2)
	}

	meetings := s.engine.MatchesBetween(team1, team2)
	recent := slices.Clone(meetings[max(0, len(meetings)-RecentMatchesLimit):])
	slices.Reverse(recent)
	return HeadToHeadReport{Stats: h2h, RecentMatches: recent}, nil
}

func (s *QueryService) Standings(ctx context.Context, competition string, season int) ([]stats.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Standings",
		attribute.String("competition", competition),
		attribute.Int("season", season),
	)
	defer span.End()

	if strings.TrimSpace(competition) == "" {
		return nil, fmt.Errorf("%w: competition is required", ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	name := s.competitionName(competition)
	load := func(context.Context) ([]stats.Standing, error) {
		return s.engine.CompetitionStandings(name, season), nil
	}
	if s.standings == nil {
		return load(ctx)
	}
	return s.standings.GetOrLoad(ctx, cache.Key("standings", name, season), load)
}

func (s *QueryService) TopTeamsByGoals(ctx context.Context, season, limit int) ([]stats.TeamGoalStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.TopTeamsByGoals", attribute.Int("season", season))
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	n, err := s.limit(limit, DefaultListLimit)
	if err != nil {
		return nil, err
	}

	load := func(context.Context) ([]stats.TeamGoalStats, error) {
		return s.engine.TopTeamsByGoals(season, n), nil
	}
	if s.rankings == nil {
		return load(ctx)
	}
	return s.rankings.GetOrLoad(ctx, cache.Key("rankings", season, n), load)
}

func (s *QueryService) BiggestWins(ctx context.Context, competition string, limit int) ([]match.Match, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.BiggestWins")
	defer span.End()

	n, err := s.limit(limit, DefaultListLimit)
	if err != nil {
		return nil, err
	}
	return s.engine.BiggestWins(s.competitionName(competition), n), nil
}

func (s *QueryService) AverageGoals(ctx context.Context, competition string, season int) (float64, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.AverageGoals")
	defer span.End()

	if season < 0 {
		return 0, fmt.Errorf("%w: season must be a positive year", ErrInvalidInput)
	}
	return s.engine.AverageGoalsPerMatch(s.competitionName(competition), season), nil
}

func (s *QueryService) Competitions(ctx context.Context) []match.Competition {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.Competitions")
	defer span.End()

	return s.engine.Competitions()
}

func (s *QueryService) Teams(ctx context.Context) []string {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.Teams")
	defer span.End()

	return s.engine.Teams()
}

// TeamReport describes how a raw name normalizes and what it resolves to in
// the loaded data.
type TeamReport struct {
	teamname.Team
	Resolved string
	Found    bool
}

func (s *QueryService) DescribeTeam(ctx context.Context, raw string) (TeamReport, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.DescribeTeam")
	defer span.End()

	if strings.TrimSpace(raw) == "" {
		return TeamReport{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	report := TeamReport{Team: s.engine.Normalizer().Describe(raw)}
	report.Resolved, report.Found = s.engine.ResolveTeam(raw)
	return report, nil
}

type PlayerQuery struct {
	Name        string
	Nationality string
	Club        string
	MinRating   *int
	Limit       int
}

type PlayerSearchResult struct {
	Players []player.Player
	Count   int
}

// SearchPlayers filters by name, else nationality, else club, else returns
// the top rated. MinRating drops players below it or without a rating.
func (s *QueryService) SearchPlayers(ctx context.Context, q PlayerQuery) (PlayerSearchResult, error) {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.SearchPlayers")
	defer span.End()

	limit, err := s.limit(q.Limit, DefaultSearchLimit)
	if err != nil {
		return PlayerSearchResult{}, err
	}
	if q.MinRating != nil && (*q.MinRating < player.MinRating || *q.MinRating > player.MaxRating) {
		return PlayerSearchResult{}, fmt.Errorf("%w: min_rating must be between %d and %d", ErrInvalidInput, player.MinRating, player.MaxRating)
	}

	var found []player.Player
	switch {
	case strings.TrimSpace(q.Name) != "":
		found = s.engine.PlayersByName(strings.TrimSpace(q.Name))
	case strings.TrimSpace(q.Nationality) != "":
		found = s.engine.PlayersByNationality(strings.TrimSpace(q.Nationality))
	case strings.TrimSpace(q.Club) != "":
		found = s.engine.PlayersByClub(q.Club)
	default:
		found = s.engine.TopRatedPlayers(s.engine.PlayerCount())
	}

	if q.MinRating != nil {
		floor := *q.MinRating
		found = slices.DeleteFunc(found, func(p player.Player) bool {
			return p.RatingOr(-1) < floor
		})
	}

	page := found[:min(limit, len(found))]
	return PlayerSearchResult{Players: page, Count: len(page)}, nil
}

func (s *QueryService) BrazilianPlayersAtBrazilianClubs(ctx context.Context) []player.Player {
	_, span := startUsecaseSpan(ctx, "usecase.QueryService.BrazilianPlayersAtBrazilianClubs")
	defer span.End()

	return s.engine.BrazilianPlayersAtBrazilianClubs()
}

// limit applies fallback to a zero value and rejects anything outside
// 1..MaxLimit.
func (s *QueryService) limit(v, fallback int) (int, error) {
	if v == 0 {
		v = fallback
	}
	if v < 1 || v > s.cfg.MaxLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, s.cfg.MaxLimit)
	}
	return v, nil
}

// competitionName maps a case-insensitive name onto a known competition,
// leaving unknown names untouched.
func (s *QueryService) competitionName(raw string) string {
	name := strings.TrimSpace(raw)
	for _, c := range s.engine.Competitions() {
		if strings.EqualFold(c.Name, name) {
			return c.Name
		}
	}
	return name
}

func validateTeamSeason(team string, season int) error {
	if strings.TrimSpace(team) == "" {
		return fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if season < 0 {
		return fmt.Errorf("%w: season must be a positive year", ErrInvalidInput)
	}
	return nil
}
