// Package csvsource reads the Kaggle-style match and player CSV exports.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jszwec/csvutil"
	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
)

var playerColumns = map[string]struct{}{
	"id": {}, "name": {}, "nationality": {}, "club": {}, "overall": {}, "position": {},
}

// Loader reads every dataset file from one directory. A missing or broken
// file contributes nothing; it never fails the whole load.
type Loader struct {
	dir        string
	normalizer *teamname.Normalizer
	validator  *validator.Validate
	logger     *logging.Logger
}

type Option func(*Loader)

func WithNormalizer(n *teamname.Normalizer) Option {
	return func(l *Loader) {
		if n != nil {
			l.normalizer = n
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:        dir,
		normalizer: teamname.NewNormalizer(nil),
		validator:  validator.New(),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "csvsource", "data_dir", dir)

	if _, err := os.Stat(dir); err != nil {
		l.logger.Warn("data directory does not exist", "error", err)
	}
	return l
}

// Dataset is one full load, matches combined in file order.
type Dataset struct {
	Matches       []match.Match
	MatchesByFile map[string]int
	Players       []player.Player
}

// Load reads all match files concurrently and then the player file.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	matches, counts, err := l.loadMatches(ctx)
	if err != nil {
		return Dataset{}, err
	}
	players, err := l.ListPlayers(ctx)
	if err != nil {
		return Dataset{}, err
	}

	l.logger.InfoContext(ctx, "dataset loaded", "matches", len(matches), "players", len(players))
	return Dataset{Matches: matches, MatchesByFile: counts, Players: players}, nil
}

// ListMatches implements match.Source.
func (l *Loader) ListMatches(ctx context.Context) ([]match.Match, error) {
	matches, _, err := l.loadMatches(ctx)
	return matches, err
}

func (l *Loader) loadMatches(ctx context.Context) ([]match.Match, map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	mapper := iter.Mapper[matchFile, []match.Match]{MaxGoroutines: len(matchFiles)}
	slots := mapper.Map(matchFiles, func(f *matchFile) []match.Match {
		return l.loadMatchFile(ctx, *f)
	})
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	total := 0
	counts := make(map[string]int, len(slots))
	for i, slot := range slots {
		total += len(slot)
		counts[matchFiles[i].name] = len(slot)
	}
	out := make([]match.Match, 0, total)
	for _, slot := range slots {
		out = append(out, slot...)
	}
	return out, counts, nil
}

func (l *Loader) loadMatchFile(ctx context.Context, f matchFile) []match.Match {
	logger := l.logger.With("file", f.name)
	out := make([]match.Match, 0)

	err := l.decodeFile(ctx, f.name, func(dec *csvutil.Decoder, line int) error {
		var row matchRow
		if err := dec.Decode(&row); err != nil {
			return err
		}
		m, ok := l.matchFromRow(ctx, logger, f, row, line)
		if ok {
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "load match file failed", "error", err, "loaded", len(out))
		return out
	}

	logger.InfoContext(ctx, "match file loaded", "matches", len(out))
	return out
}

func (l *Loader) matchFromRow(ctx context.Context, logger *logging.Logger, f matchFile, row matchRow, line int) (match.Match, bool) {
	playedAt, ok := parseDate(row.Date)
	if !ok {
		logger.WarnContext(ctx, "skipping row with unparseable date", "line", line, "date", row.Date)
		return match.Match{}, false
	}
	if err := l.validator.StructCtx(ctx, row); err != nil {
		logger.WarnContext(ctx, "skipping invalid match row", "line", line, "error", err)
		return match.Match{}, false
	}

	competition := f.competition
	if competition == "" {
		competition = strings.TrimSpace(row.Competition)
		if competition == "" {
			competition = f.defaultCompetition
		}
	}

	m := match.Match{
		PlayedAt:    playedAt,
		HomeTeam:    l.normalizer.Normalize(row.HomeTeam),
		AwayTeam:    l.normalizer.Normalize(row.AwayTeam),
		HomeGoals:   l.intField(ctx, logger, line, "home_goals", row.HomeGoals, 0),
		AwayGoals:   l.intField(ctx, logger, line, "away_goals", row.AwayGoals, 0),
		Competition: competition,
		Season:      l.intField(ctx, logger, line, "season", row.Season, playedAt.Year()),
		Round:       strings.TrimSpace(row.Round),
		Venue:       strings.TrimSpace(row.Stadium),
	}
	if err := m.Validate(); err != nil {
		logger.WarnContext(ctx, "skipping invalid match row", "line", line, "error", err)
		return match.Match{}, false
	}
	return m, true
}

// ListPlayers implements player.Source.
func (l *Loader) ListPlayers(ctx context.Context) ([]player.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := l.logger.With("file", PlayersFile)
	out := make([]player.Player, 0)

	err := l.decodeFile(ctx, PlayersFile, func(dec *csvutil.Decoder, line int) error {
		var row playerRow
		if err := dec.Decode(&row); err != nil {
			return err
		}
		p, ok := l.playerFromRow(ctx, logger, dec, row, line)
		if ok {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "load player file failed", "error", err, "loaded", len(out))
		return out, nil
	}

	logger.InfoContext(ctx, "player file loaded", "players", len(out))
	return out, nil
}

func (l *Loader) playerFromRow(ctx context.Context, logger *logging.Logger, dec *csvutil.Decoder, row playerRow, line int) (player.Player, bool) {
	p := player.Player{
		ID:          int64(l.intField(ctx, logger, line, "id", row.ID, 0)),
		Name:        textOr(row.Name, "Unknown"),
		Nationality: textOr(row.Nationality, "Unknown"),
		Position:    strings.TrimSpace(row.Position),
		Attributes:  extraAttributes(dec),
	}
	if strings.TrimSpace(row.Club) != "" {
		p.Club = l.normalizer.Normalize(row.Club)
	}
	if strings.TrimSpace(row.Overall) != "" {
		rating, invalid := parseInt(row.Overall, 0)
		switch {
		case invalid:
			logger.WarnContext(ctx, "ignoring unparseable rating", "line", line, "overall", row.Overall)
		case rating < player.MinRating || rating > player.MaxRating:
			logger.WarnContext(ctx, "ignoring out of range rating", "line", line, "overall", rating)
		default:
			p.Rating = &rating
		}
	}

	if err := p.Validate(); err != nil {
		logger.WarnContext(ctx, "skipping invalid player row", "line", line, "error", err)
		return player.Player{}, false
	}
	return p, true
}

// extraAttributes collects the non-blank columns that playerRow leaves unused.
func extraAttributes(dec *csvutil.Decoder) player.Attributes {
	header := dec.Header()
	record := dec.Record()
	attrs := make(player.Attributes)
	for _, idx := range dec.Unused() {
		if idx >= len(header) || idx >= len(record) {
			continue
		}
		name := header[idx]
		if _, reserved := playerColumns[name]; reserved || name == "" {
			continue
		}
		if strings.TrimSpace(record[idx]) == "" {
			continue
		}
		attrs[name] = player.ParseAttribute(record[idx])
	}
	return attrs
}

func (l *Loader) intField(ctx context.Context, logger *logging.Logger, line int, column, raw string, fallback int) int {
	value, invalid := parseInt(raw, fallback)
	if invalid {
		logger.WarnContext(ctx, "could not convert to int", "line", line, "column", column, "value", raw)
	}
	return value
}

// decodeFile opens name, reads its header and calls fn once per record.
// Malformed records are logged and skipped.
func (l *Loader) decodeFile(ctx context.Context, name string, fn func(dec *csvutil.Decoder, line int) error) error {
	path := filepath.Join(l.dir, name)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return crerr.Wrapf(err, "file not found: %s", path)
		}
		return crerr.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return crerr.Wrapf(err, "read header of %s", path)
	}

	dec, err := csvutil.NewDecoder(reader, normalizeHeader(header)...)
	if err != nil {
		return crerr.Wrapf(err, "build decoder for %s", path)
	}

	start := time.Now()
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++

		err := fn(dec, line)
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			continue
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) || errors.Is(err, csvutil.ErrFieldCount) {
			l.logger.WarnContext(ctx, "skipping malformed row", "file", name, "line", line, "error", err)
			continue
		}
		return crerr.Wrapf(err, "decode %s line %d", path, line)
	}

	l.logger.DebugContext(ctx, "file decoded", "file", name, "rows", line-2, "duration", time.Since(start))
	return nil
}

func textOr(raw, fallback string) string {
	if value := strings.TrimSpace(raw); value != "" {
		return value
	}
	return fallback
}
