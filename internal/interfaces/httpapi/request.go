package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/brazilian-soccer/internal/queryengine"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

const queryDateLayout = "2006-01-02"

type matchSearchRequest struct {
	Team1       string `validate:"omitempty,max=120"`
	Team2       string `validate:"omitempty,max=120"`
	Team        string `validate:"omitempty,max=120"`
	Side        string `validate:"omitempty,oneof=home away"`
	Season      int    `validate:"omitempty,gte=1"`
	Competition string `validate:"omitempty,max=120"`
	From        string `validate:"omitempty,datetime=2006-01-02"`
	To          string `validate:"omitempty,datetime=2006-01-02"`
	Limit       int    `validate:"omitempty,gte=1"`
}

type biggestWinsRequest struct {
	Competition string `validate:"omitempty,max=120"`
	Limit       int    `validate:"omitempty,gte=1"`
}

type averageGoalsRequest struct {
	Competition string `validate:"omitempty,max=120"`
	Season      int    `validate:"omitempty,gte=1"`
}

type teamSeasonRequest struct {
	Team   string `validate:"required,max=120"`
	Season int    `validate:"omitempty,gte=1"`
}

type headToHeadRequest struct {
	Team1 string `validate:"required,max=120"`
	Team2 string `validate:"required,max=120"`
}

type standingsRequest struct {
	Competition string `validate:"required,max=120"`
	Season      int    `validate:"required,gte=1"`
}

type goalRankingsRequest struct {
	Season int `validate:"required,gte=1"`
	Limit  int `validate:"omitempty,gte=1"`
}

type playerSearchRequest struct {
	Name        string `validate:"omitempty,max=120"`
	Nationality string `validate:"omitempty,max=120"`
	Club        string `validate:"omitempty,max=120"`
	MinRating   *int   `validate:"omitempty,gte=0,lte=100"`
	Limit       int    `validate:"omitempty,gte=1"`
}

// queryReader collects the first conversion error so handlers can read every
// parameter and check once.
type queryReader struct {
	values url.Values
	err    error
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) string(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

func (q *queryReader) int(key string) int {
	n := q.optionalInt(key)
	if n == nil {
		return 0
	}
	return *n
}

func (q *queryReader) optionalInt(key string) *int {
	raw := q.string(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		if q.err == nil {
			q.err = fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
		}
		return nil
	}
	return &n
}

func (q *queryReader) Err() error {
	return q.err
}

func (r matchSearchRequest) toQuery() usecase.MatchQuery {
	out := usecase.MatchQuery{
		Team1:       r.Team1,
		Team2:       r.Team2,
		Team:        r.Team,
		Side:        parseSide(r.Side),
		Season:      r.Season,
		Competition: r.Competition,
		Limit:       r.Limit,
	}
	if from, err := time.Parse(queryDateLayout, r.From); err == nil {
		out.From = &from
	}
	// to is inclusive of the whole day.
	if to, err := time.Parse(queryDateLayout, r.To); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		out.To = &end
	}
	return out
}

func parseSide(raw string) queryengine.Side {
	switch raw {
	case "home":
		return queryengine.SideHome
	case "away":
		return queryengine.SideAway
	default:
		return queryengine.SideAny
	}
}
