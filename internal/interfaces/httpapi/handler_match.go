package httpapi

import (
	"net/http"
)

func (h *Handler) SearchMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchMatches")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := matchSearchRequest{
		Team1:       q.string("team1"),
		Team2:       q.string("team2"),
		Team:        q.string("team"),
		Side:        q.string("side"),
		Season:      q.int("season"),
		Competition: q.string("competition"),
		From:        q.string("from"),
		To:          q.string("to"),
		Limit:       q.int("limit"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.query.SearchMatches(ctx, req.toQuery())
	if err != nil {
		h.logger.WarnContext(ctx, "search matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSearchDTO{
		Matches:    matchesToDTO(result.Matches),
		Count:      result.Count,
		TotalFound: result.TotalFound,
	})
}

func (h *Handler) BiggestWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BiggestWins")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := biggestWinsRequest{
		Competition: q.string("competition"),
		Limit:       q.int("limit"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.query.BiggestWins(ctx, req.Competition, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "biggest wins failed", "competition", req.Competition, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) AverageGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AverageGoals")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := averageGoalsRequest{
		Competition: q.string("competition"),
		Season:      q.int("season"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	avg, err := h.query.AverageGoals(ctx, req.Competition, req.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, averageGoalsDTO{
		Competition:  req.Competition,
		Season:       req.Season,
		AverageGoals: avg,
	})
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, competitionsToDTO(h.query.Competitions(ctx)))
}

func (h *Handler) GetCompetitionStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionStandings")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := standingsRequest{
		Competition: r.PathValue("competition"),
		Season:      q.int("season"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.query.Standings(ctx, req.Competition, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "competition", req.Competition, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GoalRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GoalRankings")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := goalRankingsRequest{
		Season: q.int("season"),
		Limit:  q.int("limit"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.query.TopTeamsByGoals(ctx, req.Season, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "goal rankings failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
