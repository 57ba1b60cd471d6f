package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/stats"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.query.Teams(ctx))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	report, err := h.query.DescribeTeam(ctx, r.PathValue("team"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamReportDTO{
		Team:     report.Team,
		Resolved: report.Resolved,
		Found:    report.Found,
	})
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	req, ok := h.teamSeason(ctx, w, r)
	if !ok {
		return
	}

	item, err := h.query.TeamStatistics(ctx, req.Team, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "team statistics failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetTeamHomeRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHomeRecord")
	defer span.End()

	h.writeRecord(ctx, w, r, h.query.HomeRecord)
}

func (h *Handler) GetTeamAwayRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamAwayRecord")
	defer span.End()

	h.writeRecord(ctx, w, r, h.query.AwayRecord)
}

func (h *Handler) writeRecord(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, team string, season int) (stats.Record, error),
) {
	req, ok := h.teamSeason(ctx, w, r)
	if !ok {
		return
	}

	item, err := fn(ctx, req.Team, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "team record failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) teamSeason(ctx context.Context, w http.ResponseWriter, r *http.Request) (teamSeasonRequest, bool) {
	q := newQueryReader(r.URL.Query())
	req := teamSeasonRequest{
		Team:   r.PathValue("team"),
		Season: q.int("season"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return teamSeasonRequest{}, false
	}
	return req, true
}

func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HeadToHead")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := headToHeadRequest{
		Team1: q.string("team1"),
		Team2: q.string("team2"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.query.HeadToHead(ctx, req.Team1, req.Team2)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadDTO{
		Stats:         report.Stats,
		RecentMatches: matchesToDTO(report.RecentMatches),
	})
}
