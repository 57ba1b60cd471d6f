package httpapi

import (
	"net/http"

	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := playerSearchRequest{
		Name:        q.string("name"),
		Nationality: q.string("nationality"),
		Club:        q.string("club"),
		MinRating:   q.optionalInt("min_rating"),
		Limit:       q.int("limit"),
	}
	if err := h.bind(ctx, q, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.query.SearchPlayers(ctx, usecase.PlayerQuery{
		Name:        req.Name,
		Nationality: req.Nationality,
		Club:        req.Club,
		MinRating:   req.MinRating,
		Limit:       req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSearchDTO{
		Players: playersToDTO(result.Players),
		Count:   result.Count,
	})
}

func (h *Handler) BrazilianPlayersAtBrazilianClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BrazilianPlayersAtBrazilianClubs")
	defer span.End()

	items := h.query.BrazilianPlayersAtBrazilianClubs(ctx)
	writeSuccess(ctx, w, http.StatusOK, playerSearchDTO{
		Players: playersToDTO(items),
		Count:   len(items),
	})
}
