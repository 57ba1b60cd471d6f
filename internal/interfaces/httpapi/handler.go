package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

type Handler struct {
	query     *usecase.QueryService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(query *usecase.QueryService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		query:     query,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, datasetSummaryDTO{
		Status:         "ok",
		DatasetSummary: h.query.Summary(ctx),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// bind validates payload after the query reader finished. The returned error
// is already mapped for writeError.
func (h *Handler) bind(ctx context.Context, q *queryReader, payload any) error {
	if err := q.Err(); err != nil {
		return err
	}
	return h.validateRequest(ctx, payload)
}
