package httpapi

import (
	"net/http"

	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerMatchRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	var root http.Handler = recoverPanic(logger, mux)
	if opts.RateLimitEnabled && opts.RateLimitRPS > 0 && opts.RateLimitBurst > 0 {
		root = RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, root)
	}

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, root)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "http_path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
