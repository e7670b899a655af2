package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/config"
	"github.com/arjunbhatia/healthlog-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// submitRateLimit bounds journal submissions per IP per minute; each one
// costs an extraction-service call.
const submitRateLimit = 10

// NewRouter builds the HTTP handler tree: public auth and health endpoints,
// and token-protected journal and record endpoints.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	authH *AuthHandler,
	journalH *JournalHandler,
	recordsH *RecordsHandler,
	healthH *HealthHandler,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	// Public endpoints.
	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("POST /api/auth/register", authH.Register)
	mux.HandleFunc("POST /api/auth/login", authH.Login)

	// Everything below requires a valid token.
	protected := middleware.Auth(validator)

	mux.Handle("GET /api/auth/me", protected(http.HandlerFunc(authH.Me)))

	submit := middleware.Chain(protected, limiter.Limit(submitRateLimit))
	mux.Handle("POST /api/journal", submit(http.HandlerFunc(journalH.Submit)))
	mux.Handle("GET /api/journal", protected(http.HandlerFunc(journalH.List)))
	mux.Handle("GET /api/journal/{id}", protected(http.HandlerFunc(journalH.Get)))
	mux.Handle("POST /api/journal/{id}/retry", protected(http.HandlerFunc(journalH.Retry)))
	mux.Handle("GET /api/journal/{id}/meals", protected(http.HandlerFunc(recordsH.ListMealsByJournalEntry)))

	mux.Handle("GET /api/meals", protected(http.HandlerFunc(recordsH.ListMeals)))
	mux.Handle("GET /api/medicines", protected(http.HandlerFunc(recordsH.ListMedicines)))
	mux.Handle("GET /api/body-stats", protected(http.HandlerFunc(recordsH.ListBodyStats)))
	mux.Handle("GET /api/lab-tests", protected(http.HandlerFunc(recordsH.ListLabTests)))

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	)
	return base(mux)
}
