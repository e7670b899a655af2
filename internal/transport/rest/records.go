package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
	"github.com/arjunbhatia/healthlog-backend/internal/service/records"
	"github.com/arjunbhatia/healthlog-backend/pkg/ctxutil"
)

// recordsService defines the minimal interface needed by RecordsHandler.
type recordsService interface {
	ListMeals(ctx context.Context, userID uuid.UUID, input records.ListInput) ([]*domain.Meal, int, error)
	ListMealsByJournalEntry(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error)
	ListMedicines(ctx context.Context, userID uuid.UUID, input records.ListInput) ([]*domain.Medicine, int, error)
	ListBodyStats(ctx context.Context, userID uuid.UUID, input records.ListInput) ([]*domain.BodyStat, int, error)
	ListLabTests(ctx context.Context, userID uuid.UUID, input records.ListInput) ([]*domain.LabTest, int, error)
}

// RecordsHandler serves derived-record REST endpoints.
type RecordsHandler struct {
	svc recordsService
	log *slog.Logger
}

// NewRecordsHandler creates a RecordsHandler.
func NewRecordsHandler(svc recordsService, logger *slog.Logger) *RecordsHandler {
	return &RecordsHandler{svc: svc, log: logger.With("handler", "records")}
}

// ListMeals handles GET /api/meals.
func (h *RecordsHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := parsePagination(r)
	meals, total, err := h.svc.ListMeals(r.Context(), userID, records.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paginationResponse{Items: meals, Total: total})
}

// ListMealsByJournalEntry handles GET /api/journal/{id}/meals.
func (h *RecordsHandler) ListMealsByJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid journal entry id")
		return
	}

	meals, err := h.svc.ListMealsByJournalEntry(r.Context(), userID, entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paginationResponse{Items: meals, Total: len(meals)})
}

// ListMedicines handles GET /api/medicines.
func (h *RecordsHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := parsePagination(r)
	medicines, total, err := h.svc.ListMedicines(r.Context(), userID, records.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paginationResponse{Items: medicines, Total: total})
}

// ListBodyStats handles GET /api/body-stats.
func (h *RecordsHandler) ListBodyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := parsePagination(r)
	stats, total, err := h.svc.ListBodyStats(r.Context(), userID, records.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paginationResponse{Items: stats, Total: total})
}

// ListLabTests handles GET /api/lab-tests.
func (h *RecordsHandler) ListLabTests(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := parsePagination(r)
	tests, total, err := h.svc.ListLabTests(r.Context(), userID, records.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paginationResponse{Items: tests, Total: total})
}

func (h *RecordsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
