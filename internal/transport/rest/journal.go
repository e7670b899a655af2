package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
	"github.com/arjunbhatia/healthlog-backend/internal/service/journal"
	"github.com/arjunbhatia/healthlog-backend/pkg/ctxutil"
)

// journalService defines the minimal interface needed by JournalHandler.
type journalService interface {
	Submit(ctx context.Context, userID uuid.UUID, input journal.SubmitInput) (*journal.Result, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, input journal.ListInput) ([]*domain.JournalEntry, int, error)
	Retry(ctx context.Context, userID, entryID uuid.UUID) (*journal.Result, error)
}

// JournalHandler serves journal REST endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type submitRequest struct {
	RawText string     `json:"rawText"`
	Date    *time.Time `json:"date,omitempty"`
}

// resultResponse is returned by submit and retry. When the pipeline fails,
// status is "failed" and processingError explains why; journalId is present
// either way so the client can poll or retry.
type resultResponse struct {
	JournalID       string               `json:"journalId"`
	Status          string               `json:"status"`
	IsProcessed     bool                 `json:"isProcessed"`
	ParsedData      *domain.ParsedData   `json:"parsedData,omitempty"`
	CreatedItems    domain.CreatedCounts `json:"createdItems"`
	ProcessingError *string              `json:"processingError,omitempty"`
}

type entryResponse struct {
	ID              string             `json:"id"`
	Date            time.Time          `json:"date"`
	RawText         string             `json:"rawText"`
	Status          string             `json:"status"`
	IsProcessed     bool               `json:"isProcessed"`
	ParsedData      *domain.ParsedData `json:"parsedData,omitempty"`
	ProcessingError *string            `json:"processingError,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Submit handles POST /api/journal. Processing is synchronous; the response
// carries the final state of the entry, 201 either way because the entry
// itself was created.
func (h *JournalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Submit(r.Context(), userID, journal.SubmitInput{
		RawText: req.RawText,
		Date:    req.Date,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResultResponse(result))
}

// Get handles GET /api/journal/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	entry, err := h.svc.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /api/journal.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := parsePagination(r)
	entries, total, err := h.svc.ListEntries(r.Context(), userID, journal.ListInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, paginationResponse{Items: items, Total: total})
}

// Retry handles POST /api/journal/{id}/retry.
func (h *JournalHandler) Retry(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.svc.Retry(r.Context(), userID, entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(result))
}

func (h *JournalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusBadRequest, "entry is not retryable")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "journal entry not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toResultResponse(result *journal.Result) resultResponse {
	return resultResponse{
		JournalID:       result.JournalID.String(),
		Status:          result.Status.String(),
		IsProcessed:     result.IsProcessed,
		ParsedData:      result.ParsedData,
		CreatedItems:    result.CreatedItems,
		ProcessingError: result.ProcessingError,
	}
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	return entryResponse{
		ID:              e.ID.String(),
		Date:            e.Date,
		RawText:         e.RawText,
		Status:          e.ProcessingStatus.String(),
		IsProcessed:     e.IsProcessed,
		ParsedData:      e.ParsedData,
		ProcessingError: e.ProcessingError,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
