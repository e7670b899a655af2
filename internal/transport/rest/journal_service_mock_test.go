package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
	"github.com/arjunbhatia/healthlog-backend/internal/service/journal"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	SubmitFunc      func(ctx context.Context, userID uuid.UUID, input journal.SubmitInput) (*journal.Result, error)
	GetEntryFunc    func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntriesFunc func(ctx context.Context, userID uuid.UUID, input journal.ListInput) ([]*domain.JournalEntry, int, error)
	RetryFunc       func(ctx context.Context, userID, entryID uuid.UUID) (*journal.Result, error)

	calls struct {
		Submit []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  journal.SubmitInput
		}
		GetEntry []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		ListEntries []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  journal.ListInput
		}
		Retry []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lockSubmit      sync.RWMutex
	lockGetEntry    sync.RWMutex
	lockListEntries sync.RWMutex
	lockRetry       sync.RWMutex
}

func (mock *journalServiceMock) Submit(ctx context.Context, userID uuid.UUID, input journal.SubmitInput) (*journal.Result, error) {
	if mock.SubmitFunc == nil {
		panic("journalServiceMock.SubmitFunc: method is nil but journalService.Submit was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  journal.SubmitInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, userID, input)
}

func (mock *journalServiceMock) SubmitCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  journal.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *journalServiceMock) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("journalServiceMock.GetEntryFunc: method is nil but journalService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, userID, entryID)
}

func (mock *journalServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *journalServiceMock) ListEntries(ctx context.Context, userID uuid.UUID, input journal.ListInput) ([]*domain.JournalEntry, int, error) {
	if mock.ListEntriesFunc == nil {
		panic("journalServiceMock.ListEntriesFunc: method is nil but journalService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  journal.ListInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, userID, input)
}

func (mock *journalServiceMock) ListEntriesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  journal.ListInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *journalServiceMock) Retry(ctx context.Context, userID, entryID uuid.UUID) (*journal.Result, error) {
	if mock.RetryFunc == nil {
		panic("journalServiceMock.RetryFunc: method is nil but journalService.Retry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockRetry.Lock()
	mock.calls.Retry = append(mock.calls.Retry, callInfo)
	mock.lockRetry.Unlock()
	return mock.RetryFunc(ctx, userID, entryID)
}

func (mock *journalServiceMock) RetryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockRetry.RLock()
	calls := mock.calls.Retry
	mock.lockRetry.RUnlock()
	return calls
}
