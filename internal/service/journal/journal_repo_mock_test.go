package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

var _ journalRepo = &journalRepoMock{}

type journalRepoMock struct {
	CreateFunc         func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByIDFunc        func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListFunc           func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error)
	MarkCompletedFunc  func(ctx context.Context, entryID uuid.UUID, parsedData *domain.ParsedData, aiResponse string) error
	MarkFailedFunc     func(ctx context.Context, entryID uuid.UUID, reason string, aiResponse *string) error
	MarkPendingFunc    func(ctx context.Context, entryID uuid.UUID) error
	MarkProcessingFunc func(ctx context.Context, entryID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.JournalEntry
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		MarkCompleted []struct {
			Ctx        context.Context
			EntryID    uuid.UUID
			ParsedData *domain.ParsedData
			AIResponse string
		}
		MarkFailed []struct {
			Ctx        context.Context
			EntryID    uuid.UUID
			Reason     string
			AIResponse *string
		}
		MarkPending []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		MarkProcessing []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockMarkCompleted  sync.RWMutex
	lockMarkFailed     sync.RWMutex
	lockMarkPending    sync.RWMutex
	lockMarkProcessing sync.RWMutex
}

func (mock *journalRepoMock) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("journalRepoMock.CreateFunc: method is nil but journalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.JournalEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *journalRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.JournalEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *journalRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("journalRepoMock.GetByIDFunc: method is nil but journalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *journalRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *journalRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error) {
	if mock.ListFunc == nil {
		panic("journalRepoMock.ListFunc: method is nil but journalRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *journalRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *journalRepoMock) MarkCompleted(ctx context.Context, entryID uuid.UUID, parsedData *domain.ParsedData, aiResponse string) error {
	if mock.MarkCompletedFunc == nil {
		panic("journalRepoMock.MarkCompletedFunc: method is nil but journalRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntryID    uuid.UUID
		ParsedData *domain.ParsedData
		AIResponse string
	}{Ctx: ctx, EntryID: entryID, ParsedData: parsedData, AIResponse: aiResponse}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, entryID, parsedData, aiResponse)
}

func (mock *journalRepoMock) MarkCompletedCalls() []struct {
	Ctx        context.Context
	EntryID    uuid.UUID
	ParsedData *domain.ParsedData
	AIResponse string
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

func (mock *journalRepoMock) MarkFailed(ctx context.Context, entryID uuid.UUID, reason string, aiResponse *string) error {
	if mock.MarkFailedFunc == nil {
		panic("journalRepoMock.MarkFailedFunc: method is nil but journalRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntryID    uuid.UUID
		Reason     string
		AIResponse *string
	}{Ctx: ctx, EntryID: entryID, Reason: reason, AIResponse: aiResponse}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, entryID, reason, aiResponse)
}

func (mock *journalRepoMock) MarkFailedCalls() []struct {
	Ctx        context.Context
	EntryID    uuid.UUID
	Reason     string
	AIResponse *string
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *journalRepoMock) MarkPending(ctx context.Context, entryID uuid.UUID) error {
	if mock.MarkPendingFunc == nil {
		panic("journalRepoMock.MarkPendingFunc: method is nil but journalRepo.MarkPending was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockMarkPending.Lock()
	mock.calls.MarkPending = append(mock.calls.MarkPending, callInfo)
	mock.lockMarkPending.Unlock()
	return mock.MarkPendingFunc(ctx, entryID)
}

func (mock *journalRepoMock) MarkPendingCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockMarkPending.RLock()
	calls := mock.calls.MarkPending
	mock.lockMarkPending.RUnlock()
	return calls
}

func (mock *journalRepoMock) MarkProcessing(ctx context.Context, entryID uuid.UUID) error {
	if mock.MarkProcessingFunc == nil {
		panic("journalRepoMock.MarkProcessingFunc: method is nil but journalRepo.MarkProcessing was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockMarkProcessing.Lock()
	mock.calls.MarkProcessing = append(mock.calls.MarkProcessing, callInfo)
	mock.lockMarkProcessing.Unlock()
	return mock.MarkProcessingFunc(ctx, entryID)
}

func (mock *journalRepoMock) MarkProcessingCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockMarkProcessing.RLock()
	calls := mock.calls.MarkProcessing
	mock.lockMarkProcessing.RUnlock()
	return calls
}
