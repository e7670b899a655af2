package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

var (
	_ mealRepo     = &mealRepoMock{}
	_ medicineRepo = &medicineRepoMock{}
	_ bodyStatRepo = &bodyStatRepoMock{}
	_ labTestRepo  = &labTestRepoMock{}
)

type mealRepoMock struct {
	ListFunc               func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Meal, int, error)
	ListByJournalEntryFunc func(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		ListByJournalEntry []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lockList               sync.RWMutex
	lockListByJournalEntry sync.RWMutex
}

func (mock *mealRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Meal, int, error) {
	if mock.ListFunc == nil {
		panic("mealRepoMock.ListFunc: method is nil but mealRepo.List was just called")
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

func (mock *mealRepoMock) ListCalls() []struct {
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

func (mock *mealRepoMock) ListByJournalEntry(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error) {
	if mock.ListByJournalEntryFunc == nil {
		panic("mealRepoMock.ListByJournalEntryFunc: method is nil but mealRepo.ListByJournalEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockListByJournalEntry.Lock()
	mock.calls.ListByJournalEntry = append(mock.calls.ListByJournalEntry, callInfo)
	mock.lockListByJournalEntry.Unlock()
	return mock.ListByJournalEntryFunc(ctx, userID, entryID)
}

func (mock *mealRepoMock) ListByJournalEntryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockListByJournalEntry.RLock()
	calls := mock.calls.ListByJournalEntry
	mock.lockListByJournalEntry.RUnlock()
	return calls
}

type medicineRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Medicine, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockList sync.RWMutex
}

func (mock *medicineRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Medicine, int, error) {
	if mock.ListFunc == nil {
		panic("medicineRepoMock.ListFunc: method is nil but medicineRepo.List was just called")
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

func (mock *medicineRepoMock) ListCalls() []struct {
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

type bodyStatRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.BodyStat, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockList sync.RWMutex
}

func (mock *bodyStatRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.BodyStat, int, error) {
	if mock.ListFunc == nil {
		panic("bodyStatRepoMock.ListFunc: method is nil but bodyStatRepo.List was just called")
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

func (mock *bodyStatRepoMock) ListCalls() []struct {
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

type labTestRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LabTest, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockList sync.RWMutex
}

func (mock *labTestRepoMock) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LabTest, int, error) {
	if mock.ListFunc == nil {
		panic("labTestRepoMock.ListFunc: method is nil but labTestRepo.List was just called")
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

func (mock *labTestRepoMock) ListCalls() []struct {
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
