package journal

import (
	"context"
	"sync"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

var (
	_ mealWriter     = &mealWriterMock{}
	_ medicineWriter = &medicineWriterMock{}
	_ bodyStatWriter = &bodyStatWriterMock{}
	_ labTestWriter  = &labTestWriterMock{}
)

type mealWriterMock struct {
	CreateFunc func(ctx context.Context, m *domain.Meal) (*domain.Meal, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Meal
		}
	}
	lockCreate sync.RWMutex
}

func (mock *mealWriterMock) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if mock.CreateFunc == nil {
		panic("mealWriterMock.CreateFunc: method is nil but mealWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Meal
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *mealWriterMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Meal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type medicineWriterMock struct {
	CreateFunc func(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Medicine
		}
	}
	lockCreate sync.RWMutex
}

func (mock *medicineWriterMock) Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error) {
	if mock.CreateFunc == nil {
		panic("medicineWriterMock.CreateFunc: method is nil but medicineWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Medicine
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *medicineWriterMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Medicine
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type bodyStatWriterMock struct {
	CreateFunc func(ctx context.Context, b *domain.BodyStat) (*domain.BodyStat, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   *domain.BodyStat
		}
	}
	lockCreate sync.RWMutex
}

func (mock *bodyStatWriterMock) Create(ctx context.Context, b *domain.BodyStat) (*domain.BodyStat, error) {
	if mock.CreateFunc == nil {
		panic("bodyStatWriterMock.CreateFunc: method is nil but bodyStatWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.BodyStat
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bodyStatWriterMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.BodyStat
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type labTestWriterMock struct {
	CreateFunc func(ctx context.Context, lt *domain.LabTest) (*domain.LabTest, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Lt  *domain.LabTest
		}
	}
	lockCreate sync.RWMutex
}

func (mock *labTestWriterMock) Create(ctx context.Context, lt *domain.LabTest) (*domain.LabTest, error) {
	if mock.CreateFunc == nil {
		panic("labTestWriterMock.CreateFunc: method is nil but labTestWriter.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lt  *domain.LabTest
	}{Ctx: ctx, Lt: lt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, lt)
}

func (mock *labTestWriterMock) CreateCalls() []struct {
	Ctx context.Context
	Lt  *domain.LabTest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
