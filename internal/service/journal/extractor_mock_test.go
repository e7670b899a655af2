package journal

import (
	"context"
	"sync"
)

var _ extractor = &extractorMock{}

type extractorMock struct {
	ExtractFunc func(ctx context.Context, rawText string) (string, error)

	calls struct {
		Extract []struct {
			Ctx     context.Context
			RawText string
		}
	}
	lockExtract sync.RWMutex
}

func (mock *extractorMock) Extract(ctx context.Context, rawText string) (string, error) {
	if mock.ExtractFunc == nil {
		panic("extractorMock.ExtractFunc: method is nil but extractor.Extract was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RawText string
	}{Ctx: ctx, RawText: rawText}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, rawText)
}

func (mock *extractorMock) ExtractCalls() []struct {
	Ctx     context.Context
	RawText string
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
