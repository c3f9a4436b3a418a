package bookmark

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

var _ topicReader = &topicReaderMock{}

type topicReaderMock struct {
	GetByIDFunc        func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListCandidatesFunc func(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ListCandidates []struct {
			Ctx    context.Context
			Filter domain.CandidateFilter
		}
	}
	lockGetByID        sync.RWMutex
	lockListCandidates sync.RWMutex
}

func (mock *topicReaderMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicReaderMock.GetByIDFunc: method is nil but topicReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicReaderMock) GetByIDCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicReaderMock) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error) {
	if mock.ListCandidatesFunc == nil {
		panic("topicReaderMock.ListCandidatesFunc: method is nil but topicReader.ListCandidates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CandidateFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListCandidates.Lock()
	mock.calls.ListCandidates = append(mock.calls.ListCandidates, callInfo)
	mock.lockListCandidates.Unlock()
	return mock.ListCandidatesFunc(ctx, filter)
}

func (mock *topicReaderMock) ListCandidatesCalls() []struct {
	Ctx    context.Context
	Filter domain.CandidateFilter
} {
	mock.lockListCandidates.RLock()
	calls := mock.calls.ListCandidates
	mock.lockListCandidates.RUnlock()
	return calls
}
