package topic

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc        func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetForUpdateFunc   func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListCandidatesFunc func(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error)
	CreateFunc         func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	UpdateFunc         func(ctx context.Context, topic *domain.Topic, expectedUpdatedAt time.Time) (*domain.Topic, error)
	DeleteFunc         func(ctx context.Context, topicID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		GetForUpdate []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ListCandidates []struct {
			Ctx    context.Context
			Filter domain.CandidateFilter
		}
		Create []struct {
			Ctx   context.Context
			Topic *domain.Topic
		}
		Update []struct {
			Ctx               context.Context
			Topic             *domain.Topic
			ExpectedUpdatedAt time.Time
		}
		Delete []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockGetForUpdate   sync.RWMutex
	lockListCandidates sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
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

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetForUpdateFunc == nil {
		panic("topicRepoMock.GetForUpdateFunc: method is nil but topicRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetForUpdateCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error) {
	if mock.ListCandidatesFunc == nil {
		panic("topicRepoMock.ListCandidatesFunc: method is nil but topicRepo.ListCandidates was just called")
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

func (mock *topicRepoMock) ListCandidatesCalls() []struct {
	Ctx    context.Context
	Filter domain.CandidateFilter
} {
	mock.lockListCandidates.RLock()
	calls := mock.calls.ListCandidates
	mock.lockListCandidates.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic *domain.Topic
	}{
		Ctx:   ctx,
		Topic: topic,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Topic *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, topic *domain.Topic, expectedUpdatedAt time.Time) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx               context.Context
		Topic             *domain.Topic
		ExpectedUpdatedAt time.Time
	}{
		Ctx:               ctx,
		Topic:             topic,
		ExpectedUpdatedAt: expectedUpdatedAt,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, topic, expectedUpdatedAt)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx               context.Context
	Topic             *domain.Topic
	ExpectedUpdatedAt time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, topicID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, topicID)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
