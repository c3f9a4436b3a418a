package bookmark

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	SaveFunc   func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error)
	UnsaveFunc func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error)

	calls struct {
		Save []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		Unsave []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
	}
	lockSave   sync.RWMutex
	lockUnsave sync.RWMutex
}

func (mock *bookmarkRepoMock) Save(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error) {
	if mock.SaveFunc == nil {
		panic("bookmarkRepoMock.SaveFunc: method is nil but bookmarkRepo.Save was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		TopicID: topicID,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, topicID)
}

func (mock *bookmarkRepoMock) SaveCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Unsave(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error) {
	if mock.UnsaveFunc == nil {
		panic("bookmarkRepoMock.UnsaveFunc: method is nil but bookmarkRepo.Unsave was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		TopicID: topicID,
	}
	mock.lockUnsave.Lock()
	mock.calls.Unsave = append(mock.calls.Unsave, callInfo)
	mock.lockUnsave.Unlock()
	return mock.UnsaveFunc(ctx, userID, topicID)
}

func (mock *bookmarkRepoMock) UnsaveCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockUnsave.RLock()
	calls := mock.calls.Unsave
	mock.lockUnsave.RUnlock()
	return calls
}
