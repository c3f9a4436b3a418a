package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ bookmarkReader = &bookmarkReaderMock{}

type bookmarkReaderMock struct {
	SavedTopicIDsFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsSavedFunc       func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error)

	calls struct {
		SavedTopicIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		IsSaved []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
	}
	lockSavedTopicIDs sync.RWMutex
	lockIsSaved       sync.RWMutex
}

func (mock *bookmarkReaderMock) SavedTopicIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.SavedTopicIDsFunc == nil {
		panic("bookmarkReaderMock.SavedTopicIDsFunc: method is nil but bookmarkReader.SavedTopicIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockSavedTopicIDs.Lock()
	mock.calls.SavedTopicIDs = append(mock.calls.SavedTopicIDs, callInfo)
	mock.lockSavedTopicIDs.Unlock()
	return mock.SavedTopicIDsFunc(ctx, userID)
}

func (mock *bookmarkReaderMock) SavedTopicIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockSavedTopicIDs.RLock()
	calls := mock.calls.SavedTopicIDs
	mock.lockSavedTopicIDs.RUnlock()
	return calls
}

func (mock *bookmarkReaderMock) IsSaved(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (bool, error) {
	if mock.IsSavedFunc == nil {
		panic("bookmarkReaderMock.IsSavedFunc: method is nil but bookmarkReader.IsSaved was just called")
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
	mock.lockIsSaved.Lock()
	mock.calls.IsSaved = append(mock.calls.IsSaved, callInfo)
	mock.lockIsSaved.Unlock()
	return mock.IsSavedFunc(ctx, userID, topicID)
}

func (mock *bookmarkReaderMock) IsSavedCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockIsSaved.RLock()
	calls := mock.calls.IsSaved
	mock.lockIsSaved.RUnlock()
	return calls
}
