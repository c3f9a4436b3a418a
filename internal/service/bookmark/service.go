package bookmark

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

type topicReader interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error)
}

type bookmarkRepo interface {
	// Save inserts the relation; it reports false if it already existed.
	Save(ctx context.Context, userID, topicID uuid.UUID) (bool, error)
	// Unsave removes the relation; it reports false if there was none.
	Unsave(ctx context.Context, userID, topicID uuid.UUID) (bool, error)
}

// Config holds paging limits for saved-topic listings.
type Config struct {
	DefaultPageLimit int
	MaxPageLimit     int
}

// Service manages the per-user saved relation on topics.
type Service struct {
	topics    topicReader
	bookmarks bookmarkRepo
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// NewService creates a new Bookmark service.
func NewService(log *slog.Logger, topics topicReader, bookmarks bookmarkRepo, cfg Config) *Service {
	return &Service{
		topics:    topics,
		bookmarks: bookmarks,
		log:       log.With("service", "bookmark"),
		cfg:       cfg,
		now:       time.Now,
	}
}
