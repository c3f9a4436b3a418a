package topic

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	// GetForUpdate reads the topic and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	// Update writes topic only if the stored updated_at still equals
	// expectedUpdatedAt; otherwise it returns domain.ErrConflict.
	Update(ctx context.Context, topic *domain.Topic, expectedUpdatedAt time.Time) (*domain.Topic, error)
	Delete(ctx context.Context, topicID uuid.UUID) error
}

type departmentDirectory interface {
	Exists(ctx context.Context, departmentID uuid.UUID) (bool, error)
}

type bookmarkReader interface {
	SavedTopicIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsSaved(ctx context.Context, userID, topicID uuid.UUID) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the tunables of the topic service.
type Config struct {
	DefaultPageLimit int
	MaxPageLimit     int
	UpdateRetryDelay time.Duration
}

// Service provides topic management and query operations.
type Service struct {
	topics    topicRepo
	depts     departmentDirectory
	bookmarks bookmarkReader
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	depts departmentDirectory,
	bookmarks bookmarkReader,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		topics:    topics,
		depts:     depts,
		bookmarks: bookmarks,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "topic"),
		cfg:       cfg,
		now:       time.Now,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
