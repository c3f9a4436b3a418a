package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the calling identity in the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the calling identity from the context.
// Returns false if the value is missing, has a nil user ID, or an unknown role.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || a.UserID == uuid.Nil || !a.Role.IsValid() {
		return domain.Actor{}, false
	}
	return a, true
}

// UserIDFromCtx extracts the calling user's ID from the context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	a, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return a.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
