package domain

import (
	"context"
	"time"
)

type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// EntityChange is emitted after every successful mutation.
type EntityChange struct {
	Entity     string       `json:"entity"`
	Action     ChangeAction `json:"action"`
	ID         string       `json:"id"`
	Actor      string       `json:"actor,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, change EntityChange) error
	Close() error
}

type actorKey struct{}

// WithActor stores the email of the signed-in account on ctx.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, email)
}

func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
