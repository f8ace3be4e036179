package exercise

import (
	"context"
	"database/sql"

	"exercise-tracker/user"
)

// Store persists exercises.
type Store interface {
	InsertExercise(ctx context.Context, exercise Exercise) (Exercise, error)
	FindExercises(ctx context.Context, filter Filter) ([]Exercise, error)
}

type UserAccessor interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
}

// Accessor is the Postgres implementation of Store.
type Accessor struct {
	db *sql.DB
}

func NewAccessor(db *sql.DB) *Accessor {
	return &Accessor{db: db}
}
