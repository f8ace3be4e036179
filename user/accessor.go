package user

import (
	"context"
	"database/sql"
)

// Store persists users. GetUser returns nil without an error when no user
// has the given id.
type Store interface {
	InsertUser(ctx context.Context, user User) (User, error)
	GetUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

// Accessor is the Postgres implementation of Store.
type Accessor struct {
	db *sql.DB
}

func NewAccessor(db *sql.DB) *Accessor {
	return &Accessor{db: db}
}
