package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func (a *Accessor) InsertUser(ctx context.Context, user User) (User, error) {
	if err := user.Validate(); err != nil {
		return User{}, err
	}

	id := uuid.New()

	query := `INSERT INTO users (id, name) VALUES ($1, $2)`
	if _, err := a.db.ExecContext(ctx, query, id, user.Name); err != nil {
		return User{}, fmt.Errorf("exec context: %w", err)
	}

	return User{
		ID:   id.String(),
		Name: user.Name,
	}, nil
}

func (a *Accessor) GetUsers(ctx context.Context) ([]User, error) {
	users := []User{}

	query := `SELECT id, name FROM users ORDER BY seq`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return users, nil
}

func (a *Accessor) GetUser(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		// Not an identifier this store could have assigned.
		return nil, nil
	}

	var user User

	query := `SELECT id, name FROM users WHERE id = $1`
	row := a.db.QueryRowContext(ctx, query, parsedID)
	if err := row.Scan(&user.ID, &user.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &user, nil
}
