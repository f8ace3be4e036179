package exercise

import (
	"context"
	"fmt"

	"exercise-tracker/apperr"

	"github.com/google/uuid"
)

func (a *Accessor) InsertExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	if err := exercise.Validate(); err != nil {
		return Exercise{}, err
	}

	userID, err := uuid.Parse(exercise.UserID)
	if err != nil {
		return Exercise{}, apperr.Validation(apperr.Cast("UUID", exercise.UserID, "userId"))
	}

	id := uuid.New()
	date := exercise.Date.UTC()

	query := `INSERT INTO exercises (id, user_id, description, duration, date) VALUES ($1, $2, $3, $4, $5)`
	if _, err := a.db.ExecContext(ctx, query, id, userID, exercise.Description, exercise.Duration, date); err != nil {
		return Exercise{}, fmt.Errorf("exec context: %w", err)
	}

	return Exercise{
		ID:          id.String(),
		UserID:      userID.String(),
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        date,
	}, nil
}

func (a *Accessor) FindExercises(ctx context.Context, filter Filter) ([]Exercise, error) {
	userID, err := uuid.Parse(filter.UserID)
	if err != nil {
		return []Exercise{}, nil
	}

	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = $1`
	args := []any{userID}
	if filter.From != nil {
		args = append(args, filter.From.UTC())
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, filter.To.UTC())
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY seq"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.Date = e.Date.UTC()
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exercises, nil
}
