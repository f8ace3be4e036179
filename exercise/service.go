package exercise

import (
	"context"
	"fmt"
	"time"

	"exercise-tracker/apperr"
)

// Service records exercises and answers log queries for existing users.
type Service struct {
	store        Store
	userAccessor UserAccessor
}

func NewService(store Store, userAccessor UserAccessor) *Service {
	return &Service{
		store:        store,
		userAccessor: userAccessor,
	}
}

func (s *Service) AddExercise(ctx context.Context, in Input, now time.Time) (*Added, error) {
	u, err := s.userAccessor.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperr.BadRequest("bad request")
	}

	exercise, err := in.build(now)
	if err != nil {
		return nil, err
	}

	created, err := s.store.InsertExercise(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &Added{
		ID:          u.ID,
		Username:    u.Name,
		Description: created.Description,
		Duration:    created.Duration,
		Date:        FormatFullDate(created.Date),
	}, nil
}

// GetLog returns the user's exercises within [From, To], at most Limit of
// them. A bound that cannot be parsed matches nothing.
func (s *Service) GetLog(ctx context.Context, q LogQuery) (*Log, error) {
	u, err := s.userAccessor.GetUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperr.BadRequest("bad request")
	}

	log := &Log{
		ID:       u.ID,
		Username: u.Name,
		Log:      []LogEntry{},
	}

	filter := Filter{UserID: u.ID, Limit: ParseLimit(q.Limit)}
	if q.From != "" {
		from, err := ParseDate(q.From)
		if err != nil {
			return log, nil
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := ParseDate(q.To)
		if err != nil {
			return log, nil
		}
		filter.To = &to
	}

	exercises, err := s.store.FindExercises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	for _, e := range exercises {
		log.Log = append(log.Log, LogEntry{
			ID:          e.ID,
			UserID:      e.UserID,
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatLogDate(e.Date),
		})
	}
	log.Count = len(log.Log)

	return log, nil
}
