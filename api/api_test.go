package api_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"exercise-tracker/api"
	"exercise-tracker/database"
	"exercise-tracker/exercise"
	"exercise-tracker/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC)

func setupAPI(t *testing.T) (*api.API, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	backend := &database.Backend{
		Name:      "postgres",
		Users:     user.NewAccessor(db),
		Exercises: exercise.NewAccessor(db),
	}
	a := api.NewAPI(backend, api.Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		AccessLog: io.Discard,
		Now:       func() time.Time { return fixedNow },
	})
	a.RegisterRoutes()
	return a, dbMock
}
