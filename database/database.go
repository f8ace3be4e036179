package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"exercise-tracker/exercise"
	"exercise-tracker/user"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

//go:embed schema.sql
var schema string

var ErrUnsupportedScheme = errors.New("unsupported database scheme")

// Backend is the open connection to the store and the record accessors bound
// to it. It lives as long as the process serves requests.
type Backend struct {
	Name      string
	Users     user.Store
	Exercises exercise.Store

	close func(ctx context.Context) error
}

func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Connect opens the store named by dsn. The scheme selects MongoDB
// (mongodb, mongodb+srv) or Postgres (postgres, postgresql). mongoDatabase
// is only used for MongoDB.
func Connect(ctx context.Context, dsn, mongoDatabase string) (*Backend, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return connectMongo(ctx, dsn, mongoDatabase)
	case "postgres", "postgresql":
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Set connection pool settings
		db.SetMaxIdleConns(5)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping: %w", err)
		}
		return NewPostgresBackend(ctx, db)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// NewPostgresBackend creates the tables if needed and binds the accessors
// to db. Closing the backend closes db; db is also closed when the schema
// cannot be created.
func NewPostgresBackend(ctx context.Context, db *sql.DB) (*Backend, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Backend{
		Name:      "postgres",
		Users:     user.NewAccessor(db),
		Exercises: exercise.NewAccessor(db),
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}

func connectMongo(ctx context.Context, dsn, name string) (*Backend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := client.Database(name)

	// Log queries filter on userId and date.
	_, err = db.Collection(exercise.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create index: %w", err)
	}

	return NewMongoBackend(db, client.Disconnect), nil
}

// NewMongoBackend binds the accessors to db. disconnect may be nil.
func NewMongoBackend(db *mongo.Database, disconnect func(ctx context.Context) error) *Backend {
	return &Backend{
		Name:      "mongodb",
		Users:     user.NewMongoAccessor(db),
		Exercises: exercise.NewMongoAccessor(db),
		close:     disconnect,
	}
}
