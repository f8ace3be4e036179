package exercise

import (
	"context"
	"fmt"
	"time"

	"exercise-tracker/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "exercises"

type document struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d document) exercise() Exercise {
	return Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}

// MongoAccessor is the MongoDB implementation of Store.
type MongoAccessor struct {
	coll *mongo.Collection
}

func NewMongoAccessor(db *mongo.Database) *MongoAccessor {
	return &MongoAccessor{coll: db.Collection(CollectionName)}
}

func (a *MongoAccessor) InsertExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	if err := exercise.Validate(); err != nil {
		return Exercise{}, err
	}

	userID, err := primitive.ObjectIDFromHex(exercise.UserID)
	if err != nil {
		return Exercise{}, apperr.Validation(apperr.Cast("ObjectId", exercise.UserID, "userId"))
	}

	doc := document{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		// Stored with millisecond precision.
		Date: exercise.Date.UTC().Truncate(time.Millisecond),
	}
	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		return Exercise{}, fmt.Errorf("insert one: %w", err)
	}

	return doc.exercise(), nil
}

func (a *MongoAccessor) FindExercises(ctx context.Context, filter Filter) ([]Exercise, error) {
	userID, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return []Exercise{}, nil
	}

	query := bson.D{{Key: "userId", Value: userID}}
	var dateRange bson.D
	if filter.From != nil {
		dateRange = append(dateRange, bson.E{Key: "$gte", Value: filter.From.UTC()})
	}
	if filter.To != nil {
		dateRange = append(dateRange, bson.E{Key: "$lte", Value: filter.To.UTC()})
	}
	if len(dateRange) > 0 {
		query = append(query, bson.E{Key: "date", Value: dateRange})
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := a.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor all: %w", err)
	}

	exercises := make([]Exercise, 0, len(docs))
	for _, doc := range docs {
		exercises = append(exercises, doc.exercise())
	}
	return exercises, nil
}
