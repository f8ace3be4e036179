package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "users"

type document struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

func (d document) user() User {
	return User{ID: d.ID.Hex(), Name: d.Name}
}

// MongoAccessor is the MongoDB implementation of Store.
type MongoAccessor struct {
	coll *mongo.Collection
}

func NewMongoAccessor(db *mongo.Database) *MongoAccessor {
	return &MongoAccessor{coll: db.Collection(CollectionName)}
}

func (a *MongoAccessor) InsertUser(ctx context.Context, user User) (User, error) {
	if err := user.Validate(); err != nil {
		return User{}, err
	}

	doc := document{ID: primitive.NewObjectID(), Name: user.Name}
	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		return User{}, fmt.Errorf("insert one: %w", err)
	}

	return doc.user(), nil
}

func (a *MongoAccessor) GetUsers(ctx context.Context) ([]User, error) {
	cursor, err := a.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor all: %w", err)
	}

	users := make([]User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.user())
	}
	return users, nil
}

func (a *MongoAccessor) GetUser(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc document
	if err := a.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one: %w", err)
	}

	u := doc.user()
	return &u, nil
}
