package exercise_test

import (
	"testing"
	"time"

	"exercise-tracker/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const exercisesNamespace = "exercise-track.exercises"

func TestMongoAccessor(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	userID := primitive.NewObjectID()
	day := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	mt.Run("insert exercise", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := a.InsertExercise(mt.Context(), exercise.Exercise{
			UserID:      userID.Hex(),
			Description: "run",
			Duration:    30,
			Date:        day,
		})
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(created.ID))
		assert.Equal(mt, userID.Hex(), created.UserID)
		assert.True(mt, day.Equal(created.Date))
	})

	mt.Run("insert exercise - malformed user id", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))

		_, err := a.InsertExercise(mt.Context(), exercise.Exercise{
			UserID:      "nope",
			Description: "run",
			Duration:    30,
			Date:        day,
		})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), `Cast to ObjectId failed for value "nope" at path "userId"`)
	})

	mt.Run("find exercises", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))
		first := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, exercisesNamespace, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "userId", Value: userID},
				{Key: "description", Value: "run"},
				{Key: "duration", Value: 30.0},
				{Key: "date", Value: primitive.NewDateTimeFromTime(day)},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userId", Value: userID},
				{Key: "description", Value: "swim"},
				{Key: "duration", Value: 45.0},
				{Key: "date", Value: primitive.NewDateTimeFromTime(day.Add(24 * time.Hour))},
			},
		))

		from := day
		to := day.Add(24 * time.Hour)
		exercises, err := a.FindExercises(mt.Context(), exercise.Filter{UserID: userID.Hex(), From: &from, To: &to, Limit: 5})
		require.NoError(mt, err)
		require.Len(mt, exercises, 2)
		assert.Equal(mt, first.Hex(), exercises[0].ID)
		assert.Equal(mt, "2023-01-05", exercise.FormatLogDate(exercises[0].Date))
		assert.Equal(mt, "swim", exercises[1].Description)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, exercise.CollectionName, cmd.Lookup("find").StringValue())
		assert.Equal(mt, int64(5), cmd.Lookup("limit").AsInt64())

		filter := cmd.Lookup("filter").Document()
		assert.Equal(mt, userID, filter.Lookup("userId").ObjectID())

		dateRange := filter.Lookup("date").Document()
		elems, err := dateRange.Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 2)
		assert.Equal(mt, "$gte", elems[0].Key())
		assert.True(mt, from.Equal(elems[0].Value().Time()), "lower bound %s", elems[0].Value().Time())
		assert.Equal(mt, "$lte", elems[1].Key())
		assert.True(mt, to.Equal(elems[1].Value().Time()), "upper bound %s", elems[1].Value().Time())
	})

	mt.Run("find exercises - none", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, exercisesNamespace, mtest.FirstBatch))

		exercises, err := a.FindExercises(mt.Context(), exercise.Filter{UserID: userID.Hex()})
		require.NoError(mt, err)
		assert.NotNil(mt, exercises)
		assert.Empty(mt, exercises)

		// Unbounded and unlimited: only the owner is filtered on.
		cmd := mt.GetStartedEvent().Command
		_, err = cmd.LookupErr("limit")
		assert.Error(mt, err)

		filter := cmd.Lookup("filter").Document()
		assert.Equal(mt, userID, filter.Lookup("userId").ObjectID())
		_, err = filter.LookupErr("date")
		assert.Error(mt, err)
	})

	mt.Run("find exercises - upper bound only", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, exercisesNamespace, mtest.FirstBatch))

		to := day
		_, err := a.FindExercises(mt.Context(), exercise.Filter{UserID: userID.Hex(), To: &to})
		require.NoError(mt, err)

		dateRange := mt.GetStartedEvent().Command.Lookup("filter", "date").Document()
		_, err = dateRange.LookupErr("$gte")
		assert.Error(mt, err)
		assert.True(mt, to.Equal(dateRange.Lookup("$lte").Time()))
	})

	mt.Run("find exercises - command error", func(mt *mtest.T) {
		a := exercise.NewMongoAccessor(mt.Client.Database("exercise-track"))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := a.FindExercises(mt.Context(), exercise.Filter{UserID: userID.Hex()})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "find")
	})
}
