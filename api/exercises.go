package api

import (
	"net/http"
	"time"

	"exercise-tracker/exercise"
)

func (a *API) addExercise(w http.ResponseWriter, r *http.Request, b body) {
	in := exercise.Input{
		UserID:      b.String("userId"),
		Description: b.String("description"),
		Duration:    b["duration"],
	}
	if truthy(b["date"]) {
		in.Date = b.String("date")
		// A JSON number is a Unix timestamp in milliseconds.
		if ms, ok := b["date"].(float64); ok {
			in.Date = time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339Nano)
		}
	}

	added, err := a.exercises.AddExercise(r.Context(), in, a.now())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Response(w, http.StatusOK, added)
}

func (a *API) getLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	log, err := a.exercises.GetLog(r.Context(), exercise.LogQuery{
		UserID: query.Get("userId"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.Response(w, http.StatusOK, log)
}
