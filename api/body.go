package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"

	"exercise-tracker/apperr"
)

// body is a decoded request body. JSON bodies keep their value types; form
// bodies hold strings.
type body map[string]any

// maxBodyBytes caps JSON and form bodies.
const maxBodyBytes = 100 << 10

type bodyHandler func(w http.ResponseWriter, r *http.Request, b body)

func (a *API) withBody(next bodyHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		b, err := decodeBody(r)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		next(w, r, b)
	}
}

// validateNewExercise rejects bodies without a truthy userId, description
// and duration.
func (a *API) validateNewExercise(next bodyHandler) bodyHandler {
	return func(w http.ResponseWriter, r *http.Request, b body) {
		for _, field := range []string{"userId", "description", "duration"} {
			if !truthy(b[field]) {
				a.writeError(w, r, apperr.BadRequest("bad request"))
				return
			}
		}
		next(w, r, b)
	}
}

func decodeBody(r *http.Request) (body, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		b := body{}
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			if errors.Is(err, io.EOF) {
				return body{}, nil
			}
			return nil, decodeError(err)
		}
		return b, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, decodeError(err)
	}
	b := body{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			b[key] = values[0]
		}
	}
	return b, nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.TooLarge("request entity too large")
	}
	return apperr.BadRequest("bad request")
}

// truthy reports whether v would pass a boolean test: missing, null, false,
// zero, NaN and the empty string do not.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0 && !math.IsNaN(val)
	case string:
		return val != ""
	default:
		return true
	}
}

func (b body) String(key string) string {
	switch val := b[key].(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
