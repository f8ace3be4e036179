package exercise

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"exercise-tracker/apperr"
)

type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    float64
	Date        time.Time
}

func (e *Exercise) Validate() error {
	var fields []apperr.FieldError
	if e.UserID == "" {
		fields = append(fields, apperr.Required("userId"))
	}
	if e.Description == "" {
		fields = append(fields, apperr.Required("description"))
	}
	if e.Date.IsZero() {
		fields = append(fields, apperr.Required("date"))
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// Input is an exercise as submitted by a client, before casting. Duration
// holds the decoded body value as-is (a JSON number, a string, ...).
type Input struct {
	UserID      string
	Description string
	Duration    any
	Date        string
}

// build casts the input into an Exercise. An empty Date means now.
func (in Input) build(now time.Time) (Exercise, error) {
	var fields []apperr.FieldError

	ex := Exercise{
		UserID:      in.UserID,
		Description: in.Description,
		Date:        now.UTC(),
	}
	if ex.UserID == "" {
		fields = append(fields, apperr.Required("userId"))
	}
	if ex.Description == "" {
		fields = append(fields, apperr.Required("description"))
	}

	duration, present, ok := castNumber(in.Duration)
	switch {
	case !present:
		fields = append(fields, apperr.Required("duration"))
	case !ok:
		fields = append(fields, apperr.Cast("Number", stringify(in.Duration), "duration"))
	default:
		ex.Duration = duration
	}

	if in.Date != "" {
		date, err := ParseDate(in.Date)
		if err != nil {
			fields = append(fields, apperr.Cast("date", in.Date, "date"))
		} else {
			ex.Date = date
		}
	}

	if len(fields) > 0 {
		return Exercise{}, apperr.Validation(fields...)
	}
	return ex, nil
}

// castNumber converts a decoded body value to a number. present is false for
// values that count as missing.
func castNumber(v any) (n float64, present bool, ok bool) {
	switch val := v.(type) {
	case nil:
		return 0, false, false
	case float64:
		return val, true, true
	case int:
		return float64(val), true, true
	case bool:
		if val {
			return 1, true, true
		}
		return 0, true, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, true, false
		}
		return f, true, true
	default:
		return 0, true, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Filter selects a user's exercises. Nil bounds are unbounded; both bounds
// are inclusive. A zero Limit means no limit.
type Filter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int64
}

// LogQuery is the raw query of a log request.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

type LogEntry struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"userId"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

type Log struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// Added is the response to a successfully recorded exercise. ID is the
// owning user's id.
type Added struct {
	ID          string  `json:"_id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}
