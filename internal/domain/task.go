package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-date format used throughout the log.
const DateLayout = "2006-01-02"

// Record is one logged unit of work. Records are immutable once created;
// the store never updates or deletes them.
type Record struct {
	Timestamp time.Time
	Date      string  `validate:"required,datetime=2006-01-02"`
	Task      string  `validate:"required"`
	Hours     float64 `validate:"gte=0"`
}

var validate = validator.New()

// NewRecord builds a validated record stamped with the current time.
// An empty date defaults to today.
func NewRecord(task, date string, hours float64) (Record, error) {
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	rec := Record{
		Timestamp: time.Now(),
		Date:      date,
		Task:      strings.TrimSpace(task),
		Hours:     hours,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the record's field invariants.
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("invalid record: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Date":
		return fmt.Errorf("invalid date %q: must use YYYY-MM-DD format", r.Date)
	case "Task":
		return fmt.Errorf("task description must not be empty")
	case "Hours":
		return fmt.Errorf("hours must be a non-negative number, got %v", r.Hours)
	default:
		return fmt.Errorf("invalid record: %w", err)
	}
}

// FormatHours renders an hours value without trailing zeros, so 2.5
// round-trips as "2.5" and 0 as "0".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
