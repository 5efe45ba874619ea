// filepath: internal/services/validation.go
package services

import (
	"fmt"
	"gamelog/internal/models"
	"gamelog/internal/shared"
	"sort"
	"strings"
	"time"
)

// MaxRating is the highest rating a log may carry.
const MaxRating = 10

// ValidationError lists every field of a request that failed validation.
// It matches shared.ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", shared.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return shared.ErrValidation
}

type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// MinutesFromDuration converts an hours and minutes pair into total minutes.
func MinutesFromDuration(hours, minutes int) (int, error) {
	errs := fieldErrors{}
	if hours < 0 || minutes < 0 {
		errs["time_played"] = "time played cannot be negative"
	} else if minutes > 59 {
		errs["time_played"] = "minutes cannot be greater than 59"
	}
	if err := errs.err(); err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// normalizeDate parses value and returns it in the stored YYYY-MM-DD form.
func normalizeDate(value string, now time.Time, errs fieldErrors, field string) string {
	date, err := shared.ParseDate(value)
	if err != nil {
		errs[field] = "date must be YYYY-MM-DD or RFC 3339"
		return value
	}
	// Compared as calendar days so that "today" is accepted in every time zone.
	normalized := date.Format(shared.DateLayout)
	if normalized > now.Format(shared.DateLayout) {
		errs[field] = "date cannot be in the future"
	}
	return normalized
}

func validateLogFields(errs fieldErrors, rating, minutes int, status string) {
	if rating < 0 || rating > MaxRating {
		errs["rating"] = fmt.Sprintf("rating must be between 0 and %d", MaxRating)
	}
	if minutes < 0 {
		errs["minutes_played"] = "minutes played cannot be negative"
	}
	if status == "" {
		errs["status"] = "status cannot be empty"
	} else if !models.IsValidStatus(status) {
		errs["status"] = fmt.Sprintf("status must be one of %s", strings.Join(models.Statuses, ", "))
	}
}

// ValidateLogInput checks a create request and returns it with its date normalized.
func ValidateLogInput(input models.LogEntryInput, now time.Time) (models.LogEntryInput, error) {
	errs := fieldErrors{}
	if input.Game.ID <= 0 {
		errs["game.id"] = "game id must be positive"
	}
	if strings.TrimSpace(input.Game.Title) == "" {
		errs["game.title"] = "title cannot be empty"
	}
	input.Date = normalizeDate(input.Date, now, errs, "date")
	validateLogFields(errs, input.Rating, input.MinutesPlayed, input.Status)
	return input, errs.err()
}

// ValidateLogUpdate checks an update request and returns it with its date normalized.
func ValidateLogUpdate(update models.LogEntryUpdate, now time.Time) (models.LogEntryUpdate, error) {
	errs := fieldErrors{}
	if update.ID <= 0 {
		errs["id"] = "log id must be positive"
	}
	update.Date = normalizeDate(update.Date, now, errs, "date")
	validateLogFields(errs, update.Rating, update.MinutesPlayed, update.Status)
	return update, errs.err()
}

// ValidateExecutableDetails checks a new executable mapping.
func ValidateExecutableDetails(details models.ExecutableDetails) error {
	errs := fieldErrors{}
	if strings.TrimSpace(details.Name) == "" {
		errs["name"] = "executable name cannot be empty"
	}
	if details.GameID <= 0 {
		errs["game_id"] = "game id must be positive"
	}
	return errs.err()
}

// ValidateDateRange parses both bounds of a statistics range into the stored form.
func ValidateDateRange(start, end string) (string, string, error) {
	errs := fieldErrors{}
	from, err := shared.ParseDate(start)
	if err != nil {
		errs["from"] = "date must be YYYY-MM-DD or RFC 3339"
	}
	to, err := shared.ParseDate(end)
	if err != nil {
		errs["to"] = "date must be YYYY-MM-DD or RFC 3339"
	}
	if len(errs) == 0 && to.Before(from) {
		errs["to"] = "end date is before start date"
	}
	if err := errs.err(); err != nil {
		return "", "", err
	}
	return from.Format(shared.DateLayout), to.Format(shared.DateLayout), nil
}
