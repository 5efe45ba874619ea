package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the sortable calendar-date form logs are stored with.
const DateLayout = "2006-01-02"

var dayDurationRegex = regexp.MustCompile(`^(\d+)\s*d$`)

// ParseDuration parses a Go duration string ("1h30m", "300ms") or a whole
// number of days ("30d") into a time.Duration.
// A special value of "0" is allowed and returns 0 duration (disabling the feature).
// Negative durations are rejected.
func ParseDuration(durationStr string) (time.Duration, error) {
	trimmedStr := strings.TrimSpace(durationStr)
	if trimmedStr == "0" {
		return 0, nil
	}

	if matches := dayDurationRegex.FindStringSubmatch(trimmedStr); matches != nil {
		days, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration number: %s", matches[1])
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(trimmedStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration: %s", durationStr)
	}
	return d, nil
}

// ParseDate accepts either a plain calendar date ("2024-01-31") or a full
// RFC 3339 timestamp, which is what the desktop frontend sends.
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if t, err := time.Parse(DateLayout, trimmed); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %q", dateStr)
	}
	return t, nil
}
