package dto

import (
	"strings"
	"time"

	apperrors "todo-list.com/todo-list/internal/errors"
)

// DueDateLayout is the ISO-8601 form used on the wire.
const DueDateLayout = "2006-01-02T15:04:05"

var dueDateInputLayouts = []string{
	DueDateLayout,
	"2006-01-02T15:04",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate accepts the wire layout plus the shapes browsers and clients
// commonly send. Values without an offset are taken as UTC.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dueDateInputLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, apperrors.InvalidDueDate(value)
}

func FormatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DueDateLayout)
	return &s
}
