package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrTaskNotFound, http.StatusNotFound},
		{fmt.Errorf("update task 3: %w", ErrTaskNotFound), http.StatusNotFound},
		{InvalidCategory("Urgent"), http.StatusBadRequest},
		{InvalidDueDate("soon"), http.StatusBadRequest},
		{fmt.Errorf("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := StatusCode(tc.err); got != tc.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestInvalidCategoryMessage(t *testing.T) {
	if got := InvalidCategory("Urgent").Error(); got != "invalid category value: Urgent" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestWithDetail(t *testing.T) {
	err := ErrInvalidField.WithDetail("completed")

	if !errors.Is(err, ErrInvalidField) {
		t.Fatal("expected detailed error to match its exception")
	}
	if errors.Is(err, ErrInvalidCategory) {
		t.Error("expected detailed error not to match another exception")
	}
	if got := err.Error(); got != "invalid field value: completed" {
		t.Errorf("unexpected message %q", got)
	}
	if got := StatusCode(fmt.Errorf("update task 4: %w", err)); got != http.StatusBadRequest {
		t.Errorf("expected 400 through wrapping, got %d", got)
	}
	if got := InvalidDueDate("soon").Error(); got != `invalid due_date, expected YYYY-MM-DDTHH:MM:SS: "soon"` {
		t.Errorf("unexpected due date message %q", got)
	}
}
