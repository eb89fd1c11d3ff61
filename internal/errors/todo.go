package errors

import (
	"net/http"
	"strconv"
)

var (
	ErrTaskNotFound = &Exception{Message: "task not found", StatusCode: http.StatusNotFound}

	ErrInvalidJSON     = badRequest("invalid JSON payload")
	ErrInvalidTaskID   = badRequest("task id must be a positive integer")
	ErrTaskRequired    = badRequest("task is required")
	ErrInvalidCategory = badRequest("invalid category value")
	ErrInvalidDueDate  = badRequest("invalid due_date, expected YYYY-MM-DDTHH:MM:SS")
	ErrInvalidField    = badRequest("invalid field value")
)

// InvalidCategory names the rejected category token.
func InvalidCategory(value string) error {
	return ErrInvalidCategory.WithDetail(value)
}

func InvalidDueDate(value string) error {
	return ErrInvalidDueDate.WithDetail(strconv.Quote(value))
}

// InvalidField reports a body field whose JSON value has the wrong type.
func InvalidField(name string) error {
	return ErrInvalidField.WithDetail(name)
}
