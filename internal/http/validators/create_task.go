package validators

import (
	"strings"
	"time"

	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
)

// ValidateCreateTaskRequest checks the create payload and resolves the
// optional category and due date. A missing or blank category means Other.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (model.Category, *time.Time, error) {
	if strings.TrimSpace(r.Task) == "" {
		return "", nil, apperrors.ErrTaskRequired
	}

	category := model.CategoryOther
	if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
		parsed, err := model.ParseCategory(*r.Category)
		if err != nil {
			return "", nil, err
		}
		category = parsed
	}

	var dueDate *time.Time
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		parsed, err := dto.ParseDueDate(*r.DueDate)
		if err != nil {
			return "", nil, err
		}
		dueDate = &parsed
	}

	return category, dueDate, nil
}
