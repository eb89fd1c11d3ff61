package validators

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"

	dto "todo-list.com/todo-list/internal/data_models"
	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
)

// ParseUpdateTaskRequest turns a raw JSON object into a TaskPatch. Only keys
// present in the body end up in the patch; unknown keys are ignored.
func ParseUpdateTaskRequest(body map[string]json.RawMessage) (model.TaskPatch, error) {
	var patch model.TaskPatch

	if raw, ok := body["task"]; ok {
		var text string
		if isNull(raw) {
			return patch, apperrors.ErrTaskRequired
		}
		if err := sonic.Unmarshal(raw, &text); err != nil {
			return patch, apperrors.InvalidField("task")
		}
		if strings.TrimSpace(text) == "" {
			return patch, apperrors.ErrTaskRequired
		}
		patch.Task = &text
	}

	if raw, ok := body["completed"]; ok {
		var completed bool
		if isNull(raw) {
			return patch, apperrors.InvalidField("completed")
		}
		if err := sonic.Unmarshal(raw, &completed); err != nil {
			return patch, apperrors.InvalidField("completed")
		}
		patch.Completed = &completed
	}

	if raw, ok := body["category"]; ok {
		var token string
		if isNull(raw) {
			return patch, apperrors.InvalidField("category")
		}
		if err := sonic.Unmarshal(raw, &token); err != nil {
			return patch, apperrors.InvalidField("category")
		}
		category, err := model.ParseCategory(token)
		if err != nil {
			return patch, err
		}
		patch.Category = &category
	}

	if raw, ok := body["due_date"]; ok {
		patch.DueDateSet = true
		if !isNull(raw) {
			var value string
			if err := sonic.Unmarshal(raw, &value); err != nil {
				return patch, apperrors.InvalidField("due_date")
			}
			if strings.TrimSpace(value) != "" {
				due, err := dto.ParseDueDate(value)
				if err != nil {
					return patch, err
				}
				patch.DueDate = &due
			}
		}
	}

	return patch, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
