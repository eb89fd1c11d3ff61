package validators

import (
	"strconv"

	apperrors "todo-list.com/todo-list/internal/errors"
)

func ParseTaskID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}
