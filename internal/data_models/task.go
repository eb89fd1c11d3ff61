package dto

import (
	model "todo-list.com/todo-list/internal/models"
)

type CreateTaskRequest struct {
	Task     string  `json:"task"`
	Category *string `json:"category"`
	DueDate  *string `json:"due_date"`
}

type TaskResponse struct {
	ID        uint    `json:"id"`
	Task      string  `json:"task"`
	Completed bool    `json:"completed"`
	Category  string  `json:"category"`
	DueDate   *string `json:"due_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Task:      t.Task,
		Completed: t.Completed,
		Category:  t.Category.String(),
		DueDate:   FormatDueDate(t.DueDate),
	}
}

// NewTaskResponses never returns nil so empty results encode as [].
func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
