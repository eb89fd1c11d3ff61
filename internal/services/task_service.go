package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	model "todo-list.com/todo-list/internal/models"
	repository "todo-list.com/todo-list/internal/repositories"
)

// TaskService is the store handle the HTTP layer is given. It owns no state of
// its own beyond the injected store and logger.
type TaskService struct {
	repo   repository.Store
	logger log.FieldLogger
}

func NewTaskService(repo repository.Store, logger log.FieldLogger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger,
	}
}

// ListTasks never fails: a storage fault is logged and an empty listing is
// returned so the listing view keeps rendering.
func (s *TaskService) ListTasks(ctx context.Context) []model.Task {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("error fetching todos, returning empty list")
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	s.logger.WithField("count", len(tasks)).Debug("fetched todos")
	return tasks
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, text string, category model.Category, dueDate *time.Time) (*model.Task, error) {
	task, err := s.repo.Insert(ctx, text, category, dueDate)
	if err != nil {
		s.logger.WithError(err).WithField("category", category).Error("error adding todo")
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"id":       task.ID,
		"category": task.Category,
	}).Info("new todo added")
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		s.logger.WithError(err).WithField("id", id).Error("error updating todo")
		return nil, err
	}

	s.logger.WithFields(log.Fields{
		"id":        task.ID,
		"completed": task.Completed,
		"category":  task.Category,
	}).Info("todo updated")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("error deleting todo")
		return err
	}

	s.logger.WithField("id", id).Info("todo deleted")
	return nil
}

func (s *TaskService) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	tasks, err := s.repo.SearchByText(ctx, query)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("error searching todos")
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Categories() []model.Category {
	return model.Categories()
}

func (s *TaskService) Healthy(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
