package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
)

// Store is the record store contract shared by the gorm repository and the
// caching decorator.
type Store interface {
	List(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	Insert(ctx context.Context, text string, category model.Category, dueDate *time.Time) (*model.Task, error)
	UpdateByID(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error)
	DeleteByID(ctx context.Context, id uint) error
	SearchByText(ctx context.Context, query string) ([]model.Task, error)
	Ping(ctx context.Context) error
}

type ListOrder string

const (
	OrderByDueDate ListOrder = "due_date"
	OrderByID      ListOrder = "id"
)

func ParseListOrder(s string) (ListOrder, error) {
	switch ListOrder(strings.ToLower(strings.TrimSpace(s))) {
	case OrderByDueDate, "":
		return OrderByDueDate, nil
	case OrderByID:
		return OrderByID, nil
	}
	return "", fmt.Errorf("unknown list order %q", s)
}

type TaskRepository struct {
	db    *gorm.DB
	order ListOrder
}

var _ Store = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB, order ListOrder) *TaskRepository {
	if order == "" {
		order = OrderByDueDate
	}
	return &TaskRepository{db: db, order: order}
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	query := r.db.WithContext(ctx)
	switch r.order {
	case OrderByID:
		query = query.Order("id ASC")
	default:
		query = query.Order("due_date IS NULL").Order("due_date ASC").Order("id ASC")
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

func (r *TaskRepository) Insert(ctx context.Context, text string, category model.Category, dueDate *time.Time) (*model.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrTaskRequired
	}
	if category == "" {
		category = model.CategoryOther
	}
	if !category.Valid() {
		return nil, apperrors.InvalidCategory(category.String())
	}

	task := &model.Task{
		Task:     text,
		Category: category,
		DueDate:  dueDate,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) UpdateByID(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	if patch.Task != nil && strings.TrimSpace(*patch.Task) == "" {
		return nil, apperrors.ErrTaskRequired
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, apperrors.InvalidCategory(patch.Category.String())
	}

	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		if patch.IsEmpty() {
			return nil
		}

		res := tx.Model(&model.Task{}).Where("id = ?", id).Updates(patch.Columns())
		if res.Error != nil {
			return res.Error
		}

		patch.Apply(&task)
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}

	return &task, nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// SearchByText matches query as a case-insensitive substring of the task text
// or the category name, ordered by id.
func (r *TaskRepository) SearchByText(ctx context.Context, query string) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if r.db.Dialector.Name() == "postgres" {
		pattern := "%" + escapeLike(query) + "%"
		q = q.Where("task ILIKE ? ESCAPE '\\' OR category ILIKE ? ESCAPE '\\'", pattern, pattern)
	}

	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}

	// SQLite's LOWER and LIKE fold ASCII only, so the final match is always
	// decided here with Unicode folding.
	needle := strings.ToLower(query)
	matched := tasks[:0]
	for _, t := range tasks {
		if containsFold(t.Task, needle) || containsFold(t.Category.String(), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
