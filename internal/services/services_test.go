package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
	repository "todo-list.com/todo-list/internal/repositories"
)

// brokenStore fails every call the way a lost database connection would.
type brokenStore struct {
	repository.Store
}

var errStoreDown = errors.New("database is unreachable")

func (brokenStore) List(context.Context) ([]model.Task, error) { return nil, errStoreDown }

func (brokenStore) SearchByText(context.Context, string) ([]model.Task, error) {
	return nil, errStoreDown
}

func (brokenStore) Ping(context.Context) error { return errStoreDown }

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(t *testing.T) *TaskService {
	repo := repository.NewTaskRepository(setupTestDB(t), repository.OrderByDueDate)
	return NewTaskService(repo, newTestLogger())
}

func TestTaskService_AddAndFetch(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	task, err := service.CreateTask(ctx, "Buy milk", model.CategoryShopping, &due)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.ID == 0 {
		t.Error("expected task ID to be set")
	}

	fetched, err := service.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if fetched.Task != "Buy milk" || fetched.Category != model.CategoryShopping || fetched.Completed {
		t.Errorf("unexpected task %+v", fetched)
	}
}

func TestTaskService_ConcurrentSubmissions(t *testing.T) {
	service := newTestService(t)

	const concurrentCount = 50
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	errs := make(chan error, concurrentCount)
	ids := make(chan uint, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func(idx int) {
			defer wg.Done()
			task, err := service.CreateTask(context.Background(), fmt.Sprintf("task %d", idx), model.CategoryWork, nil)
			if err != nil {
				errs <- err
				return
			}
			ids <- task.ID
		}(i)
	}

	wg.Wait()
	close(errs)
	close(ids)

	for err := range errs {
		t.Errorf("concurrent creation failed: %v", err)
	}

	seen := make(map[uint]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}

	tasks := service.ListTasks(context.Background())
	if len(tasks) != concurrentCount {
		t.Errorf("expected %d tasks, got %d", concurrentCount, len(tasks))
	}
}

func TestTaskService_ListTasksFailSoft(t *testing.T) {
	service := NewTaskService(brokenStore{}, newTestLogger())

	tasks := service.ListTasks(context.Background())
	if tasks == nil {
		t.Fatal("expected an empty, non-nil listing")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestTaskService_SearchPropagatesErrors(t *testing.T) {
	service := NewTaskService(brokenStore{}, newTestLogger())

	if _, err := service.SearchTasks(context.Background(), "milk"); !errors.Is(err, errStoreDown) {
		t.Errorf("expected store error, got %v", err)
	}
	if err := service.Healthy(context.Background()); err == nil {
		t.Error("expected health check to fail")
	}
}

func TestTaskService_SearchEmptyIsNotNil(t *testing.T) {
	service := newTestService(t)

	tasks, err := service.SearchTasks(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", tasks)
	}
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "Read book", model.CategoryPersonal, nil)

	done := true
	updated, err := service.UpdateTask(ctx, task.ID, model.TaskPatch{Completed: &done})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Completed || updated.Task != "Read book" {
		t.Errorf("unexpected update result %+v", updated)
	}

	if err := service.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := service.DeleteTask(ctx, task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := service.UpdateTask(ctx, task.ID, model.TaskPatch{Completed: &done}); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Categories(t *testing.T) {
	service := NewTaskService(brokenStore{}, newTestLogger())

	got := service.Categories()
	want := []model.Category{"Work", "Personal", "Shopping", "Health", "Other"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
