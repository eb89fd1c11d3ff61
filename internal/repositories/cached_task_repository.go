package repository

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	log "github.com/sirupsen/logrus"

	model "todo-list.com/todo-list/internal/models"
)

// CachedTaskRepository keeps the ordered listing in redis. Writes evict the
// cached listing; redis faults fall through to the wrapped store.
type CachedTaskRepository struct {
	Store
	redis  rueidis.Client
	key    string
	ttl    time.Duration
	logger log.FieldLogger
}

var _ Store = (*CachedTaskRepository)(nil)

func NewCachedTaskRepository(base Store, client rueidis.Client, prefix string, ttl time.Duration, logger log.FieldLogger) *CachedTaskRepository {
	if base == nil {
		panic("repository.NewCachedTaskRepository: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	if prefix == "" {
		prefix = "todos"
	}

	return &CachedTaskRepository{
		Store:  base,
		redis:  client,
		key:    prefix + ":list",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	if tasks, ok := c.loadList(ctx); ok {
		return tasks, nil
	}

	tasks, err := c.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	c.storeList(ctx, tasks)
	return tasks, nil
}

func (c *CachedTaskRepository) Insert(ctx context.Context, text string, category model.Category, dueDate *time.Time) (*model.Task, error) {
	task, err := c.Store.Insert(ctx, text, category, dueDate)
	if err != nil {
		return nil, err
	}
	c.evict(ctx)
	return task, nil
}

func (c *CachedTaskRepository) UpdateByID(ctx context.Context, id uint, patch model.TaskPatch) (*model.Task, error) {
	task, err := c.Store.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.evict(ctx)
	return task, nil
}

func (c *CachedTaskRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.Store.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.evict(ctx)
	return nil
}

func (c *CachedTaskRepository) loadList(ctx context.Context) ([]model.Task, bool) {
	raw, err := c.redis.Do(ctx, c.redis.B().Get().Key(c.key).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			c.logger.WithError(err).Warn("cache: read task list failed")
		}
		return nil, false
	}

	var tasks []model.Task
	if err := sonic.Unmarshal(raw, &tasks); err != nil {
		c.logger.WithError(err).Warn("cache: decode task list failed")
		return nil, false
	}
	return tasks, true
}

func (c *CachedTaskRepository) storeList(ctx context.Context, tasks []model.Task) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := sonic.Marshal(tasks)
	if err != nil {
		c.logger.WithError(err).Warn("cache: encode task list failed")
		return
	}

	value := c.redis.B().Set().Key(c.key).Value(rueidis.BinaryString(payload))
	var cmd rueidis.Completed
	if c.ttl >= time.Second {
		cmd = value.ExSeconds(int64(c.ttl / time.Second)).Build()
	} else {
		cmd = value.Build()
	}

	if err := c.redis.Do(ctx, cmd).Error(); err != nil {
		c.logger.WithError(err).Warn("cache: write task list failed")
	}
}

func (c *CachedTaskRepository) evict(ctx context.Context) {
	if err := c.redis.Do(ctx, c.redis.B().Del().Key(c.key).Build()).Error(); err != nil {
		c.logger.WithError(err).Warn("cache: evict task list failed")
	}
}
