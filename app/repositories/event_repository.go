package repositories

import (
	"context"
	"errors"

	"guestsign/app/models/event"

	"gorm.io/gorm"
)

// EventFilter 发布会列表过滤条件，零值表示不过滤
type EventFilter struct {
	Name   string
	Status *bool
}

// EventRepository 发布会仓库
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建仓库实例
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List 按 id 升序返回满足条件的发布会
func (r *EventRepository) List(ctx context.Context, filter EventFilter) ([]event.Event, error) {
	query := r.db.WithContext(ctx).Model(&event.Event{})
	if filter.Name != "" {
		query = query.Where("name LIKE ? ESCAPE '!'", likePattern(filter.Name))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	events := make([]event.Event, 0)
	err := query.Order("id ASC").Find(&events).Error
	return events, err
}

// SearchByName 名称包含 name 的发布会
func (r *EventRepository) SearchByName(ctx context.Context, name string) ([]event.Event, error) {
	return r.List(ctx, EventFilter{Name: name})
}

// Get 根据 id 获取发布会
func (r *EventRepository) Get(ctx context.Context, id uint64) (*event.Event, error) {
	var e event.Event
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create 创建发布会
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update 更新已存在的发布会，包括布尔字段的 false 值
func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	result := r.db.WithContext(ctx).Model(&event.Event{}).
		Where("id = ?", e.ID).
		Select("name", "status", "limit", "address", "start_time").
		Updates(e)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, e.ID); err != nil {
			return err
		}
	}
	return nil
}
