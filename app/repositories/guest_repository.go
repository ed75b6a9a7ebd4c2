package repositories

import (
	"context"
	"errors"

	"guestsign/app/models/guest"
	"guestsign/pkg/database"
	"guestsign/pkg/paginator"

	"gorm.io/gorm"
)

// GuestPerPage 嘉宾列表每页条数
const GuestPerPage = 2

// GuestFilter 嘉宾列表过滤条件，零值表示不过滤
type GuestFilter struct {
	Realname string
	Phone    string
	Sign     *bool
}

// GuestRepository 嘉宾仓库
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository 创建仓库实例
func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// Paginate 按 id 升序分页，rawPage 为请求中未解析的 page 参数
func (r *GuestRepository) Paginate(ctx context.Context, filter GuestFilter, rawPage string) (*paginator.Page[guest.Guest], error) {
	query := r.db.Model(&guest.Guest{})
	if filter.Realname != "" {
		query = query.Where("realname LIKE ? ESCAPE '!'", likePattern(filter.Realname))
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ? ESCAPE '!'", likePattern(filter.Phone))
	}
	if filter.Sign != nil {
		query = query.Where("sign = ?", *filter.Sign)
	}

	return paginator.Paginate[guest.Guest](ctx, query, "id ASC", GuestPerPage, rawPage, "Event")
}

// ExistsByPhone 任意发布会下是否存在该手机号
func (r *GuestRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&guest.Guest{}).
		Where("phone = ?", phone).
		Count(&count).Error
	return count > 0, err
}

// ExistsInEvent 指定发布会下是否存在该手机号
func (r *GuestRepository) ExistsInEvent(ctx context.Context, eventID uint64, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&guest.Guest{}).
		Where("event_id = ? AND phone = ?", eventID, phone).
		Count(&count).Error
	return count > 0, err
}

// GetInEvent 获取发布会下唯一的嘉宾。唯一索引缺失的旧库中可能存在重复记录，
// 此时返回 ErrDuplicateGuest
func (r *GuestRepository) GetInEvent(ctx context.Context, eventID uint64, phone string) (*guest.Guest, error) {
	guests := make([]guest.Guest, 0, 2)
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND phone = ?", eventID, phone).
		Order("id ASC").
		Limit(2).
		Find(&guests).Error
	if err != nil {
		return nil, err
	}

	switch len(guests) {
	case 0:
		return nil, ErrGuestNotFound
	case 1:
		return &guests[0], nil
	default:
		return nil, ErrDuplicateGuest
	}
}

// MarkSigned 将未签到的嘉宾置为已签到，返回本次是否发生了变更。
// 条件更新保证并发提交时只有一次成功
func (r *GuestRepository) MarkSigned(ctx context.Context, id uint64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&guest.Guest{}).
		Where("id = ? AND sign = ?", id, false).
		Update("sign", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Get 根据 id 获取嘉宾
func (r *GuestRepository) Get(ctx context.Context, id uint64) (*guest.Guest, error) {
	var g guest.Guest
	err := r.db.WithContext(ctx).Preload("Event").First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create 创建嘉宾，同一发布会下手机号重复时返回 ErrDuplicateGuest
func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	err := r.db.WithContext(ctx).Omit("Event").Create(g).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateGuest
	}
	return err
}
