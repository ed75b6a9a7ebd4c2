// Package paginator 处理分页逻辑
//
// 页码解析规则：缺省或非整数取第 1 页，超出范围（包括 0 和负数）取最后一页。
// 记录为空时仍然有一页空数据，调用方不会收到错误。
package paginator

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Paginator 只负责页码计算，不关心数据来源
type Paginator struct {
	PerPage int
	Count   int64
}

// New 创建分页器，perPage 小于 1 时按 1 处理
func New(count int64, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator{PerPage: perPage, Count: count}
}

// NumPages 总页数，至少为 1
func (p *Paginator) NumPages() int {
	if p.Count <= 0 {
		return 1
	}
	return int((p.Count + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// Resolve 将请求中的 page 参数解析为合法页码
func (p *Paginator) Resolve(raw string) int {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if number < 1 || number > p.NumPages() {
		return p.NumPages()
	}
	return number
}

// Offset 页码对应的偏移量
func (p *Paginator) Offset(number int) int {
	return (number - 1) * p.PerPage
}

// Page 一页数据
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

// HasPrevious 是否有上一页
func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// HasNext 是否有下一页
func (p *Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

// PreviousPageNumber 上一页页码
func (p *Page[T]) PreviousPageNumber() int {
	return p.Number - 1
}

// NextPageNumber 下一页页码
func (p *Page[T]) NextPageNumber() int {
	return p.Number + 1
}

// Paginate 对查询结果分页，query 为已带过滤条件的查询，order 必须给出，
// 没有排序的分页在数据变动时会得到不一致的结果。preloads 只作用于取数据，不影响计数
func Paginate[T any](ctx context.Context, query *gorm.DB, order string, perPage int, rawPage string, preloads ...string) (*Page[T], error) {
	var count int64
	if err := query.Session(&gorm.Session{}).WithContext(ctx).Count(&count).Error; err != nil {
		return nil, err
	}

	p := New(count, perPage)
	number := p.Resolve(rawPage)

	find := query.Session(&gorm.Session{}).WithContext(ctx)
	for _, name := range preloads {
		find = find.Preload(name)
	}

	items := make([]T, 0, p.PerPage)
	err := find.
		Order(order).
		Offset(p.Offset(number)).
		Limit(p.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:    items,
		Number:   number,
		NumPages: p.NumPages(),
		Count:    count,
		PerPage:  p.PerPage,
	}, nil
}
