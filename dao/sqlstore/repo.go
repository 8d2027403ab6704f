package sqlstore

import (
	"Chirp/dao"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repo 通用单表操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, v *T) error {
	return translate(r.Db.WithContext(ctx).Create(v).Error)
}

func (r *Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var v T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, scope func(db *gorm.DB) *gorm.DB) ([]*T, error) {
	var items []*T
	q := r.Db.WithContext(ctx)
	if scope != nil {
		q = scope(q)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// translate 把 gorm 错误映射为 dao 哨兵错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", dao.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", dao.ErrDuplicate, err)
	default:
		return err
	}
}
