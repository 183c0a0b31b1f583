package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleVersion 更新时版本号不匹配
var ErrStaleVersion = errors.New("stale version")

// entity 带公共字段的实体指针
type entity[T any] interface {
	*T
	Base() *model.Model
}

// crud 各实体仓库共享的增删改查
type crud[T any, PT entity[T]] struct {
	db *gorm.DB
}

func (r crud[T, PT]) findByID(ctx context.Context, id int, preloads ...string) (*T, error) {
	var v T
	q := r.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p, byID)
	}
	err := q.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r crud[T, PT]) findAllByID(ctx context.Context, ids []int) ([]T, error) {
	var out []T
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&out).Error
	return out, err
}

func (r crud[T, PT]) exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r crud[T, PT]) create(ctx context.Context, v PT) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

// update 按乐观锁写回所有列（不含关联），成功后版本号 +1
func (r crud[T, PT]) update(ctx context.Context, v PT, expected int64) error {
	base := v.Base()
	base.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(v).
		Where("version = ?", expected).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(v)
	if res.Error != nil {
		base.Version = expected
		return res.Error
	}
	if res.RowsAffected == 0 {
		base.Version = expected
		return ErrStaleVersion
	}
	return nil
}

// delete 删除实体，并按 associations 清理关联记录
func (r crud[T, PT]) delete(ctx context.Context, id int, associations ...string) (bool, error) {
	v := PT(new(T))
	v.Base().ID = id

	q := r.db.WithContext(ctx)
	if len(associations) > 0 {
		q = q.Select(associations)
	}
	res := q.Delete(v)
	return res.RowsAffected > 0, res.Error
}

func (r crud[T, PT]) findPage(ctx context.Context, p model.Pageable, scopes []func(*gorm.DB) *gorm.DB, preloads ...string) ([]T, int64, error) {
	items := make([]T, 0)

	q := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(p.Offset()) >= total {
		return items, total, nil
	}

	page := q.Scopes(Paginate(p))
	for _, name := range preloads {
		page = page.Preload(name, byID)
	}
	if err := page.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Paginate 排序 + 分页，未指定排序时按 id 升序保证翻页稳定
func Paginate(p model.Pageable) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(p.Sort) == 0 {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
		}
		for _, o := range p.Sort {
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Table: clause.CurrentTable, Name: o.Column},
				Desc:   o.Desc,
			})
		}
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// isUniqueViolation 兼容 lib/pq、gorm 翻译后的错误以及 sqlite
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
