package repository

import (
	"context"

	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

// CountryRepository 国家仓库
type CountryRepository struct {
	crud[model.Country, *model.Country]
}

// NewCountryRepository 创建国家仓库
func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{crud[model.Country, *model.Country]{db: db}}
}

// Create 创建国家
func (r *CountryRepository) Create(ctx context.Context, country *model.Country) error {
	return r.create(ctx, country)
}

// FindByID 根据 ID 查找，不存在返回 nil
func (r *CountryRepository) FindByID(ctx context.Context, id int) (*model.Country, error) {
	return r.findByID(ctx, id)
}

// FindAllByID 批量查找，忽略不存在的 ID
func (r *CountryRepository) FindAllByID(ctx context.Context, ids []int) ([]model.Country, error) {
	return r.findAllByID(ctx, ids)
}

// Exists 是否存在
func (r *CountryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, id)
}

// List 分页列表
func (r *CountryRepository) List(ctx context.Context, p model.Pageable) ([]model.Country, int64, error) {
	return r.findPage(ctx, p, nil)
}

// Update 按版本号更新
func (r *CountryRepository) Update(ctx context.Context, country *model.Country, expectedVersion int64) error {
	return r.update(ctx, country, expectedVersion)
}

// Delete 删除国家及其与电影的关联
func (r *CountryRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.delete(ctx, id, "Movies")
}
