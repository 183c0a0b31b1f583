package repository

import (
	"context"

	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

// GenreRepository 类型仓库
type GenreRepository struct {
	crud[model.Genre, *model.Genre]
}

// NewGenreRepository 创建类型仓库
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{crud[model.Genre, *model.Genre]{db: db}}
}

// Create 创建类型
func (r *GenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return r.create(ctx, genre)
}

// FindByID 根据 ID 查找，不存在返回 nil
func (r *GenreRepository) FindByID(ctx context.Context, id int) (*model.Genre, error) {
	return r.findByID(ctx, id)
}

// FindAllByID 批量查找，忽略不存在的 ID
func (r *GenreRepository) FindAllByID(ctx context.Context, ids []int) ([]model.Genre, error) {
	return r.findAllByID(ctx, ids)
}

func (r *GenreRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, id)
}

func (r *GenreRepository) List(ctx context.Context, p model.Pageable) ([]model.Genre, int64, error) {
	return r.findPage(ctx, p, nil)
}

func (r *GenreRepository) Update(ctx context.Context, genre *model.Genre, expectedVersion int64) error {
	return r.update(ctx, genre, expectedVersion)
}

// Delete 删除类型，同时清理 movie_genres 中的关联
func (r *GenreRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.delete(ctx, id, "Movies")
}
