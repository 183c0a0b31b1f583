package repository

import (
	"context"

	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

// WatchedMovieRepository 观影记录仓库
type WatchedMovieRepository struct {
	crud[model.WatchedMovie, *model.WatchedMovie]
}

// NewWatchedMovieRepository 创建观影记录仓库
func NewWatchedMovieRepository(db *gorm.DB) *WatchedMovieRepository {
	return &WatchedMovieRepository{crud[model.WatchedMovie, *model.WatchedMovie]{db: db}}
}

// Create 新增观影记录
func (r *WatchedMovieRepository) Create(ctx context.Context, wm *model.WatchedMovie) error {
	return r.create(ctx, wm)
}

// FindByID 根据 ID 查找
func (r *WatchedMovieRepository) FindByID(ctx context.Context, id int) (*model.WatchedMovie, error) {
	return r.findByID(ctx, id)
}

func (r *WatchedMovieRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, id)
}

// List 分页获取全部观影记录
func (r *WatchedMovieRepository) List(ctx context.Context, p model.Pageable) ([]model.WatchedMovie, int64, error) {
	return r.findPage(ctx, p, nil)
}

// ListByUser 分页获取某个用户的观影记录
func (r *WatchedMovieRepository) ListByUser(ctx context.Context, userID int, p model.Pageable) ([]model.WatchedMovie, int64, error) {
	byUser := func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
	return r.findPage(ctx, p, []func(*gorm.DB) *gorm.DB{byUser})
}

func (r *WatchedMovieRepository) Update(ctx context.Context, wm *model.WatchedMovie, expectedVersion int64) error {
	return r.update(ctx, wm, expectedVersion)
}

func (r *WatchedMovieRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.delete(ctx, id)
}
