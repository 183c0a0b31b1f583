package repository

import (
	"context"

	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	crud[model.Movie, *model.Movie]
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{crud[model.Movie, *model.Movie]{db: db}}
}

// Create 创建电影，并写入与类型、国家的关联（关联实体本身不会被写入）
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	err := r.db.WithContext(ctx).
		Omit("Genres.*", "Countries.*", "WatchedMovies").
		Create(movie).Error
	if isUniqueViolation(err) {
		return apperr.Conflict("Movie with title %q already exists", movie.Title)
	}
	return err
}

// FindByID 根据 ID 查找电影（含类型、国家）
func (r *MovieRepository) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	return r.findByID(ctx, id, "Genres", "Countries")
}

func (r *MovieRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, id)
}

// List 按过滤条件分页查询
func (r *MovieRepository) List(ctx context.Context, f model.MovieFilter, p model.Pageable) ([]model.Movie, int64, error) {
	return r.findPage(ctx, p, MovieFilterScopes(f), "Genres", "Countries")
}

// Update 更新电影自身字段，关联由 ReplaceGenres / ReplaceCountries 处理
func (r *MovieRepository) Update(ctx context.Context, movie *model.Movie, expectedVersion int64) error {
	if err := r.update(ctx, movie, expectedVersion); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("Movie with title %q already exists", movie.Title)
		}
		return err
	}
	return nil
}

// ReplaceGenres 整体替换电影的类型
func (r *MovieRepository) ReplaceGenres(ctx context.Context, movie *model.Movie, genres []model.Genre) error {
	if err := r.db.WithContext(ctx).Model(movie).Association("Genres").Replace(genres); err != nil {
		return err
	}
	movie.Genres = genres
	return nil
}

// ReplaceCountries 整体替换电影的国家
func (r *MovieRepository) ReplaceCountries(ctx context.Context, movie *model.Movie, countries []model.Country) error {
	if err := r.db.WithContext(ctx).Model(movie).Association("Countries").Replace(countries); err != nil {
		return err
	}
	movie.Countries = countries
	return nil
}

// Delete 删除电影、关联关系以及观影记录
func (r *MovieRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.delete(ctx, id, "Genres", "Countries", "WatchedMovies")
}
