package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
)

// MovieService 电影
type MovieService struct {
	repos *repository.Repositories
	log   hclog.Logger
}

func NewMovieService(repos *repository.Repositories, log hclog.Logger) *MovieService {
	return &MovieService{repos: repos, log: log}
}

// Create 校验类型、国家均存在后创建电影
func (s *MovieService) Create(ctx context.Context, req *dto.MovieRequest) (*dto.MovieResponse, error) {
	var out dto.MovieResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		movie := req.ToEntity()

		genres, err := resolveGenres(ctx, tx, movie.GenreIDs())
		if err != nil {
			return err
		}
		countries, err := resolveCountries(ctx, tx, movie.CountryIDs())
		if err != nil {
			return err
		}
		movie.Genres, movie.Countries = genres, countries

		if err := tx.Movie.Create(ctx, movie); err != nil {
			return err
		}
		out = dto.ToMovieResponse(movie)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("电影已创建", "id", out.ID, "title", out.Title)
	return &out, nil
}

func (s *MovieService) Get(ctx context.Context, id int) (*dto.MovieResponse, error) {
	movie, err := s.repos.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("Movie", id)
	}
	out := dto.ToMovieResponse(movie)
	return &out, nil
}

// List 按过滤条件分页
func (s *MovieService) List(ctx context.Context, f model.MovieFilter, p model.Pageable) (*dto.Page[dto.MovieResponse], error) {
	movies, total, err := s.repos.Movie.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(movies, p, total, dto.ToMovieResponse)
	return &page, nil
}

// Update 部分更新；genreIds / countryIds 非空时整体替换关联
func (s *MovieService) Update(ctx context.Context, id int, req *dto.MovieUpdateRequest) (*dto.MovieResponse, error) {
	var out dto.MovieResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		movie, err := tx.Movie.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if movie == nil {
			return apperr.NotFound("Movie", id)
		}

		var (
			genres    []model.Genre
			countries []model.Country
		)
		if len(req.GenreIDs) > 0 {
			if genres, err = resolveGenres(ctx, tx, req.GenreIDs); err != nil {
				return err
			}
		}
		if len(req.CountryIDs) > 0 {
			if countries, err = resolveCountries(ctx, tx, req.CountryIDs); err != nil {
				return err
			}
		}

		expected := expectedVersion(req.Version, movie.Version)
		req.ApplyTo(movie)
		if err := tx.Movie.Update(ctx, movie, expected); err != nil {
			return versionConflict("Movie", id, expected, err)
		}
		if genres != nil {
			if err := tx.Movie.ReplaceGenres(ctx, movie, genres); err != nil {
				return err
			}
		}
		if countries != nil {
			if err := tx.Movie.ReplaceCountries(ctx, movie, countries); err != nil {
				return err
			}
		}

		// 重新加载，保证返回的关联与库中一致
		updated, err := tx.Movie.FindByID(ctx, id)
		if err != nil {
			return err
		}
		out = dto.ToMovieResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete 删除电影，同时删除关联和观影记录
func (s *MovieService) Delete(ctx context.Context, id int) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		exists, err := tx.Movie.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Movie", id)
		}
		_, err = tx.Movie.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info("电影已删除", "id", id)
	return nil
}

// resolveGenres 按 ID 加载类型，任何一个不存在都返回 404
func resolveGenres(ctx context.Context, tx *repository.Repositories, ids []int) ([]model.Genre, error) {
	ids = model.UniqueIDs(ids)
	genres, err := tx.Genre.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	if id, ok := firstMissing(ids, genres); ok {
		return nil, apperr.NotFound("Genre", id)
	}
	return genres, nil
}

func resolveCountries(ctx context.Context, tx *repository.Repositories, ids []int) ([]model.Country, error) {
	ids = model.UniqueIDs(ids)
	countries, err := tx.Country.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	if id, ok := firstMissing(ids, countries); ok {
		return nil, apperr.NotFound("Country", id)
	}
	return countries, nil
}

// firstMissing 返回 ids 中第一个没有出现在 found 里的 ID
func firstMissing[T any, PT interface {
	*T
	Base() *model.Model
}](ids []int, found []T) (int, bool) {
	have := make(map[int]struct{}, len(found))
	for i := range found {
		have[PT(&found[i]).Base().ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return id, true
		}
	}
	return 0, false
}
