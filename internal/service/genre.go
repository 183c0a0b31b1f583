package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
)

// GenreService 类型
type GenreService struct {
	repos *repository.Repositories
	cache *refCache[dto.GenreResponse]
	log   hclog.Logger
}

func NewGenreService(repos *repository.Repositories, cache *refCache[dto.GenreResponse], log hclog.Logger) *GenreService {
	return &GenreService{repos: repos, cache: cache, log: log}
}

func (s *GenreService) Create(ctx context.Context, req *dto.GenreRequest) (*dto.GenreResponse, error) {
	var out dto.GenreResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		genre := req.ToEntity()
		if err := tx.Genre.Create(ctx, genre); err != nil {
			return err
		}
		out = dto.ToGenreResponse(genre)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("类型已创建", "id", out.ID)
	return &out, nil
}

func (s *GenreService) Get(ctx context.Context, id int) (*dto.GenreResponse, error) {
	out, err := s.cache.get(ctx, id, func(ctx context.Context) (dto.GenreResponse, error) {
		genre, err := s.repos.Genre.FindByID(ctx, id)
		if err != nil {
			return dto.GenreResponse{}, err
		}
		if genre == nil {
			return dto.GenreResponse{}, apperr.NotFound("Genre", id)
		}
		return dto.ToGenreResponse(genre), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GenreService) List(ctx context.Context, p model.Pageable) (*dto.Page[dto.GenreResponse], error) {
	genres, total, err := s.repos.Genre.List(ctx, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(genres, p, total, dto.ToGenreResponse)
	return &page, nil
}

func (s *GenreService) Update(ctx context.Context, id int, req *dto.GenreUpdateRequest) (*dto.GenreResponse, error) {
	var out dto.GenreResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		genre, err := tx.Genre.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if genre == nil {
			return apperr.NotFound("Genre", id)
		}

		expected := expectedVersion(req.Version, genre.Version)
		req.ApplyTo(genre)
		if err := tx.Genre.Update(ctx, genre, expected); err != nil {
			return versionConflict("Genre", id, expected, err)
		}
		out = dto.ToGenreResponse(genre)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(id)
	return &out, nil
}

// Delete 删除类型，电影上的关联一并移除
func (s *GenreService) Delete(ctx context.Context, id int) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		exists, err := tx.Genre.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Genre", id)
		}
		_, err = tx.Genre.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	s.cache.invalidate(id)
	s.log.Debug("类型已删除", "id", id)
	return nil
}
