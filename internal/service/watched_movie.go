package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
)

// WatchedMovieService 观影记录
type WatchedMovieService struct {
	repos *repository.Repositories
	log   hclog.Logger
	now   func() time.Time
}

func NewWatchedMovieService(repos *repository.Repositories, log hclog.Logger) *WatchedMovieService {
	return &WatchedMovieService{
		repos: repos,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create 先确认用户和电影存在
func (s *WatchedMovieService) Create(ctx context.Context, req *dto.WatchedMovieRequest) (*dto.WatchedMovieResponse, error) {
	var out dto.WatchedMovieResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		wm := req.ToEntity(s.now())
		if err := checkReferences(ctx, tx, wm.UserID, wm.MovieID); err != nil {
			return err
		}
		if err := tx.WatchedMovie.Create(ctx, wm); err != nil {
			return err
		}
		out = dto.ToWatchedMovieResponse(wm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("观影记录已创建", "id", out.ID, "user_id", out.UserID, "movie_id", out.MovieID)
	return &out, nil
}

func (s *WatchedMovieService) Get(ctx context.Context, id int) (*dto.WatchedMovieResponse, error) {
	wm, err := s.repos.WatchedMovie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wm == nil {
		return nil, apperr.NotFound("WatchedMovie", id)
	}
	out := dto.ToWatchedMovieResponse(wm)
	return &out, nil
}

func (s *WatchedMovieService) List(ctx context.Context, p model.Pageable) (*dto.Page[dto.WatchedMovieResponse], error) {
	records, total, err := s.repos.WatchedMovie.List(ctx, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(records, p, total, dto.ToWatchedMovieResponse)
	return &page, nil
}

// ListByUser 某个用户的观影记录，用户不存在返回 404
func (s *WatchedMovieService) ListByUser(ctx context.Context, userID int, p model.Pageable) (*dto.Page[dto.WatchedMovieResponse], error) {
	exists, err := s.repos.User.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User", userID)
	}

	records, total, err := s.repos.WatchedMovie.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(records, p, total, dto.ToWatchedMovieResponse)
	return &page, nil
}

func (s *WatchedMovieService) Update(ctx context.Context, id int, req *dto.WatchedMovieUpdateRequest) (*dto.WatchedMovieResponse, error) {
	var out dto.WatchedMovieResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		wm, err := tx.WatchedMovie.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if wm == nil {
			return apperr.NotFound("WatchedMovie", id)
		}

		expected := expectedVersion(req.Version, wm.Version)
		req.ApplyTo(wm)
		if req.UserID != nil || req.MovieID != nil {
			if err := checkReferences(ctx, tx, wm.UserID, wm.MovieID); err != nil {
				return err
			}
		}
		if err := tx.WatchedMovie.Update(ctx, wm, expected); err != nil {
			return versionConflict("WatchedMovie", id, expected, err)
		}
		out = dto.ToWatchedMovieResponse(wm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *WatchedMovieService) Delete(ctx context.Context, id int) error {
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		exists, err := tx.WatchedMovie.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("WatchedMovie", id)
		}
		_, err = tx.WatchedMovie.Delete(ctx, id)
		return err
	})
}

// checkReferences 用户、电影必须存在，先查用户
func checkReferences(ctx context.Context, tx *repository.Repositories, userID, movieID int) error {
	exists, err := tx.User.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("User", userID)
	}

	exists, err = tx.Movie.Exists(ctx, movieID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Movie", movieID)
	}
	return nil
}
