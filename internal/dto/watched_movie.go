package dto

import (
	"time"

	"github.com/user/cinema/internal/model"
)

// WatchedMovieRequest 新建观影记录，watchedAt 缺省为当前时间
type WatchedMovieRequest struct {
	UserID    int        `json:"userId" binding:"required,gt=0"`
	MovieID   int        `json:"movieId" binding:"required,gt=0"`
	WatchedAt *time.Time `json:"watchedAt"`
}

// WatchedMovieUpdateRequest 部分更新观影记录
type WatchedMovieUpdateRequest struct {
	UserID    *int       `json:"userId" binding:"omitempty,gt=0"`
	MovieID   *int       `json:"movieId" binding:"omitempty,gt=0"`
	WatchedAt *time.Time `json:"watchedAt"`
	Version   *int64     `json:"version" binding:"omitempty,gte=1"`
}

type WatchedMovieResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	MovieID   int       `json:"movieId"`
	WatchedAt time.Time `json:"watchedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func (r *WatchedMovieRequest) ToEntity(now time.Time) *model.WatchedMovie {
	wm := &model.WatchedMovie{
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		WatchedAt: now,
	}
	if r.WatchedAt != nil {
		wm.WatchedAt = *r.WatchedAt
	}
	return wm
}

func (r *WatchedMovieUpdateRequest) ApplyTo(wm *model.WatchedMovie) {
	if r.UserID != nil {
		wm.UserID = *r.UserID
	}
	if r.MovieID != nil {
		wm.MovieID = *r.MovieID
	}
	if r.WatchedAt != nil {
		wm.WatchedAt = *r.WatchedAt
	}
}

func ToWatchedMovieResponse(wm *model.WatchedMovie) WatchedMovieResponse {
	return WatchedMovieResponse{
		ID:        wm.ID,
		UserID:    wm.UserID,
		MovieID:   wm.MovieID,
		WatchedAt: wm.WatchedAt,
		CreatedAt: wm.CreatedAt,
		UpdatedAt: wm.UpdatedAt,
		Version:   wm.Version,
	}
}
