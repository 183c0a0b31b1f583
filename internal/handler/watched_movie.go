package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/utils"
)

func (h *Handler) CreateWatchedMovie(c *gin.Context) {
	var req dto.WatchedMovieRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.WatchedMovie.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Created(c, resp)
}

func (h *Handler) GetWatchedMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.WatchedMovie.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) ListWatchedMovies(c *gin.Context) {
	p, err := h.pageable(c, watchedMovieSort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.WatchedMovie.List(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}

func (h *Handler) UpdateWatchedMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.WatchedMovieUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.WatchedMovie.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) DeleteWatchedMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Services.WatchedMovie.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	utils.NoContent(c)
}
