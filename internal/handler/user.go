package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/utils"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.User.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Created(c, resp)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.User.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) ListUsers(c *gin.Context) {
	p, err := h.pageable(c, userSort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.User.List(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.User.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Services.User.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	utils.NoContent(c)
}

// UserWatchedMovies 某个用户的观影记录
func (h *Handler) UserWatchedMovies(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	p, err := h.pageable(c, watchedMovieSort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.WatchedMovie.ListByUser(c.Request.Context(), id, p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}
