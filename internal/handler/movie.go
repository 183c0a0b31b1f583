package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/utils"
)

func (h *Handler) CreateMovie(c *gin.Context) {
	var req dto.MovieRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Movie.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Created(c, resp)
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Movie.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

// ListMovies 分页 + 过滤：releaseDateGte、releaseDateLte、titleLike、genresIdIn、countriesIdIn
func (h *Handler) ListMovies(c *gin.Context) {
	f, err := movieFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	p, err := h.pageable(c, movieSort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.Movie.List(c.Request.Context(), f, p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.MovieUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Movie.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Services.Movie.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	utils.NoContent(c)
}
