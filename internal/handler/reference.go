package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/utils"
)

// ==================== 国家 ====================

func (h *Handler) CreateCountry(c *gin.Context) {
	var req dto.CountryRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Country.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Created(c, resp)
}

func (h *Handler) GetCountry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Country.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) ListCountries(c *gin.Context) {
	p, err := h.pageable(c, countrySort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.Country.List(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}

func (h *Handler) UpdateCountry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.CountryUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Country.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) DeleteCountry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Services.Country.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	utils.NoContent(c)
}

// ==================== 类型 ====================

func (h *Handler) CreateGenre(c *gin.Context) {
	var req dto.GenreRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Genre.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Created(c, resp)
}

func (h *Handler) GetGenre(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Genre.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) ListGenres(c *gin.Context) {
	p, err := h.pageable(c, genreSort)
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, err := h.Services.Genre.List(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, page)
}

func (h *Handler) UpdateGenre(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.GenreUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	resp, err := h.Services.Genre.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	utils.Success(c, resp)
}

func (h *Handler) DeleteGenre(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.Services.Genre.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	utils.NoContent(c)
}
