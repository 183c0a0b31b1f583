package dto

import (
	"time"

	"github.com/user/cinema/internal/model"
)

// CountryRequest 新建国家
type CountryRequest struct {
	Name string `json:"name" binding:"required,notblank,min=2,max=100"`
}

// CountryUpdateRequest 部分更新国家
type CountryUpdateRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank,min=2,max=100"`
	Version *int64  `json:"version" binding:"omitempty,gte=1"`
}

type CountryResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func (r *CountryRequest) ToEntity() *model.Country {
	return &model.Country{Name: r.Name}
}

func (r *CountryUpdateRequest) ApplyTo(c *model.Country) {
	if r.Name != nil {
		c.Name = *r.Name
	}
}

func ToCountryResponse(c *model.Country) CountryResponse {
	return CountryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// GenreRequest 新建类型
type GenreRequest struct {
	Name string `json:"name" binding:"required,notblank,min=2,max=50"`
}

// GenreUpdateRequest 部分更新类型
type GenreUpdateRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank,min=2,max=50"`
	Version *int64  `json:"version" binding:"omitempty,gte=1"`
}

type GenreResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func (r *GenreRequest) ToEntity() *model.Genre {
	return &model.Genre{Name: r.Name}
}

func (r *GenreUpdateRequest) ApplyTo(g *model.Genre) {
	if r.Name != nil {
		g.Name = *r.Name
	}
}

func ToGenreResponse(g *model.Genre) GenreResponse {
	return GenreResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Version:   g.Version,
	}
}
