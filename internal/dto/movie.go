package dto

import (
	"time"

	"github.com/user/cinema/internal/model"
)

// MovieRequest 新建电影
type MovieRequest struct {
	Title           string  `json:"title" binding:"required,notblank,max=255"`
	Description     *string `json:"description"`
	Year            *int    `json:"year" binding:"required,gte=0"`
	ReleaseDate     *Date   `json:"releaseDate"`
	WorldGross      *int64  `json:"worldGross" binding:"omitempty,gte=0"`
	Budget          *int64  `json:"budget" binding:"omitempty,gte=0"`
	AgeRating       *string `json:"ageRating" binding:"omitempty,max=20"`
	DurationMinutes *int    `json:"durationMinutes" binding:"required,gte=0"`
	GenreIDs        []int   `json:"genreIds" binding:"required,min=1,dive,gt=0"`
	CountryIDs      []int   `json:"countryIds" binding:"required,min=1,dive,gt=0"`
}

// MovieUpdateRequest 部分更新电影，genreIds / countryIds 非空时整体替换
type MovieUpdateRequest struct {
	Title           *string `json:"title" binding:"omitempty,notblank,max=255"`
	Description     *string `json:"description"`
	Year            *int    `json:"year" binding:"omitempty,gte=0"`
	ReleaseDate     *Date   `json:"releaseDate"`
	WorldGross      *int64  `json:"worldGross" binding:"omitempty,gte=0"`
	Budget          *int64  `json:"budget" binding:"omitempty,gte=0"`
	AgeRating       *string `json:"ageRating" binding:"omitempty,max=20"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,gte=0"`
	GenreIDs        []int   `json:"genreIds" binding:"omitempty,dive,gt=0"`
	CountryIDs      []int   `json:"countryIds" binding:"omitempty,dive,gt=0"`
	Version         *int64  `json:"version" binding:"omitempty,gte=1"`
}

type MovieResponse struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Description     *string           `json:"description"`
	Year            int               `json:"year"`
	ReleaseDate     *Date             `json:"releaseDate"`
	WorldGross      *int64            `json:"worldGross"`
	Budget          *int64            `json:"budget"`
	AgeRating       *string           `json:"ageRating"`
	DurationMinutes int               `json:"durationMinutes"`
	GenreIDs        []int             `json:"genreIds"`
	CountryIDs      []int             `json:"countryIds"`
	Genres          []GenreResponse   `json:"genres"`
	Countries       []CountryResponse `json:"countries"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Version         int64             `json:"version"`
}

// ToEntity 关联 ID 转为只带 ID 的占位实体，由服务层校验是否存在
func (r *MovieRequest) ToEntity() *model.Movie {
	m := &model.Movie{
		Title:       r.Title,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate.Ptr(),
		WorldGross:  r.WorldGross,
		Budget:      r.Budget,
		AgeRating:   r.AgeRating,
		Genres:      genreShells(r.GenreIDs),
		Countries:   countryShells(r.CountryIDs),
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.DurationMinutes != nil {
		m.DurationMinutes = *r.DurationMinutes
	}
	return m
}

// ApplyTo 只覆盖非空字段；关联由服务层单独替换
func (r *MovieUpdateRequest) ApplyTo(m *model.Movie) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.ReleaseDate != nil {
		m.ReleaseDate = r.ReleaseDate.Ptr()
	}
	if r.WorldGross != nil {
		m.WorldGross = r.WorldGross
	}
	if r.Budget != nil {
		m.Budget = r.Budget
	}
	if r.AgeRating != nil {
		m.AgeRating = r.AgeRating
	}
	if r.DurationMinutes != nil {
		m.DurationMinutes = *r.DurationMinutes
	}
}

func ToMovieResponse(m *model.Movie) MovieResponse {
	return MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Year:            m.Year,
		ReleaseDate:     dateOf(m.ReleaseDate),
		WorldGross:      m.WorldGross,
		Budget:          m.Budget,
		AgeRating:       m.AgeRating,
		DurationMinutes: m.DurationMinutes,
		GenreIDs:        m.GenreIDs(),
		CountryIDs:      m.CountryIDs(),
		Genres:          ToResponses(m.Genres, ToGenreResponse),
		Countries:       ToResponses(m.Countries, ToCountryResponse),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Version:         m.Version,
	}
}

func genreShells(ids []int) []model.Genre {
	ids = model.UniqueIDs(ids)
	out := make([]model.Genre, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Genre{Model: model.Model{ID: id}})
	}
	return out
}

func countryShells(ids []int) []model.Country {
	ids = model.UniqueIDs(ids)
	out := make([]model.Country, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Country{Model: model.Model{ID: id}})
	}
	return out
}
