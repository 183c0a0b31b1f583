package model

import (
	"time"
)

// Movie 电影
type Movie struct {
	Model
	Title           string         `json:"title" gorm:"size:255;not null;uniqueIndex"`
	Description     *string        `json:"description"`
	Year            int            `json:"year" gorm:"not null"`
	ReleaseDate     *time.Time     `json:"release_date" gorm:"type:date;index"`
	WorldGross      *int64         `json:"world_gross"`
	Budget          *int64         `json:"budget"`
	AgeRating       *string        `json:"age_rating" gorm:"size:20"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	Genres          []Genre        `json:"genres" gorm:"many2many:movie_genres"`
	Countries       []Country      `json:"countries" gorm:"many2many:movie_countries"`
	WatchedMovies   []WatchedMovie `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// GenreIDs 返回关联类型的 ID
func (m *Movie) GenreIDs() []int {
	ids := make([]int, 0, len(m.Genres))
	for _, g := range m.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// CountryIDs 返回关联国家的 ID
func (m *Movie) CountryIDs() []int {
	ids := make([]int, 0, len(m.Countries))
	for _, c := range m.Countries {
		ids = append(ids, c.ID)
	}
	return ids
}
