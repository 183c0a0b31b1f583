package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	assert.Nil(t, UniqueIDs(nil))
	assert.Equal(t, []int{3, 1, 2}, UniqueIDs([]int{3, 1, 3, 2, 1}))
}

func TestMovieFilterIsEmpty(t *testing.T) {
	assert.True(t, MovieFilter{}.IsEmpty())

	now := time.Now()
	assert.False(t, MovieFilter{ReleaseDateLte: &now}.IsEmpty())
	assert.False(t, MovieFilter{TitleLike: "x"}.IsEmpty())
	assert.False(t, MovieFilter{CountriesIDIn: []int{1}}.IsEmpty())
}

func TestPageable(t *testing.T) {
	p := Pageable{Page: 2, Size: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 3, p.TotalPages(21))
}

func TestMovieRelationIDs(t *testing.T) {
	m := Movie{
		Genres:    []Genre{{Model: Model{ID: 1}}, {Model: Model{ID: 4}}},
		Countries: []Country{{Model: Model{ID: 7}}},
	}
	assert.Equal(t, []int{1, 4}, m.GenreIDs())
	assert.Equal(t, []int{7}, m.CountryIDs())
}
