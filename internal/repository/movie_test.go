package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/testutil"
)

type fixture struct {
	repos     *repository.Repositories
	genres    []model.Genre
	countries []model.Country
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repos := repository.NewRepositories(testutil.NewDB(t))

	f := &fixture{repos: repos}
	for _, name := range []string{"Drama", "Crime", "Comedy"} {
		g := &model.Genre{Name: name}
		require.NoError(t, repos.Genre.Create(ctx, g))
		f.genres = append(f.genres, *g)
	}
	for _, name := range []string{"USA", "France"} {
		c := &model.Country{Name: name}
		require.NoError(t, repos.Country.Create(ctx, c))
		f.countries = append(f.countries, *c)
	}
	return f
}

func (f *fixture) movie(t *testing.T, title string, released string, genres []model.Genre, countries []model.Country) *model.Movie {
	t.Helper()
	rd, err := time.Parse("2006-01-02", released)
	require.NoError(t, err)

	m := &model.Movie{
		Title:           title,
		Year:            rd.Year(),
		ReleaseDate:     &rd,
		DurationMinutes: 120,
		Genres:          genres,
		Countries:       countries,
	}
	require.NoError(t, f.repos.Movie.Create(context.Background(), m))
	return m
}

func titles(movies []model.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestMovieCreateAndFind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.movie(t, "Heat", "1995-12-15", f.genres[:2], f.countries[:1])
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.Version)

	found, err := f.repos.Movie.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Heat", found.Title)
	assert.Equal(t, []int{f.genres[0].ID, f.genres[1].ID}, found.GenreIDs())
	assert.Equal(t, []int{f.countries[0].ID}, found.CountryIDs())
	assert.Equal(t, "1995-12-15", found.ReleaseDate.Format("2006-01-02"))

	// 关联实体本身不应被改写
	genres, _, err := f.repos.Genre.List(ctx, model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Len(t, genres, 3)

	missing, err := f.repos.Movie.FindByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMovieDuplicateTitleConflict(t *testing.T) {
	f := newFixture(t)
	f.movie(t, "Heat", "1995-12-15", f.genres[:1], f.countries[:1])

	dup := &model.Movie{Title: "Heat", Year: 2000, DurationMinutes: 90}
	err := f.repos.Movie.Create(context.Background(), dup)
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)
}

func TestMovieFilterRequiresAllGenres(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	drama, crime, comedy := f.genres[0], f.genres[1], f.genres[2]

	f.movie(t, "Both", "2000-01-01", []model.Genre{drama, crime}, f.countries[:1])
	f.movie(t, "DramaOnly", "2001-01-01", []model.Genre{drama}, f.countries[:1])
	f.movie(t, "All", "2002-01-01", []model.Genre{drama, crime, comedy}, f.countries)

	movies, total, err := f.repos.Movie.List(ctx,
		model.MovieFilter{GenresIDIn: []int{drama.ID, crime.ID}},
		model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"Both", "All"}, titles(movies))

	// 重复 ID 不影响计数
	movies, _, err = f.repos.Movie.List(ctx,
		model.MovieFilter{GenresIDIn: []int{drama.ID, drama.ID, crime.ID}},
		model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Both", "All"}, titles(movies))

	movies, _, err = f.repos.Movie.List(ctx,
		model.MovieFilter{CountriesIDIn: []int{f.countries[0].ID, f.countries[1].ID}},
		model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"All"}, titles(movies))
}

func TestMovieFilterDatesAndTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.movie(t, "The Godfather", "1972-03-24", f.genres[:1], f.countries[:1])
	f.movie(t, "Godfather Part II", "1974-12-20", f.genres[:1], f.countries[:1])
	f.movie(t, "Goodfellas", "1990-09-19", f.genres[:1], f.countries[:1])

	gte := time.Date(1973, 1, 1, 0, 0, 0, 0, time.UTC)
	lte := time.Date(1974, 12, 20, 0, 0, 0, 0, time.UTC)

	movies, _, err := f.repos.Movie.List(ctx, model.MovieFilter{ReleaseDateGte: &gte}, model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Godfather Part II", "Goodfellas"}, titles(movies))

	movies, _, err = f.repos.Movie.List(ctx, model.MovieFilter{ReleaseDateLte: &lte}, model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Godfather", "Godfather Part II"}, titles(movies))

	movies, _, err = f.repos.Movie.List(ctx, model.MovieFilter{TitleLike: "GODFATHER"}, model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Godfather", "Godfather Part II"}, titles(movies))

	movies, _, err = f.repos.Movie.List(ctx, model.MovieFilter{TitleLike: "father", ReleaseDateGte: &gte}, model.Pageable{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Godfather Part II"}, titles(movies))
}

func TestMovieListPagingAndSort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.movie(t, "B", "2000-01-01", f.genres[:1], f.countries[:1])
	f.movie(t, "C", "2001-01-01", f.genres[:1], f.countries[:1])
	f.movie(t, "A", "2002-01-01", f.genres[:1], f.countries[:1])

	page := model.Pageable{Page: 0, Size: 2, Sort: []model.Order{{Column: "title", Desc: true}}}
	movies, total, err := f.repos.Movie.List(ctx, model.MovieFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"C", "B"}, titles(movies))
	require.Len(t, movies[0].Genres, 1)

	page.Page = 1
	movies, _, err = f.repos.Movie.List(ctx, model.MovieFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, titles(movies))

	page.Page = 5
	movies, total, err = f.repos.Movie.List(ctx, model.MovieFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, movies)
}

func TestMovieUpdateOptimisticLock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.movie(t, "Alien", "1979-05-25", f.genres[:1], f.countries[:1])

	m.Title = "Alien (1979)"
	require.NoError(t, f.repos.Movie.Update(ctx, m, 1))
	assert.Equal(t, int64(2), m.Version)

	stale := *m
	stale.Title = "Aliens"
	err := f.repos.Movie.Update(ctx, &stale, 1)
	assert.ErrorIs(t, err, repository.ErrStaleVersion)
	assert.Equal(t, int64(1), stale.Version)

	found, err := f.repos.Movie.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alien (1979)", found.Title)
	assert.Equal(t, int64(2), found.Version)
	assert.Equal(t, m.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestMovieReplaceRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.movie(t, "Amelie", "2001-04-25", f.genres[:1], f.countries[:1])

	require.NoError(t, f.repos.Movie.ReplaceGenres(ctx, m, []model.Genre{f.genres[2]}))
	require.NoError(t, f.repos.Movie.ReplaceCountries(ctx, m, []model.Country{f.countries[1]}))

	found, err := f.repos.Movie.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{f.genres[2].ID}, found.GenreIDs())
	assert.Equal(t, []int{f.countries[1].ID}, found.CountryIDs())
}

func TestMovieDeleteRemovesWatchRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.movie(t, "Jaws", "1975-06-20", f.genres[:2], f.countries[:1])

	u := &model.User{Username: "quint"}
	require.NoError(t, f.repos.User.Create(ctx, u))
	wm := &model.WatchedMovie{UserID: u.ID, MovieID: m.ID, WatchedAt: time.Now()}
	require.NoError(t, f.repos.WatchedMovie.Create(ctx, wm))

	deleted, err := f.repos.Movie.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err := f.repos.WatchedMovie.Exists(ctx, wm.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// 类型本身保留
	exists, err = f.repos.Genre.Exists(ctx, f.genres[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err = f.repos.Movie.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
