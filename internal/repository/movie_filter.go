package repository

import (
	"strings"
	"time"

	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

// MovieFilterScopes 把过滤条件翻译成一组 gorm scope，缺省条件不产生任何约束
func MovieFilterScopes(f model.MovieFilter) []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		releaseDateGte(f.ReleaseDateGte),
		releaseDateLte(f.ReleaseDateLte),
		titleLike(f.TitleLike),
		hasAllRelated("movie_genres", "genre_id", f.GenresIDIn),
		hasAllRelated("movie_countries", "country_id", f.CountriesIDIn),
	}
}

func releaseDateGte(t *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t == nil {
			return db
		}
		return db.Where("movies.release_date >= ?", *t)
	}
}

func releaseDateLte(t *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t == nil {
			return db
		}
		return db.Where("movies.release_date <= ?", *t)
	}
}

func titleLike(q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.TrimSpace(q)
		if q == "" {
			return db
		}
		return db.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
}

// hasAllRelated 电影必须关联 ids 中的每一个：
// 在关联表中按电影分组，命中的不同 ID 数量必须等于 ids 的数量
func hasAllRelated(joinTable, column string, ids []int) func(*gorm.DB) *gorm.DB {
	ids = model.UniqueIDs(ids)
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(joinTable+" AS j").
			Select("j.movie_id").
			Where("j.movie_id = movies.id").
			Where("j."+column+" IN ?", ids).
			Group("j.movie_id").
			Having("COUNT(DISTINCT j."+column+") = ?", len(ids))
		return db.Where("EXISTS (?)", sub)
	}
}
