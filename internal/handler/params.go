package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
)

// sortable JSON 字段名到列名的映射，不在表中的字段不允许排序
type sortable map[string]string

func withBase(fields sortable) sortable {
	out := sortable{
		"id":        "id",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

var (
	countrySort      = withBase(sortable{"name": "name"})
	genreSort        = withBase(sortable{"name": "name"})
	userSort         = withBase(sortable{"username": "username"})
	watchedMovieSort = withBase(sortable{
		"userId":    "user_id",
		"movieId":   "movie_id",
		"watchedAt": "watched_at",
	})
	movieSort = withBase(sortable{
		"title":           "title",
		"year":            "year",
		"releaseDate":     "release_date",
		"worldGross":      "world_gross",
		"budget":          "budget",
		"ageRating":       "age_rating",
		"durationMinutes": "duration_minutes",
	})
)

// pageable 解析 page / size / sort；size 超过上限时截断
func (h *Handler) pageable(c *gin.Context, fields sortable) (model.Pageable, error) {
	p := model.Pageable{Size: h.Config.Paging.DefaultSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return p, apperr.Invalid("page", "must be a non-negative integer")
		}
		p.Page = page
	}

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return p, apperr.Invalid("size", "must be a positive integer")
		}
		p.Size = size
	}
	if p.Size > h.Config.Paging.MaxSize {
		p.Size = h.Config.Paging.MaxSize
	}
	// page*size 不能溢出
	if p.Page > math.MaxInt/p.Size {
		return p, apperr.Invalid("page", "is too large")
	}

	for _, raw := range c.QueryArray("sort") {
		order, err := parseSort(raw, fields)
		if err != nil {
			return p, err
		}
		p.Sort = append(p.Sort, order)
	}
	return p, nil
}

// parseSort 解析 "field" 或 "field,asc|desc"
func parseSort(raw string, fields sortable) (model.Order, error) {
	parts := strings.Split(raw, ",")
	name := strings.TrimSpace(parts[0])
	column, ok := fields[name]
	if !ok {
		return model.Order{}, apperr.Invalid("sort", fmt.Sprintf("unknown sort property %q", name))
	}

	order := model.Order{Column: column}
	if len(parts) > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc", "":
		case "desc":
			order.Desc = true
		default:
			return model.Order{}, apperr.Invalid("sort", fmt.Sprintf("unknown sort direction %q", parts[1]))
		}
	}
	if len(parts) > 2 {
		return model.Order{}, apperr.Invalid("sort", fmt.Sprintf("malformed sort %q", raw))
	}
	return order, nil
}

// movieFilter 解析电影列表的过滤参数
func movieFilter(c *gin.Context) (model.MovieFilter, error) {
	var (
		f    model.MovieFilter
		errs []apperr.FieldError
	)

	for _, name := range []string{"releaseDateGte", "releaseDateLte"} {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		d, err := dto.ParseDate(raw)
		if err != nil {
			errs = append(errs, apperr.FieldError{Field: name, Reason: "must be a date in YYYY-MM-DD format"})
			continue
		}
		if name == "releaseDateGte" {
			f.ReleaseDateGte = d.Ptr()
		} else {
			f.ReleaseDateLte = d.Ptr()
		}
	}

	f.TitleLike = strings.TrimSpace(c.Query("titleLike"))

	var err error
	if f.GenresIDIn, err = queryIDs(c, "genresIdIn"); err != nil {
		errs = append(errs, apperr.FieldError{Field: "genresIdIn", Reason: err.Error()})
	}
	if f.CountriesIDIn, err = queryIDs(c, "countriesIdIn"); err != nil {
		errs = append(errs, apperr.FieldError{Field: "countriesIdIn", Reason: err.Error()})
	}

	if len(errs) > 0 {
		return f, &apperr.ValidationError{Fields: errs}
	}
	return f, nil
}

// queryIDs 支持 ?k=1&k=2 与 ?k=1,2 两种写法
func queryIDs(c *gin.Context, key string) ([]int, error) {
	var ids []int
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("must be a list of positive integers, got %q", part)
			}
			ids = append(ids, id)
		}
	}
	return model.UniqueIDs(ids), nil
}
