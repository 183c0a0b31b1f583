package model

import (
	"time"
)

// MovieFilter 电影列表的可选过滤条件，所有条件之间为 AND
type MovieFilter struct {
	ReleaseDateGte *time.Time
	ReleaseDateLte *time.Time
	// TitleLike 标题子串，不区分大小写
	TitleLike string
	// GenresIDIn 电影必须包含全部这些类型
	GenresIDIn []int
	// CountriesIDIn 电影必须包含全部这些国家
	CountriesIDIn []int
}

// IsEmpty 是否没有任何过滤条件
func (f MovieFilter) IsEmpty() bool {
	return f.ReleaseDateGte == nil && f.ReleaseDateLte == nil &&
		f.TitleLike == "" && len(f.GenresIDIn) == 0 && len(f.CountriesIDIn) == 0
}

// UniqueIDs 去重并保持原有顺序
func UniqueIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
