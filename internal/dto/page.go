package dto

import "github.com/user/cinema/internal/model"

// Page 分页响应
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage 把实体列表映射为分页响应
func NewPage[E any, R any](items []E, p model.Pageable, total int64, conv func(*E) R) Page[R] {
	return Page[R]{
		Content:       ToResponses(items, conv),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    p.TotalPages(total),
	}
}

// ToResponses 批量转换，空输入返回空切片而不是 nil
func ToResponses[E any, R any](items []E, conv func(*E) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, conv(&items[i]))
	}
	return out
}
