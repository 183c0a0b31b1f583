package model

// Order 单个排序字段
type Order struct {
	Column string
	Desc   bool
}

// Pageable 分页与排序描述，Page 从 0 开始
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset 计算偏移量
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// TotalPages 根据总数计算页数
func (p Pageable) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
