package pkg

// PageSize 列表页每页条数
const PageSize = 10

// PaginationData 模板分页控件所需数据
type PaginationData struct {
	CurrentPage int
	TotalPages  int
	NextPage    int
	PrevPage    int
	HasNext     bool
	HasPrev     bool
}

// ClampPage 页码越界时收敛到末页：小于 1 和大于末页都取末页。
// total 为记录总数；空列表视为只有第 1 页。
func ClampPage(page int, total int64, size int) (int, int) {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

func NewPaginationData(page, totalPages int) PaginationData {
	return PaginationData{
		CurrentPage: page,
		TotalPages:  totalPages,
		NextPage:    page + 1,
		PrevPage:    page - 1,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
