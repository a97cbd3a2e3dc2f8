package pagination

// Params select one page of a listing. A PageSize of zero turns paging off.
type Params struct {
	Page     int
	PageSize int
}

// OffsetLimit converts the page selection into a query offset and limit.
// Both are zero when paging is off. Pages count from 1; out of range pages
// clamp to the first.
func (p Params) OffsetLimit() (offset, limit int) {
	if p.PageSize <= 0 {
		return 0, 0
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * p.PageSize, p.PageSize
}

// Meta describes where a page sits in the full listing.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// BuildMeta computes the page meta for a listing of totalItems.
func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}

	page := p.Page
	if page < 1 && p.PageSize > 0 {
		page = 1
	}

	return Meta{
		Page:       page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
