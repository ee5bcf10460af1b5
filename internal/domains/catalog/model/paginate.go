package model

// Paginate filters products by category, then slices out the requested
// page. It is a pure function: the input slice is never mutated and the
// returned page aliases it.
//
// An empty category means no filter. Category matching is a case-sensitive
// exact comparison and preserves the original relative order.
//
// CurrentPage echoes the requested page unclamped; a page past the end
// yields an empty slice rather than an error, so callers can render
// "no results" instead of failing. pageSize < 1 and page < 1 are caller
// errors and rejected eagerly.
func Paginate(products []Product, category string, pageSize, page int) ([]Product, PagingInfo, error) {
	if pageSize < 1 {
		return nil, PagingInfo{}, ErrInvalidPageSize
	}
	if page < 1 {
		return nil, PagingInfo{}, ErrInvalidPageIndex
	}

	filtered := products
	if category != "" {
		filtered = make([]Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}

	info := PagingInfo{
		CurrentPage:  page,
		ItemsPerPage: pageSize,
		TotalItems:   len(filtered),
	}

	offset := (page - 1) * pageSize
	if offset >= len(filtered) {
		return []Product{}, info, nil
	}

	end := offset + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[offset:end], info, nil
}
