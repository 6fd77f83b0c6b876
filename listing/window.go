package listing

// PageWindow is the set of pagination buttons for the current page: up to
// five contiguous numbers centered on the current page, plus first/last
// shortcuts with ellipsis markers when the window is clipped.
type PageWindow struct {
	Pages            []int `json:"pages"`
	FirstShortcut    bool  `json:"firstShortcut"`
	LeadingEllipsis  bool  `json:"leadingEllipsis"`
	LastShortcut     bool  `json:"lastShortcut"`
	TrailingEllipsis bool  `json:"trailingEllipsis"`
	TotalPages       int   `json:"totalPages"`
}

func (c *Controller[T]) PageWindow() PageWindow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildPageWindow(c.currentPage, c.totalPagesLocked())
}

func BuildPageWindow(current, total int) PageWindow {
	current = clampPage(current, total)

	start := current - 2
	end := current + 2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > total {
		start -= end - total
		end = total
	}
	if start < 1 {
		start = 1
	}

	pages := make([]int, 0, 5)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return PageWindow{
		Pages:            pages,
		FirstShortcut:    start > 1,
		LeadingEllipsis:  start > 2,
		LastShortcut:     end < total,
		TrailingEllipsis: end < total-1,
		TotalPages:       total,
	}
}
