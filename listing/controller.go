package listing

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// FilterAll is the sentinel value meaning "no constraint" for a structured filter.
const FilterAll = "all"

var ErrSuperseded = errors.New("load superseded by a newer request")

// Config describes how a collection is searched, filtered and sorted.
type Config[T any] struct {
	// SearchFields returns the values matched against the search term.
	SearchFields func(T) []string
	// FilterValue returns the value compared against a structured filter key.
	FilterValue func(T, string) string
	// Sorters maps a sort key to a less function. Sorting is stable.
	Sorters map[string]func(a, b T) bool
	// PageSize used until SetPageSize is called. Defaults to 10.
	PageSize int
}

// Controller keeps a paginated view over a remote collection consistent with
// the current search term, structured filters, sort order and page size.
// The filtered view is always recomputed from the source collection; it is
// never mutated directly.
type Controller[T any] struct {
	mu sync.Mutex

	cfg         Config[T]
	source      []T
	searchTerm  string
	filters     map[string]string
	sortKey     string
	pageSize    int
	currentPage int

	loadSeq uint64
	loadErr error
}

func NewController[T any](cfg Config[T]) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &Controller[T]{
		cfg:         cfg,
		filters:     map[string]string{},
		pageSize:    cfg.PageSize,
		currentPage: 1,
	}
}

// Load replaces the source collection from fetch. Safe to call repeatedly:
// each call gets a sequence token, and a result that arrives after a newer
// Load has been issued is discarded so a stale response can never overwrite
// fresher state. On failure the previous source stays available.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	rows, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		return c.derivedViewLocked(), ErrSuperseded
	}
	if err != nil {
		c.loadErr = err
		return c.derivedViewLocked(), err
	}
	c.loadErr = nil
	c.source = rows
	c.currentPage = 1
	return c.derivedViewLocked(), nil
}

// Err returns the error of the most recent non-superseded Load, if any.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

func (c *Controller[T]) Source() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

func (c *Controller[T]) SetSearchTerm(term string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
	c.currentPage = 1
	return c.derivedViewLocked()
}

func (c *Controller[T]) SetFilter(key, value string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" || value == FilterAll {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.currentPage = 1
	return c.derivedViewLocked()
}

func (c *Controller[T]) SetSort(key string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortKey = key
	c.currentPage = 1
	return c.derivedViewLocked()
}

func (c *Controller[T]) SetPageSize(n int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > 0 {
		c.pageSize = n
	}
	c.currentPage = 1
	return c.derivedViewLocked()
}

// GoToPage clamps n into the valid range before applying it.
func (c *Controller[T]) GoToPage(n int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentPage = clampPage(n, c.totalPagesLocked())
	return c.derivedViewLocked()
}

func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

func (c *Controller[T]) FilteredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filteredLocked())
}

// DerivedView returns the filtered, sorted page slice for the current state.
// Pure with respect to the controller state: identical inputs give identical
// output, and original relative order is preserved on ties.
func (c *Controller[T]) DerivedView() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.derivedViewLocked()
}

func (c *Controller[T]) derivedViewLocked() []T {
	filtered := c.filteredLocked()

	if less, ok := c.cfg.Sorters[c.sortKey]; ok && less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return less(filtered[i], filtered[j])
		})
	}

	// Re-clamp: the filtered view may have shrunk since the page was set.
	page := clampPage(c.currentPage, totalPages(len(filtered), c.pageSize))
	c.currentPage = page

	start := (page - 1) * c.pageSize
	if start >= len(filtered) {
		return []T{}
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (c *Controller[T]) filteredLocked() []T {
	term := strings.ToLower(strings.TrimSpace(c.searchTerm))

	out := make([]T, 0, len(c.source))
	for _, item := range c.source {
		if term != "" && c.cfg.SearchFields != nil {
			matched := false
			for _, field := range c.cfg.SearchFields(item) {
				if strings.Contains(strings.ToLower(field), term) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}

		ok := true
		for key, want := range c.filters {
			if c.cfg.FilterValue == nil || c.cfg.FilterValue(item, key) != want {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		out = append(out, item)
	}
	return out
}

func (c *Controller[T]) totalPagesLocked() int {
	return totalPages(len(c.filteredLocked()), c.pageSize)
}

func totalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func clampPage(n, total int) int {
	if n < 1 {
		return 1
	}
	if n > total {
		return total
	}
	return n
}
