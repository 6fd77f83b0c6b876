package listing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID       int
	Title    string
	Category string
	Price    int
}

func itemConfig() Config[item] {
	return Config[item]{
		SearchFields: func(i item) []string { return []string{i.Title} },
		FilterValue: func(i item, key string) string {
			if key == "category" {
				return i.Category
			}
			return ""
		},
		Sorters: map[string]func(a, b item) bool{
			"price-low":  func(a, b item) bool { return a.Price < b.Price },
			"price-high": func(a, b item) bool { return a.Price > b.Price },
		},
		PageSize: 9,
	}
}

func makeItems(n int) []item {
	items := make([]item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, item{
			ID:       i,
			Title:    fmt.Sprintf("Tour %d", i),
			Category: strconv.Itoa(i % 3),
			Price:    i * 1000,
		})
	}
	return items
}

func loadItems(t *testing.T, c *Controller[item], items []item) {
	t.Helper()
	_, err := c.Load(context.Background(), func(context.Context) ([]item, error) {
		return items, nil
	})
	require.NoError(t, err)
}

func TestPagination(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	assert.Equal(t, 3, c.TotalPages())
	assert.Equal(t, 23, c.FilteredCount())
	assert.Len(t, c.DerivedView(), 9)

	view := c.GoToPage(3)
	assert.Len(t, view, 5)
	assert.Equal(t, 3, c.CurrentPage())
}

func TestGoToPageClamps(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	c.GoToPage(5)
	assert.Equal(t, 3, c.CurrentPage())

	c.GoToPage(0)
	assert.Equal(t, 1, c.CurrentPage())

	c.GoToPage(-7)
	assert.Equal(t, 1, c.CurrentPage())
}

func TestEmptySourceHasOnePage(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, nil)

	assert.Equal(t, 1, c.TotalPages())
	assert.Equal(t, 1, c.CurrentPage())
	assert.Empty(t, c.DerivedView())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, []item{
		{ID: 1, Title: "Beach Walk"},
		{ID: 2, Title: "Mountain Hike"},
		{ID: 3, Title: "Private beach dinner"},
	})

	view := c.SetSearchTerm("BEACH")
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 3, view[1].ID)

	view = c.SetSearchTerm("  beach  ")
	assert.Len(t, view, 2)

	view = c.SetSearchTerm("")
	assert.Len(t, view, 3)
}

func TestSearchResetsPage(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	c.GoToPage(3)
	c.SetSearchTerm("Tour 1")
	assert.Equal(t, 1, c.CurrentPage())
}

func TestFilterExactMatchAndAllSentinel(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	c.SetFilter("category", "1")
	for _, i := range c.DerivedView() {
		assert.Equal(t, "1", i.Category)
	}
	filteredCount := c.FilteredCount()
	assert.Less(t, filteredCount, 23)

	c.SetFilter("category", FilterAll)
	assert.Equal(t, 23, c.FilteredCount())
}

func TestSearchAndFilterCombine(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, []item{
		{ID: 1, Title: "Beach Walk", Category: "1"},
		{ID: 2, Title: "Beach Dive", Category: "2"},
		{ID: 3, Title: "City Walk", Category: "1"},
	})

	c.SetSearchTerm("beach")
	c.SetFilter("category", "1")

	view := c.DerivedView()
	require.Len(t, view, 1)
	assert.Equal(t, 1, view[0].ID)
}

func TestSortIsStableOnTies(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, []item{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 50},
		{ID: 4, Price: 100},
	})

	view := c.SetSort("price-low")
	require.Len(t, view, 4)
	assert.Equal(t, []int{3, 1, 2, 4}, []int{view[0].ID, view[1].ID, view[2].ID, view[3].ID})
}

func TestUnknownSortKeyKeepsOriginalOrder(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(5))

	view := c.SetSort("nope")
	require.Len(t, view, 5)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 5, view[4].ID)
}

func TestDerivedViewIsIdempotent(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))
	c.SetSearchTerm("Tour 1")
	c.SetSort("price-high")

	first := c.DerivedView()
	second := c.DerivedView()
	assert.Equal(t, first, second)
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	c.GoToPage(3)
	c.SetPageSize(5)
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 5, c.TotalPages())
	assert.Len(t, c.DerivedView(), 5)
}

func TestShrinkingFilterReclampsPage(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))

	c.GoToPage(3)
	view := c.SetFilter("category", "1")
	assert.Equal(t, 1, c.CurrentPage())
	assert.NotEmpty(t, view)
}

func TestLoadFailureKeepsPreviousSource(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(5))

	boom := errors.New("boom")
	_, err := c.Load(context.Background(), func(context.Context) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, c.Err(), boom)
	assert.Len(t, c.Source(), 5)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	c := NewController(itemConfig())

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := c.Load(context.Background(), func(context.Context) ([]item, error) {
			close(started)
			<-release
			return makeItems(100), nil
		})
		done <- err
	}()

	// The slow fetch above already took its sequence token; this newer load
	// finishes first and must win.
	<-started
	loadItems(t, c, makeItems(5))

	close(release)
	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Len(t, c.Source(), 5)
	assert.NoError(t, c.Err())
}

func TestReloadResetsToFirstPage(t *testing.T) {
	c := NewController(itemConfig())
	loadItems(t, c, makeItems(23))
	c.GoToPage(3)

	loadItems(t, c, makeItems(23))
	assert.Equal(t, 1, c.CurrentPage())
}
