package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPageWindow(t *testing.T) {
	tests := []struct {
		name             string
		current, total   int
		pages            []int
		firstShortcut    bool
		leadingEllipsis  bool
		lastShortcut     bool
		trailingEllipsis bool
	}{
		{name: "single page", current: 1, total: 1, pages: []int{1}},
		{name: "fits entirely", current: 2, total: 4, pages: []int{1, 2, 3, 4}},
		{name: "start of long list", current: 1, total: 20, pages: []int{1, 2, 3, 4, 5}, lastShortcut: true, trailingEllipsis: true},
		{name: "middle of long list", current: 10, total: 20, pages: []int{8, 9, 10, 11, 12}, firstShortcut: true, leadingEllipsis: true, lastShortcut: true, trailingEllipsis: true},
		{name: "end of long list", current: 20, total: 20, pages: []int{16, 17, 18, 19, 20}, firstShortcut: true, leadingEllipsis: true},
		{name: "near start keeps five", current: 2, total: 20, pages: []int{1, 2, 3, 4, 5}, lastShortcut: true, trailingEllipsis: true},
		{name: "near end keeps five", current: 19, total: 20, pages: []int{16, 17, 18, 19, 20}, firstShortcut: true, leadingEllipsis: true},
		{name: "current beyond total clamps", current: 99, total: 3, pages: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := BuildPageWindow(tt.current, tt.total)
			assert.Equal(t, tt.pages, w.Pages)
			assert.Equal(t, tt.firstShortcut, w.FirstShortcut)
			assert.Equal(t, tt.leadingEllipsis, w.LeadingEllipsis)
			assert.Equal(t, tt.lastShortcut, w.LastShortcut)
			assert.Equal(t, tt.trailingEllipsis, w.TrailingEllipsis)
			assert.Equal(t, tt.total, w.TotalPages)
		})
	}
}
