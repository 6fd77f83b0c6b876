package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRow(t *testing.T) {
	rows := AddRow([]string{"a"})
	assert.Equal(t, []string{"a", ""}, rows)
}

func TestRemoveRowKeepsFloorOfOne(t *testing.T) {
	assert.Equal(t, []string{"a"}, RemoveRow([]string{"a"}, 0))
	assert.Equal(t, []string{"a", "c"}, RemoveRow([]string{"a", "b", "c"}, 1))
	assert.Equal(t, []string{"a", "b"}, RemoveRow([]string{"a", "b"}, 5))
	assert.Equal(t, []string{"a", "b"}, RemoveRow([]string{"a", "b"}, -1))
}

func TestNormalizeRowsDropsBlanks(t *testing.T) {
	got := NormalizeRows([]string{"", "http://x.jpg", "  ", "http://y.jpg"}, "placeholder")
	assert.Equal(t, []string{"http://x.jpg", "http://y.jpg"}, got)
}

func TestNormalizeRowsAllBlankUsesPlaceholder(t *testing.T) {
	assert.Equal(t, []string{"placeholder"}, NormalizeRows([]string{"", "  "}, "placeholder"))
	assert.Equal(t, []string{"placeholder"}, NormalizeRows(nil, "placeholder"))
}
