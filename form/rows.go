package form

import "strings"

// AddRow appends an empty entry to a multi-value string field.
func AddRow(rows []string) []string {
	return append(rows, "")
}

// RemoveRow drops the entry at i, keeping a floor of one row.
func RemoveRow(rows []string, i int) []string {
	if len(rows) <= 1 || i < 0 || i >= len(rows) {
		return rows
	}
	out := make([]string, 0, len(rows)-1)
	out = append(out, rows[:i]...)
	return append(out, rows[i+1:]...)
}

// NormalizeRows filters out blank entries for submit. An all-blank list
// yields a single placeholder entry rather than an empty sequence.
func NormalizeRows(rows []string, placeholder string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r) != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}
