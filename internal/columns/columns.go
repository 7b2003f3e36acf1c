// Package columns decides which equipment columns are worth rendering.
// The matrix is sparse per cabinet, so all-zero slots are hidden; an
// active search pivots to matching header labels instead.
package columns

import (
	"strconv"
	"strings"
)

// Canonical is the number of leading columns (area, cabinet, description)
// that are always visible.
const Canonical = 3

// Visible computes the visible column indices for an equipment grid, in
// ascending order. The first Canonical indices are always included. For
// each index beyond them:
//   - with a search term, the column is visible iff its header label
//     contains the term, case-insensitively;
//   - otherwise it is visible iff at least one of the given data rows has
//     a cell parsing as an integer greater than zero.
func Visible(header []string, rows [][]string, search string) []int {
	width := len(header)
	visible := make([]int, 0, width)
	for i := 0; i < Canonical && i < width; i++ {
		visible = append(visible, i)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	for i := Canonical; i < width; i++ {
		if needle != "" {
			if strings.Contains(strings.ToLower(header[i]), needle) {
				visible = append(visible, i)
			}
			continue
		}
		if columnHasPositiveValue(rows, i) {
			visible = append(visible, i)
		}
	}
	return visible
}

func columnHasPositiveValue(rows [][]string, col int) bool {
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[col]))
		if err == nil && n > 0 {
			return true
		}
	}
	return false
}
