package core

import (
	"fmt"
	"slices"
	"strings"
)

// BuildCategoryMap folds a raw category column into a CategoryMap. Each
// cell is expected to read "<Main> - <Sub>"; the first cell is a header
// and skipped. Subcategories are appended with order-preserving
// de-duplication.
//
// The first subcategory of a newly seen main category is not recorded:
// its list starts with a single empty-string placeholder. The web client
// renders against this shape, so it is kept as-is.
//
// A cell without a '-' fails the whole build with ErrMalformedRow.
// An empty column yields an empty map.
func BuildCategoryMap(cells []string) (CategoryMap, error) {
	m := CategoryMap{}
	if len(cells) == 0 {
		return m, nil
	}
	for _, cell := range cells[1:] {
		main, sub, ok := splitCategory(cell)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRow, cell)
		}
		subs, seen := m[main]
		if !seen {
			m[main] = []string{""}
			continue
		}
		if !slices.Contains(subs, sub) {
			m[main] = append(subs, sub)
		}
	}
	return m, nil
}

// splitCategory splits on the first '-' into two trimmed parts.
func splitCategory(cell string) (main, sub string, ok bool) {
	i := strings.Index(cell, "-")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(cell[:i]), strings.TrimSpace(cell[i+1:]), true
}
