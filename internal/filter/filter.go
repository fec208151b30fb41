package filter

import (
	"strings"

	"quicklaunch/internal/domain"
)

// Filter returns the catalog entries whose name contains query, ignoring case.
// Catalog order is preserved and an empty query matches everything.
// The result is a fresh slice; it never shares the catalog's backing array.
func Filter(catalog domain.Catalog, query string) domain.FilteredView {
	view := make(domain.FilteredView, 0, len(catalog))
	if query == "" {
		return append(view, catalog...)
	}

	needle := strings.ToLower(query)
	for _, entry := range catalog {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			view = append(view, entry)
		}
	}
	return view
}
