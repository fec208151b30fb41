package domain

// AppEntry represents one discovered launchable item
type AppEntry struct {
	Name string // display name, the file name without its extension
	Path string // path handed to the OS opener
}

// Catalog is the sorted, deduplicated result of a scan.
// Entries are strictly ascending by Name under byte-wise comparison.
// A Catalog is read-only once handed off by the scanner.
type Catalog []AppEntry

// Valid reports whether the catalog is strictly ascending by name
func (c Catalog) Valid() bool {
	for i := 1; i < len(c); i++ {
		if c[i-1].Name >= c[i].Name {
			return false
		}
	}
	return true
}

// Names returns the entry names in catalog order
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// FilteredView is the subsequence of a Catalog matching the current query.
// It is recomputed on every query change and never mutated in place.
type FilteredView []AppEntry

// At returns the entry at index and whether index is in range
func (v FilteredView) At(index int) (AppEntry, bool) {
	if index < 0 || index >= len(v) {
		return AppEntry{}, false
	}
	return v[index], true
}
