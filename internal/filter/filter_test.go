package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicklaunch/internal/domain"
)

func catalogOf(names ...string) domain.Catalog {
	c := make(domain.Catalog, len(names))
	for i, n := range names {
		c[i] = domain.AppEntry{Name: n, Path: "/apps/" + n + ".lnk"}
	}
	return c
}

func namesOf(v domain.FilteredView) []string {
	names := make([]string, len(v))
	for i, e := range v {
		names[i] = e.Name
	}
	return names
}

func TestFilterSubstringKeepsOrder(t *testing.T) {
	catalog := catalogOf("Calculator", "Notepad", "NotepadPlusPlus")

	view := Filter(catalog, "note")

	assert.Equal(t, []string{"Notepad", "NotepadPlusPlus"}, namesOf(view))
}

func TestFilterEmptyQueryReturnsWholeCatalog(t *testing.T) {
	catalog := catalogOf("Calculator", "Notepad", "Zoom")

	view := Filter(catalog, "")

	assert.Equal(t, domain.FilteredView(catalog), view)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	catalog := catalogOf("Calculator", "Notepad", "VS Code", "notes")

	assert.Equal(t, Filter(catalog, "note"), Filter(catalog, "NOTE"))
	assert.Equal(t, []string{"Notepad", "notes"}, namesOf(Filter(catalog, "NoTe")))
}

func TestFilterNoMatchAndEmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(catalogOf("Calculator"), "zzz"))
	assert.Empty(t, Filter(nil, ""))
	assert.Empty(t, Filter(nil, "a"))
}

func TestFilterDoesNotAliasCatalog(t *testing.T) {
	catalog := catalogOf("Alpha", "Beta")

	view := Filter(catalog, "")
	view[0] = domain.AppEntry{Name: "Changed"}

	assert.Equal(t, "Alpha", catalog[0].Name)
}

func TestFilterIsDeterministic(t *testing.T) {
	catalog := catalogOf("Chrome", "Firefox", "Steam", "Terminal", "VLC Media Player")

	first := Filter(catalog, "e")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Filter(catalog, "e"))
	}
}

func TestFilterNarrowsMonotonically(t *testing.T) {
	catalog := catalogOf(
		"Calculator", "Chrome", "Firefox", "Notepad", "NotepadPlusPlus",
		"Spotify", "Steam", "Terminal", "VLC Media Player", "VS Code",
		"Visual Studio", "Word", "Xbox", "Zoom",
	)
	chains := [][]string{
		{"", "o", "ot", "note", "notepadp"},
		{"", "s", "st", "stu", "studio"},
		{"", "m", "me", "med", "media player"},
		{"", "pad", "epad", "tepad", "otepadp", "notepadpl"},
	}
	// Every name grown one character at a time, from both ends.
	for _, entry := range catalog {
		name := strings.ToLower(entry.Name)
		prefixes := []string{""}
		suffixes := []string{""}
		for i := 1; i <= len(name); i++ {
			prefixes = append(prefixes, name[:i])
			suffixes = append(suffixes, name[len(name)-i:])
		}
		chains = append(chains, prefixes, suffixes)
	}

	for _, chain := range chains {
		for i := 1; i < len(chain); i++ {
			wider := Filter(catalog, chain[i-1])
			narrower := Filter(catalog, chain[i])
			require.True(t, isSubsequence(narrower, wider),
				"%q result %v is not a subsequence of %q result %v",
				chain[i], namesOf(narrower), chain[i-1], namesOf(wider))
		}
	}
}

func isSubsequence(sub, of domain.FilteredView) bool {
	j := 0
	for _, e := range of {
		if j < len(sub) && sub[j] == e {
			j++
		}
	}
	return j == len(sub)
}
