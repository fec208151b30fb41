package discovery

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"quicklaunch/internal/domain"
)

// Options controls what a scan considers launchable
type Options struct {
	BaseDirs   []string // scanned in order; earlier directories win on duplicate names
	Extensions []string // accepted file extensions, with or without the leading dot
	Exclude    []string // case-insensitive name substrings that drop a candidate
}

// Discover walks the base directories and returns a sorted, deduplicated catalog.
// It never fails: missing directories and unreadable entries are skipped.
func Discover(ctx context.Context, opts Options) domain.Catalog {
	exts := normalizeExtensions(opts.Extensions)
	exclude := normalizeSubstrings(opts.Exclude)

	var entries []domain.AppEntry
	for _, root := range opts.BaseDirs {
		for entry := range candidates(ctx, root, exts) {
			if isExcluded(entry.Name, exclude) {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return buildCatalog(entries)
}

// buildCatalog sorts entries by name and keeps the first of every run of equal names.
// The sort is stable, so traversal order decides which path survives.
func buildCatalog(entries []domain.AppEntry) domain.Catalog {
	slices.SortStableFunc(entries, func(a, b domain.AppEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	entries = slices.CompactFunc(entries, func(a, b domain.AppEntry) bool {
		return a.Name == b.Name
	})
	return domain.Catalog(entries)
}

// candidates yields an entry for every accepted file under root.
func candidates(ctx context.Context, root string, exts map[string]bool) iter.Seq[domain.AppEntry] {
	return func(yield func(domain.AppEntry) bool) {
		for path := range walkFiles(ctx, root) {
			name, ok := entryName(path, exts)
			if !ok {
				continue
			}
			if !yield(domain.AppEntry{Name: name, Path: path}) {
				return
			}
		}
	}
}

// walkFiles yields the regular files below root. Errors on individual entries are
// logged and skipped; a missing root yields nothing.
func walkFiles(ctx context.Context, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if _, err := os.Stat(root); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Skipping base directory %s: %v", root, err)
			}
			return
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			// Skip on error
			if err != nil {
				log.Printf("Error walking path %s: %v", path, err)
				return nil
			}

			if d.IsDir() || !isRegularFile(path, d) {
				return nil
			}

			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})

		if err != nil && ctx.Err() == nil {
			log.Printf("Error scanning directory %s: %v", root, err)
		}
	}
}

// isRegularFile accepts regular files and symlinks that resolve to one
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Skipping broken link %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}

// entryName returns the display name for path if its extension is accepted.
// Names that are not valid UTF-8 are repaired rather than dropped.
func entryName(path string, exts map[string]bool) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || !exts[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return "", false
	}
	return strings.ToValidUTF8(name, "\uFFFD"), true
}

func isExcluded(name string, exclude []string) bool {
	lower := strings.ToLower(name)
	for _, s := range exclude {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

func normalizeExtensions(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = true
		}
	}
	return set
}

// normalizeSubstrings lower-cases the exclusion list and drops empty entries,
// which would otherwise match every name.
func normalizeSubstrings(subs []string) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		if s = strings.ToLower(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
