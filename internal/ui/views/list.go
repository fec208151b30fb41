package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"quicklaunch/internal/domain"
)

// StatusKind picks the style of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Input      string // rendered query buffer
	Query      string
	Rows       domain.FilteredView
	Selected   int
	Offset     int
	MaxVisible int
	Total      int // catalog size
	Status     string
	StatusKind StatusKind
	HelpView   string
	HasScanned bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("quicklaunch"))
	content.WriteString("\n")
	content.WriteString(state.Input)
	content.WriteString("\n\n")

	content.WriteString(r.renderRows(state))

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderRows(state ViewState) string {
	if len(state.Rows) == 0 {
		switch {
		case !state.HasScanned:
			return r.styles.Dim.Render("Looking for applications...") + "\n"
		case state.Total == 0:
			return r.styles.Dim.Render("No applications found") + "\n"
		default:
			return r.styles.Dim.Render(fmt.Sprintf("Nothing matches %q", state.Query)) + "\n"
		}
	}

	start, end := Window(state.Offset, state.MaxVisible, len(state.Rows))
	b := &strings.Builder{}

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		name := highlightMatch(state.Rows[i].Name, state.Query, r.styles)
		if i == state.Selected {
			b.WriteString(r.styles.SelectedRow.Render(name))
		} else {
			b.WriteString(r.styles.Row.Render(name))
		}
		b.WriteString("\n")
	}

	if rest := len(state.Rows) - end; rest > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	switch state.StatusKind {
	case StatusError:
		return r.styles.StatusError.Render(state.Status)
	case StatusLoading:
		return r.styles.StatusLoading.Render(state.Status)
	}

	line := fmt.Sprintf("%d/%d", len(state.Rows), state.Total)
	if entry, ok := state.Rows.At(state.Selected); ok {
		line += "  " + r.styles.Path.Render(entry.Path)
	}
	if state.Status != "" {
		line += "  " + r.styles.StatusSuccess.Render(state.Status)
	}
	return r.styles.Dim.Render(line)
}

// Window returns the half-open row range [start, end) rendered for a list of n
// rows scrolled to offset.
func Window(offset, maxVisible, n int) (int, int) {
	if maxVisible <= 0 || maxVisible > n {
		maxVisible = n
	}
	start := max(0, min(offset, n-maxVisible))
	return start, start + maxVisible
}

// Scroll returns the offset that keeps selected inside a window of maxVisible
// rows, moving the window as little as possible.
func Scroll(offset, selected, maxVisible, n int) int {
	if maxVisible <= 0 || n <= maxVisible {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+maxVisible {
		offset = selected - maxVisible + 1
	}
	return max(0, min(offset, n-maxVisible))
}

// highlightMatch styles the first case-insensitive occurrence of query in name
func highlightMatch(name, query string, styles *Styles) string {
	start, end, ok := foldIndex(name, query)
	if !ok {
		return name
	}
	return name[:start] + styles.Match.Render(name[start:end]) + name[end:]
}

// foldIndex finds the first run of runes in s that equals query under simple
// case folding and returns its byte range in s. Offsets always fall on rune
// boundaries of s.
func foldIndex(s, query string) (int, int, bool) {
	if query == "" {
		return 0, 0, false
	}
	for start := range s {
		end, ok := foldPrefix(s[start:], query)
		if ok {
			return start, start + end, true
		}
	}
	return 0, 0, false
}

// foldPrefix reports whether s starts with query under simple case folding,
// and how many bytes of s the match covers
func foldPrefix(s, query string) (int, bool) {
	n := 0
	for _, q := range query {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !equalFold(r, q) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
