// Package content supplies the static blocks shown in the help viewer.
package content

import (
	_ "embed"
	"strings"
)

//go:embed help.txt
var helpText string

// Tab is a titled block of text lines.
type Tab struct {
	Title string
	Lines []string
}

// Text joins the tab's lines.
func (t Tab) Text() string { return strings.Join(t.Lines, "\n") }

// Help returns the built-in help document split into tabs.
func Help() []Tab { return Parse(helpText) }

// Parse splits doc into tabs at headings underlined with '=' characters.
// Text before the first heading becomes an untitled tab. Leading and
// trailing blank lines of each tab are dropped.
func Parse(doc string) []Tab {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")

	var tabs []Tab
	cur := Tab{}
	flush := func() {
		cur.Lines = trimBlank(cur.Lines)
		if cur.Title != "" || len(cur.Lines) > 0 {
			tabs = append(tabs, cur)
		}
	}
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if i+1 < len(lines) && isUnderline(lines[i+1], ln) {
			flush()
			cur = Tab{Title: strings.TrimSpace(ln)}
			i++
			continue
		}
		cur.Lines = append(cur.Lines, strings.TrimRight(ln, " \t"))
	}
	flush()
	return tabs
}

// isUnderline reports whether under is a row of '=' at least as long as the
// non-blank heading above it.
func isUnderline(under, heading string) bool {
	u := strings.TrimSpace(under)
	h := strings.TrimSpace(heading)
	if h == "" || len(u) < len([]rune(h)) {
		return false
	}
	return strings.Trim(u, "=") == ""
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Find returns the tab titled title.
func Find(tabs []Tab, title string) (Tab, bool) {
	for _, t := range tabs {
		if strings.EqualFold(t.Title, title) {
			return t, true
		}
	}
	return Tab{}, false
}
