package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSplitsAtUnderlinedHeadings(t *testing.T) {
	doc := "intro line\n\nFirst\n=====\n\nbody 1\n  indented  \n\nSecond one\n==========\nbody 2\n\n"
	tabs := Parse(doc)
	require.Len(t, tabs, 3)
	require.Equal(t, "", tabs[0].Title)
	require.Equal(t, []string{"intro line"}, tabs[0].Lines)
	require.Equal(t, "First", tabs[1].Title)
	require.Equal(t, []string{"body 1", "  indented"}, tabs[1].Lines)
	require.Equal(t, "Second one", tabs[2].Title)
	require.Equal(t, "body 2", tabs[2].Text())
}

func TestParseIgnoresShortUnderline(t *testing.T) {
	tabs := Parse("Heading\n===\ntext\n")
	require.Len(t, tabs, 1)
	require.Equal(t, "", tabs[0].Title)
	require.Equal(t, []string{"Heading", "===", "text"}, tabs[0].Lines)
}

func TestHelpHasTabs(t *testing.T) {
	tabs := Help()
	require.GreaterOrEqual(t, len(tabs), 3)
	tab, ok := Find(tabs, "axis preferences")
	require.True(t, ok)
	require.Contains(t, tab.Text(), "Logarithmic")
}

func TestAbout(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tab := About(Info{
		Name:      "Measuredesk",
		Version:   "1.2.0",
		Website:   "https://example.com",
		Started:   start,
		Now:       start.Add(90 * time.Minute),
		HeapInUse: 3 * 1000 * 1000,
	})
	text := tab.Text()
	require.Equal(t, "About", tab.Title)
	require.True(t, strings.HasPrefix(text, "Measuredesk 1.2.0"))
	require.Contains(t, text, "1 h 30 m")
	require.Contains(t, text, "3.0 MB")

	tab = About(Info{Started: start, Now: start})
	require.Contains(t, tab.Text(), "just started")
}

func TestMustUnits(t *testing.T) {
	u := mustUnits("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
	require.Equal(t, shortUnits, u)
	require.Panics(t, func() { mustUnits("h:h") })
}
