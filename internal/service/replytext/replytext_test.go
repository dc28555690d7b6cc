package replytext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassifiesParagraphs(t *testing.T) {
	text := "Here are some picks for you!\n\n" +
		"Title: Inception\nYear: 2010\nPlot: A thief steals secrets through dreams.\n\n" +
		"The Matrix (1999) is a classic too."

	nodes := Parse(text)
	require.Len(t, nodes, 3)

	assert.Equal(t, Prose, nodes[0].Kind)
	assert.Equal(t, "Here are some picks for you!", nodes[0].Text)

	assert.Equal(t, Movie, nodes[1].Kind)
	assert.Equal(t, "Inception", nodes[1].Title)
	assert.Equal(t, "2010", nodes[1].Year)

	assert.Equal(t, Movie, nodes[2].Kind)
	assert.Equal(t, "The Matrix", nodes[2].Title)
	assert.Equal(t, "1999", nodes[2].Year)
}

func TestParseEmitsMarkerNodes(t *testing.T) {
	text := "Title: Inception (2010)\n[POSTER_URL: https://img/poster.jpg]\n\nEnjoy!"

	nodes := Parse(text)
	require.Len(t, nodes, 3)

	assert.Equal(t, Movie, nodes[0].Kind)
	assert.Equal(t, Marker, nodes[1].Kind)
	assert.Equal(t, "https://img/poster.jpg", nodes[1].URL)
	assert.Equal(t, Prose, nodes[2].Kind)
}

func TestParseSkipsBlankChunks(t *testing.T) {
	nodes := Parse("\n\n\n\nhello\n\n\n\n")
	require.Len(t, nodes, 1)
	assert.Equal(t, "hello", nodes[0].Text)
}

func TestParsePrefersTitleFieldOverYearSuffix(t *testing.T) {
	nodes := Parse("1. Interstellar (2014)\nTitle: Interstellar\nYear: 2014")
	require.Len(t, nodes, 1)
	assert.Equal(t, "Interstellar", nodes[0].Title)
	assert.Equal(t, "2014", nodes[0].Year)
}

func TestParseMovieWithoutTitle(t *testing.T) {
	// Year pattern flags the paragraph as a movie block even when no
	// title can be extracted from it.
	nodes := Parse("released back in (1999), or so they say")
	require.Len(t, nodes, 1)
	assert.Equal(t, Movie, nodes[0].Kind)
	assert.Equal(t, "1999", nodes[0].Year)
}

func TestMarkersInOrder(t *testing.T) {
	text := "a\n[POSTER_URL: u1]\n\nb\n[POSTER_URL: u2]"
	assert.Equal(t, []string{"u1", "u2"}, Markers(text))
	assert.Nil(t, Markers("no markers here"))
}

func TestStripMarkers(t *testing.T) {
	text := "para one\n[POSTER_URL: u1]\n\npara two"
	assert.Equal(t, "para one\n\n\npara two", StripMarkers(text))
	assert.Equal(t, "untouched", StripMarkers("untouched"))
}

func TestFieldTitles(t *testing.T) {
	text := "Title: Inception\nstuff\nTitle: Memento\n"
	assert.Equal(t, []string{"Inception", "Memento"}, FieldTitles(text))
}

func TestCapitalizedTitles(t *testing.T) {
	text := "The Matrix (1999)\nBlade Runner (1982)"
	assert.Equal(t, []string{"The Matrix", "Blade Runner"}, CapitalizedTitles(text))
}

func TestCapitalizedTitlesKeepsLeadingWords(t *testing.T) {
	// The capture runs from the first capitalized word on the line, so
	// surrounding prose before the year lands in the title.
	assert.Equal(t,
		[]string{"He said watch The Matrix"},
		CapitalizedTitles("and then He said watch The Matrix (1999)"))
}
