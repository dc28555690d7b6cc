package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithoutMarkersReturnsInputUnchanged(t *testing.T) {
	text := "Just a friendly chat about movies.\n\nNothing to see here."

	payload := Format(text)

	assert.Equal(t, text, payload.CleanText)
	assert.Empty(t, payload.Gallery)
}

func TestFormatSingleMovie(t *testing.T) {
	annotated := "Title: Inception\nYear: 2010\nPlot: A thief steals secrets through dreams.\n" +
		"[POSTER_URL: https://image.tmdb.org/t/p/w500/poster.jpg]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 1)
	assert.Equal(t, "Inception", payload.Gallery[0].Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", payload.Gallery[0].URL)
	assert.NotContains(t, payload.CleanText, "POSTER_URL")
	assert.Contains(t, payload.CleanText, "Title: Inception")
}

func TestFormatReturnsOnePairPerMarker(t *testing.T) {
	annotated := "Title: Inception\nYear: 2010\n[POSTER_URL: u1]\n\n" +
		"Title: Memento\nYear: 2000\n[POSTER_URL: u2]\n\n" +
		"Title: Dunkirk\nYear: 2017\n[POSTER_URL: u3]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 3)
	assert.Equal(t, "Inception", payload.Gallery[0].Title)
	assert.Equal(t, "Memento", payload.Gallery[1].Title)
	assert.Equal(t, "Dunkirk", payload.Gallery[2].Title)
	assert.Equal(t, "u2", payload.Gallery[1].URL)
	assert.NotContains(t, payload.CleanText, "[POSTER_URL")
}

func TestFormatOnlySuccessfulLookupInGallery(t *testing.T) {
	// Second movie paragraph got no poster, so only one marker exists.
	annotated := "Title: Inception\nYear: 2010\n[POSTER_URL: u1]\n\n" +
		"Title: Memento\nYear: 2000"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 1)
	assert.Equal(t, "u1", payload.Gallery[0].URL)
	assert.Equal(t, "Inception", payload.Gallery[0].Title)
}

func TestFormatFallsBackToPrecedingLine(t *testing.T) {
	annotated := "A mind-bending heist flick\nwith an all-star cast.\n[POSTER_URL: u1]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 1)
	assert.Equal(t, "A mind-bending heist flick", payload.Gallery[0].Title)
}

func TestFormatFallbackSkipsBulletLines(t *testing.T) {
	annotated := "- first bullet point\n- second bullet point\n[POSTER_URL: u1]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 1)
	assert.Equal(t, "Movie 1", payload.Gallery[0].Title)
}

func TestFormatFallbackSkipsOverlongLines(t *testing.T) {
	long := strings.Repeat("x", 120)
	annotated := long + "\nShort line\n[POSTER_URL: u1]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 1)
	assert.Equal(t, "Short line", payload.Gallery[0].Title)
}

func TestFormatPlaceholderNumbering(t *testing.T) {
	// No titles anywhere: every poster gets a placeholder numbered among
	// the posters lacking a title.
	annotated := "- a\n[POSTER_URL: u1]\n\n- b\n[POSTER_URL: u2]"

	payload := Format(annotated)

	require.Len(t, payload.Gallery, 2)
	assert.Equal(t, "Movie 1", payload.Gallery[0].Title)
	assert.Equal(t, "Movie 2", payload.Gallery[1].Title)
}

func TestFormatIdempotentOnCleanText(t *testing.T) {
	annotated := "Title: Inception\nYear: 2010\n[POSTER_URL: u1]\n\nEnjoy!"

	first := Format(annotated)
	second := Format(first.CleanText)

	assert.Equal(t, first.CleanText, second.CleanText)
	assert.Empty(t, second.Gallery)
}
