package infra_qdrant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	doc := `{
		"title": "Inception",
		"year": 2010,
		"genre": ["Sci-Fi", "Thriller"],
		"director": "Christopher Nolan",
		"actors": ["Leonardo DiCaprio", "Elliot Page"],
		"plot": "A thief steals secrets through dreams."
	}`

	rec, ok := decodeRecord("42", doc)
	require.True(t, ok)

	assert.Equal(t, "42", rec.ID)
	assert.Equal(t, "Inception", rec.Title)
	assert.Equal(t, 2010, rec.Year)
	assert.Equal(t, []string{"Sci-Fi", "Thriller"}, rec.Genres)
	assert.Equal(t, "Christopher Nolan", rec.Director)
	assert.Equal(t, []string{"Leonardo DiCaprio", "Elliot Page"}, rec.Actors)
	assert.Equal(t, "A thief steals secrets through dreams.", rec.Plot)
}

func TestDecodeRecordCoercesScalarFields(t *testing.T) {
	// Older index builds stored year and list fields as plain strings.
	doc := `{"title": "Memento", "year": "2000", "genre": "Thriller", "actors": "Guy Pearce"}`

	rec, ok := decodeRecord("7", doc)
	require.True(t, ok)

	assert.Equal(t, 2000, rec.Year)
	assert.Equal(t, []string{"Thriller"}, rec.Genres)
	assert.Equal(t, []string{"Guy Pearce"}, rec.Actors)
}

func TestDecodeRecordToleratesMissingFields(t *testing.T) {
	rec, ok := decodeRecord("7", `{"title": "Memento"}`)
	require.True(t, ok)

	assert.Equal(t, "Memento", rec.Title)
	assert.Zero(t, rec.Year)
	assert.Nil(t, rec.Genres)
	assert.Empty(t, rec.Director)
	assert.Empty(t, rec.Plot)
}

func TestDecodeRecordRejectsBadBlobs(t *testing.T) {
	_, ok := decodeRecord("7", "")
	assert.False(t, ok)

	_, ok = decodeRecord("7", "not json at all")
	assert.False(t, ok)
}

func TestDecodeRecordIgnoresUnparsableYear(t *testing.T) {
	rec, ok := decodeRecord("7", `{"title": "Memento", "year": "two thousand"}`)
	require.True(t, ok)
	assert.Zero(t, rec.Year)
}

func TestAsStringsSkipsNonStringItems(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, asStrings([]any{"a", 1.0, "b", nil}))
	assert.Nil(t, asStrings(""))
	assert.Nil(t, asStrings(3.14))
}
