package storage_preferences

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_preferences.json")
	s, err := New(path)
	require.NoError(t, err)
	return s, path
}

func TestNewMaterializesEmptyFile(t *testing.T) {
	_, path := newStore(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestSaveFavoriteIsIdempotent(t *testing.T) {
	s, _ := newStore(t)

	added, err := s.SaveFavorite("demo_user", "Inception")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.SaveFavorite("demo_user", "Inception")
	require.NoError(t, err)
	assert.False(t, added)

	favorites, err := s.Favorites("demo_user")
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, favorites)
}

func TestDeleteAbsentFavoriteLeavesListUnchanged(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.SaveFavorite("demo_user", "Inception")
	require.NoError(t, err)

	removed, err := s.DeleteFavorite("demo_user", "Memento")
	require.NoError(t, err)
	assert.False(t, removed)

	favorites, err := s.Favorites("demo_user")
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, favorites)
}

func TestDeleteFavorite(t *testing.T) {
	s, _ := newStore(t)

	for _, title := range []string{"Inception", "Memento", "Dunkirk"} {
		_, err := s.SaveFavorite("demo_user", title)
		require.NoError(t, err)
	}

	removed, err := s.DeleteFavorite("demo_user", "Memento")
	require.NoError(t, err)
	assert.True(t, removed)

	favorites, err := s.Favorites("demo_user")
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception", "Dunkirk"}, favorites)
}

func TestLoadAfterSaveRoundTripsOrder(t *testing.T) {
	s, path := newStore(t)

	titles := []string{"Memento", "Inception", "Dunkirk"}
	for _, title := range titles {
		_, err := s.SaveFavorite("demo_user", title)
		require.NoError(t, err)
	}

	reloaded, err := New(path)
	require.NoError(t, err)

	favorites, err := reloaded.Favorites("demo_user")
	require.NoError(t, err)
	assert.Equal(t, titles, favorites)
}

func TestFileShape(t *testing.T) {
	s, path := newStore(t)

	_, err := s.SaveFavorite("demo_user", "Inception")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]map[string][]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []string{"Inception"}, raw["demo_user"]["favorites"])
}

func TestFavoritesForUnknownUser(t *testing.T) {
	s, _ := newStore(t)

	favorites, err := s.Favorites("someone_else")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
