package storage_preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/moviemind/core/internal/model"
)

var (
	ErrFailedToLoad = errors.New("failed to load preferences")
	ErrFailedToSave = errors.New("failed to save preferences")
)

// Store keeps per-user favorite movie titles in a pretty-printed JSON
// file of the shape {"<user_id>": {"favorites": [...]}}. The whole file
// is rewritten on every mutation. Favorites are an ordered set: insertion
// order preserved, duplicates rejected.
type Store struct {
	path string

	mu    sync.Mutex
	prefs map[model.UserID]*model.UserPreferences
}

func New(path string) (*Store, error) {
	s := &Store{
		path:  path,
		prefs: make(map[model.UserID]*model.UserPreferences),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		// First run: materialize an empty preferences file.
		return s.save()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if err := json.Unmarshal(data, &s.prefs); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSave, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSave, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSave, err)
	}
	return nil
}

func (s *Store) userPrefs(userID model.UserID) *model.UserPreferences {
	p, ok := s.prefs[userID]
	if !ok {
		p = &model.UserPreferences{Favorites: []string{}}
		s.prefs[userID] = p
	}
	return p
}

// SaveFavorite adds title to the user's favorites. Returns false when the
// title is already present; the list is left untouched in that case.
func (s *Store) SaveFavorite(userID model.UserID, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.userPrefs(userID)
	for _, t := range p.Favorites {
		if t == title {
			return false, nil
		}
	}
	p.Favorites = append(p.Favorites, title)

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteFavorite removes title from the user's favorites. Returns false
// when the title was not present.
func (s *Store) DeleteFavorite(userID model.UserID, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.userPrefs(userID)
	for i, t := range p.Favorites {
		if t == title {
			p.Favorites = append(p.Favorites[:i], p.Favorites[i+1:]...)
			if err := s.save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Favorites returns a copy of the user's ordered favorites list.
func (s *Store) Favorites(userID model.UserID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prefs[userID]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(p.Favorites))
	copy(out, p.Favorites)
	return out, nil
}
