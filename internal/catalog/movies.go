package catalog

import (
	"fmt"
	"strings"

	"github.com/Aaryadeep-Coder/cine-stream/internal/domain"
	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

// Movies exposes catalog entries and the derived views over them. The view
// methods never mutate; they evaluate simple predicates against the store's
// current snapshot.
type Movies struct {
	store *store.Store
}

// Create stores a new movie and returns it with id and timestamp assigned.
func (m *Movies) Create(params store.MovieCreateParams) (domain.Movie, error) {
	return m.store.CreateMovie(params), nil
}

// Get fetches a movie by id.
func (m *Movies) Get(id string) (domain.Movie, error) {
	movie, ok := m.store.GetMovie(id)
	if !ok {
		return domain.Movie{}, ErrNotFound
	}
	return movie, nil
}

// List returns every movie in insertion order.
func (m *Movies) List() []domain.Movie {
	return m.store.ListMovies()
}

// Featured returns the first movie flagged as featured. If several carry the
// flag, the earliest-inserted one wins; the store does not enforce a single
// featured movie.
func (m *Movies) Featured() (domain.Movie, error) {
	for _, movie := range m.store.ListMovies() {
		if movie.IsFeatured {
			return movie, nil
		}
	}
	return domain.Movie{}, ErrNotFound
}

// Trending returns all movies flagged as trending, in store order.
func (m *Movies) Trending() []domain.Movie {
	return m.filter(func(movie domain.Movie) bool { return movie.IsTrending })
}

// Popular returns all movies flagged as popular, in store order.
func (m *Movies) Popular() []domain.Movie {
	return m.filter(func(movie domain.Movie) bool { return movie.IsPopular })
}

// ByGenre returns movies whose genre list contains genre, compared
// case-insensitively. An empty genre is a caller error, not an empty result.
func (m *Movies) ByGenre(genre string) ([]domain.Movie, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, fmt.Errorf("%w: genre is required", ErrInvalidInput)
	}
	return m.filter(func(movie domain.Movie) bool {
		for _, g := range movie.Genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}), nil
}

// ByLanguage returns movies whose language equals language, compared
// case-insensitively.
func (m *Movies) ByLanguage(language string) ([]domain.Movie, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, fmt.Errorf("%w: language is required", ErrInvalidInput)
	}
	return m.filter(func(movie domain.Movie) bool {
		return strings.EqualFold(movie.Language, language)
	}), nil
}

// Search returns movies where query appears, case-insensitively, as a
// substring of the title, description, any genre entry, cast, or director.
// There is no tokenization and no relevance ranking; results keep store order.
func (m *Movies) Search(query string) ([]domain.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	term := strings.ToLower(query)
	return m.filter(func(movie domain.Movie) bool {
		if strings.Contains(strings.ToLower(movie.Title), term) ||
			strings.Contains(strings.ToLower(movie.Description), term) ||
			strings.Contains(strings.ToLower(movie.Cast), term) ||
			strings.Contains(strings.ToLower(movie.Director), term) {
			return true
		}
		for _, g := range movie.Genres {
			if strings.Contains(strings.ToLower(g), term) {
				return true
			}
		}
		return false
	}), nil
}

func (m *Movies) filter(match func(domain.Movie) bool) []domain.Movie {
	all := m.store.ListMovies()
	results := make([]domain.Movie, 0, len(all))
	for _, movie := range all {
		if match(movie) {
			results = append(results, movie)
		}
	}
	return results
}
