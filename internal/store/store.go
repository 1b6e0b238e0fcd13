package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Aaryadeep-Coder/cine-stream/internal/domain"
)

// Store owns the in-memory movie and watch-progress collections so higher
// layers can focus on business logic. A single RWMutex serializes mutations,
// which makes the read-modify-write inside UpsertProgress atomic with respect
// to concurrent requests. Data lives for the process lifetime only.
type Store struct {
	mu       sync.RWMutex
	movies   map[string]domain.Movie
	order    []string
	progress map[string]domain.WatchProgress
	logger   *logrus.Logger
}

// MovieCreateParams bundles the fields required to create a movie.
type MovieCreateParams struct {
	Title         string
	Description   string
	Synopsis      string
	Year          int
	Duration      string
	Rating        string
	ImdbRating    string
	PosterImage   string
	BackdropImage string
	VideoURL      *string
	Genres        []string
	Cast          string
	Director      string
	Language      string
	IsFeatured    bool
	IsTrending    bool
	IsPopular     bool
}

// New constructs an empty store. Seeding is the caller's responsibility.
func New(logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		movies:   make(map[string]domain.Movie),
		progress: make(map[string]domain.WatchProgress),
		logger:   logger,
	}
}

// CreateMovie assigns a fresh id and creation timestamp, stores the movie,
// and returns the stored entity. It never fails under normal input.
func (s *Store) CreateMovie(params MovieCreateParams) domain.Movie {
	movie := domain.Movie{
		ID:            uuid.NewString(),
		Title:         params.Title,
		Description:   params.Description,
		Synopsis:      params.Synopsis,
		Year:          params.Year,
		Duration:      params.Duration,
		Rating:        params.Rating,
		ImdbRating:    params.ImdbRating,
		PosterImage:   params.PosterImage,
		BackdropImage: params.BackdropImage,
		VideoURL:      params.VideoURL,
		Genres:        cloneGenres(params.Genres),
		Cast:          params.Cast,
		Director:      params.Director,
		Language:      params.Language,
		IsFeatured:    params.IsFeatured,
		IsTrending:    params.IsTrending,
		IsPopular:     params.IsPopular,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.movies[movie.ID] = movie
	s.order = append(s.order, movie.ID)
	s.mu.Unlock()

	return cloneMovie(movie)
}

// GetMovie fetches a movie by exact id match.
func (s *Store) GetMovie(id string) (domain.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie, ok := s.movies[id]
	if !ok {
		return domain.Movie{}, false
	}
	return cloneMovie(movie), true
}

// ListMovies returns a snapshot of all movies in insertion order.
func (s *Store) ListMovies() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Movie, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, cloneMovie(s.movies[id]))
	}
	return items
}

// GetProgress returns the record for a (movie, user) pair. The collection is
// small, so a linear scan is fine.
func (s *Store) GetProgress(movieID, userID string) (domain.WatchProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.progress {
		if record.MovieID == movieID && record.UserID == userID {
			return record, true
		}
	}
	return domain.WatchProgress{}, false
}

// UpsertProgress overwrites the existing record for the pair or inserts a new
// one, refreshing LastWatched either way. The second return value reports
// whether a record was newly created.
func (s *Store) UpsertProgress(movieID, userID string, percent int) (domain.WatchProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for id, record := range s.progress {
		if record.MovieID == movieID && record.UserID == userID {
			record.Progress = percent
			record.LastWatched = now
			s.progress[id] = record
			return record, false
		}
	}

	record := domain.WatchProgress{
		ID:          uuid.NewString(),
		MovieID:     movieID,
		UserID:      userID,
		Progress:    percent,
		LastWatched: now,
	}
	s.progress[record.ID] = record
	return record, true
}

// ListProgressByUser returns every progress record tagged with userID.
// Order is unspecified; callers that care must sort.
func (s *Store) ListProgressByUser(userID string) []domain.WatchProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.WatchProgress, 0)
	for _, record := range s.progress {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	return records
}

// Counts reports collection sizes for health and logging.
func (s *Store) Counts() (movies, progress int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies), len(s.progress)
}

// HealthCheck verifies the store is usable.
func (s *Store) HealthCheck() error {
	if s == nil || s.movies == nil {
		return fmt.Errorf("store not initialized")
	}
	return nil
}

func cloneMovie(movie domain.Movie) domain.Movie {
	movie.Genres = cloneGenres(movie.Genres)
	return movie
}

func cloneGenres(genres []string) []string {
	if genres == nil {
		return nil
	}
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}
