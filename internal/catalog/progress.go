package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aaryadeep-Coder/cine-stream/internal/domain"
	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

// Progress records playback progress and computes the continue-watching view.
type Progress struct {
	store *store.Store
}

// Record upserts the progress for a (movie, user) pair and reports whether a
// new record was created. The movie must exist, and percent must fall within
// [0, 100]; out-of-range values are rejected rather than clamped.
func (p *Progress) Record(movieID, userID string, percent int) (domain.WatchProgress, bool, error) {
	if strings.TrimSpace(movieID) == "" {
		return domain.WatchProgress{}, false, fmt.Errorf("%w: movieId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(userID) == "" {
		return domain.WatchProgress{}, false, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if percent < 0 || percent > 100 {
		return domain.WatchProgress{}, false, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	if _, ok := p.store.GetMovie(movieID); !ok {
		return domain.WatchProgress{}, false, ErrNotFound
	}

	record, inserted := p.store.UpsertProgress(movieID, userID, percent)
	return record, inserted, nil
}

// Get returns the stored progress for a (movie, user) pair.
func (p *Progress) Get(movieID, userID string) (domain.WatchProgress, error) {
	record, ok := p.store.GetProgress(movieID, userID)
	if !ok {
		return domain.WatchProgress{}, ErrNotFound
	}
	return record, nil
}

// ContinueWatching joins the user's in-progress records (strictly between 0
// and 100 percent) to their movies and ranks them by progress descending.
// Ties break by most recently watched, then by movie id so the order is
// deterministic. Records whose movie no longer exists are silently dropped.
func (p *Progress) ContinueWatching(userID string) []domain.ContinueWatchingItem {
	type joined struct {
		movie  domain.Movie
		record domain.WatchProgress
	}

	records := p.store.ListProgressByUser(userID)
	rows := make([]joined, 0, len(records))
	for _, record := range records {
		if record.Progress <= 0 || record.Progress >= 100 {
			continue
		}
		movie, ok := p.store.GetMovie(record.MovieID)
		if !ok {
			continue
		}
		rows = append(rows, joined{movie: movie, record: record})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].record.Progress != rows[j].record.Progress {
			return rows[i].record.Progress > rows[j].record.Progress
		}
		if !rows[i].record.LastWatched.Equal(rows[j].record.LastWatched) {
			return rows[i].record.LastWatched.After(rows[j].record.LastWatched)
		}
		return rows[i].movie.ID < rows[j].movie.ID
	})

	items := make([]domain.ContinueWatchingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ContinueWatchingItem{Movie: row.movie, Progress: row.record.Progress})
	}
	return items
}
