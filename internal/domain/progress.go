package domain

import "time"

// WatchProgress marks how far a single user has watched a single movie.
// At most one record exists per (MovieID, UserID) pair; the store's upsert
// keeps that invariant.
type WatchProgress struct {
	ID          string
	MovieID     string
	UserID      string
	Progress    int
	LastWatched time.Time
}

// ContinueWatchingItem joins an in-progress record to its movie.
type ContinueWatchingItem struct {
	Movie    Movie
	Progress int
}
