package store

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestStore(tb testing.TB) *Store {
	tb.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestCreateAndGetMovie(t *testing.T) {
	s := newTestStore(t)

	created := s.CreateMovie(MovieCreateParams{
		Title:       "Test Movie",
		Description: "A movie for testing.",
		Synopsis:    "Longer synopsis.",
		Year:        2020,
		Duration:    "1h 40m",
		Rating:      "PG",
		ImdbRating:  "7.2",
		Genres:      []string{"Drama"},
		Cast:        "Someone",
		Director:    "Someone Else",
		Language:    "English",
	})

	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}

	got, ok := s.GetMovie(created.ID)
	if !ok {
		t.Fatalf("GetMovie(%s) missed", created.ID)
	}
	if got.Title != created.Title || got.Year != created.Year {
		t.Fatalf("GetMovie returned %+v, want %+v", got, created)
	}

	if _, ok := s.GetMovie("no-such-id"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestListMoviesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	first := s.CreateMovie(MovieCreateParams{Title: "First"})
	second := s.CreateMovie(MovieCreateParams{Title: "Second"})
	third := s.CreateMovie(MovieCreateParams{Title: "Third"})

	movies := s.ListMovies()
	if len(movies) != 3 {
		t.Fatalf("len = %d, want 3", len(movies))
	}
	wantOrder := []string{first.ID, second.ID, third.ID}
	for i, want := range wantOrder {
		if movies[i].ID != want {
			t.Fatalf("position %d = %s, want %s", i, movies[i].ID, want)
		}
	}
}

func TestListMoviesSnapshotIsolation(t *testing.T) {
	s := newTestStore(t)
	s.CreateMovie(MovieCreateParams{Title: "Original", Genres: []string{"Drama"}})

	movies := s.ListMovies()
	movies[0].Title = "Mutated"
	movies[0].Genres[0] = "Mutated"

	again := s.ListMovies()
	if again[0].Title != "Original" {
		t.Fatalf("store title mutated through snapshot: %s", again[0].Title)
	}
	if again[0].Genres[0] != "Drama" {
		t.Fatalf("store genres mutated through snapshot: %v", again[0].Genres)
	}
}

func TestUpsertProgress(t *testing.T) {
	s := newTestStore(t)
	movie := s.CreateMovie(MovieCreateParams{Title: "Progress Movie"})

	record, inserted := s.UpsertProgress(movie.ID, "user1", 50)
	if !inserted {
		t.Fatalf("first upsert should insert")
	}
	if record.Progress != 50 {
		t.Fatalf("Progress = %d, want 50", record.Progress)
	}

	updated, inserted := s.UpsertProgress(movie.ID, "user1", 80)
	if inserted {
		t.Fatalf("second upsert should update in place")
	}
	if updated.ID != record.ID {
		t.Fatalf("expected same record id, got %s and %s", record.ID, updated.ID)
	}
	if updated.Progress != 80 {
		t.Fatalf("Progress = %d, want 80", updated.Progress)
	}
	if updated.LastWatched.Before(record.LastWatched) {
		t.Fatalf("LastWatched went backwards")
	}

	records := s.ListProgressByUser("user1")
	if len(records) != 1 {
		t.Fatalf("expected exactly one record per pair, got %d", len(records))
	}
	if records[0].Progress != 80 {
		t.Fatalf("stored progress = %d, want 80", records[0].Progress)
	}
}

func TestUpsertProgressDistinctPairs(t *testing.T) {
	s := newTestStore(t)
	movie := s.CreateMovie(MovieCreateParams{Title: "Shared Movie"})
	other := s.CreateMovie(MovieCreateParams{Title: "Other Movie"})

	s.UpsertProgress(movie.ID, "user1", 10)
	s.UpsertProgress(movie.ID, "user2", 20)
	s.UpsertProgress(other.ID, "user1", 30)

	if got := len(s.ListProgressByUser("user1")); got != 2 {
		t.Fatalf("user1 records = %d, want 2", got)
	}
	if got := len(s.ListProgressByUser("user2")); got != 1 {
		t.Fatalf("user2 records = %d, want 1", got)
	}

	record, ok := s.GetProgress(movie.ID, "user2")
	if !ok || record.Progress != 20 {
		t.Fatalf("GetProgress(user2) = %+v ok=%v, want progress 20", record, ok)
	}
}

func TestSeedSampleData(t *testing.T) {
	s := newTestStore(t)
	SeedSampleData(s)

	movies, progress := s.Counts()
	if movies != 9 {
		t.Fatalf("seeded movies = %d, want 9", movies)
	}
	if progress != 6 {
		t.Fatalf("seeded progress = %d, want 6", progress)
	}

	var featured int
	for _, movie := range s.ListMovies() {
		if movie.IsFeatured {
			featured++
		}
	}
	if featured != 1 {
		t.Fatalf("featured movies = %d, want 1", featured)
	}
}
