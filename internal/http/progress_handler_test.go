package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

func TestHandleRecordProgress(t *testing.T) {
	srv, st := buildTestServer(t)
	movie := st.CreateMovie(store.MovieCreateParams{Title: "Watchable"})

	body := []byte(fmt.Sprintf(`{"movieId":%q,"userId":"user1","progress":50}`, movie.ID))
	rec := doRequest(srv, http.MethodPost, "/api/watch-progress", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 for first write (%s)", rec.Code, rec.Body.String())
	}

	var first watchProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if first.Progress != 50 || first.MovieID != movie.ID || first.UserID != "user1" {
		t.Fatalf("progress response = %+v", first)
	}

	body = []byte(fmt.Sprintf(`{"movieId":%q,"userId":"user1","progress":80}`, movie.ID))
	rec = doRequest(srv, http.MethodPost, "/api/watch-progress", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for update", rec.Code)
	}

	var second watchProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("record id changed on update: %s vs %s", second.ID, first.ID)
	}
	if second.Progress != 80 {
		t.Fatalf("progress = %d, want 80", second.Progress)
	}
}

func TestHandleRecordProgressErrors(t *testing.T) {
	srv, st := buildTestServer(t)
	movie := st.CreateMovie(store.MovieCreateParams{Title: "Watchable"})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown movie",
			body:       `{"movieId":"nope","userId":"user1","progress":10}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "missing progress",
			body:       fmt.Sprintf(`{"movieId":%q,"userId":"user1"}`, movie.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "progress above range",
			body:       fmt.Sprintf(`{"movieId":%q,"userId":"user1","progress":150}`, movie.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "negative progress",
			body:       fmt.Sprintf(`{"movieId":%q,"userId":"user1","progress":-5}`, movie.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "missing user id",
			body:       fmt.Sprintf(`{"movieId":%q,"userId":"","progress":10}`, movie.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "progress as string",
			body:       fmt.Sprintf(`{"movieId":%q,"userId":"user1","progress":"half"}`, movie.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed json",
			body:       `{"movieId":`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodPost, "/api/watch-progress", []byte(tt.body))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if resp := decodeErrorResponse(t, rec); resp.Code != tt.wantCode {
				t.Fatalf("error code = %s, want %s", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleContinueWatching(t *testing.T) {
	srv, st := buildTestServer(t)

	a := st.CreateMovie(store.MovieCreateParams{Title: "A"})
	b := st.CreateMovie(store.MovieCreateParams{Title: "B"})
	done := st.CreateMovie(store.MovieCreateParams{Title: "Done"})
	st.UpsertProgress(a.ID, "user1", 65)
	st.UpsertProgress(b.ID, "user1", 32)
	st.UpsertProgress(done.ID, "user1", 100)

	rec := doRequest(srv, http.MethodGet, "/api/continue-watching/user1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var items []continueWatchingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode continue watching: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Title != "A" || items[0].WatchProgress != 65 {
		t.Fatalf("first item = %s/%d, want A/65", items[0].Title, items[0].WatchProgress)
	}
	if items[1].Title != "B" || items[1].WatchProgress != 32 {
		t.Fatalf("second item = %s/%d, want B/32", items[1].Title, items[1].WatchProgress)
	}
}

func TestHandleContinueWatchingEmpty(t *testing.T) {
	srv, _ := buildTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/continue-watching/nobody", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("body = %q, want empty JSON array", body)
	}
}
