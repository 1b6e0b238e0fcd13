package httpserver

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

func FuzzHandleSearchMovies(f *testing.F) {
	seeds := []string{
		"dangal",
		"sci-fi",
		"",
		"   ",
		"ZZZZ",
		"Nolan%20",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	srv, st := buildTestServer(f)
	store.SeedSampleData(st)

	f.Fuzz(func(t *testing.T, raw string) {
		rec := doRequest(srv, http.MethodGet, "/api/movies/search?q="+url.QueryEscape(raw), nil)
		if rec.Code != http.StatusOK && rec.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status %d for query %q", rec.Code, raw)
		}
	})
}
