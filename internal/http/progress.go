package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Aaryadeep-Coder/cine-stream/internal/catalog"
	"github.com/Aaryadeep-Coder/cine-stream/internal/domain"
)

type watchProgressRequest struct {
	MovieID  string `json:"movieId"`
	UserID   string `json:"userId"`
	Progress *int   `json:"progress"`
}

type watchProgressResponse struct {
	ID          string    `json:"id"`
	MovieID     string    `json:"movieId"`
	UserID      string    `json:"userId"`
	Progress    int       `json:"progress"`
	LastWatched time.Time `json:"lastWatched"`
}

// continueWatchingResponse is a movie payload extended with the viewer's
// progress, matching the shape the catalog UI renders in its resume row.
type continueWatchingResponse struct {
	movieResponse
	WatchProgress int `json:"watchProgress"`
}

func (s *Server) handleRecordProgress(w http.ResponseWriter, r *http.Request) {
	var req watchProgressRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.Progress == nil {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "progress is required")
		return
	}

	record, inserted, err := s.catalog.Progress.Record(req.MovieID, req.UserID, *req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		case errors.Is(err, catalog.ErrInvalidInput):
			s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", invalidInputMessage(err))
		default:
			s.logger.WithError(err).Error("record watch progress failed")
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update watch progress")
		}
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	s.respondJSON(w, status, toWatchProgressResponse(record))
}

func (s *Server) handleContinueWatching(w http.ResponseWriter, r *http.Request) {
	userID, err := decodePathParam(r, "userId")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	items := s.catalog.Progress.ContinueWatching(userID)
	resp := make([]continueWatchingResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, continueWatchingResponse{
			movieResponse: toMovieResponse(item.Movie),
			WatchProgress: item.Progress,
		})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func toWatchProgressResponse(record domain.WatchProgress) watchProgressResponse {
	return watchProgressResponse{
		ID:          record.ID,
		MovieID:     record.MovieID,
		UserID:      record.UserID,
		Progress:    record.Progress,
		LastWatched: record.LastWatched,
	}
}

// invalidInputMessage strips the sentinel prefix so the client sees only the
// field-level detail.
func invalidInputMessage(err error) string {
	return strings.TrimPrefix(err.Error(), catalog.ErrInvalidInput.Error()+": ")
}
