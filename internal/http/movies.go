package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Aaryadeep-Coder/cine-stream/internal/catalog"
	"github.com/Aaryadeep-Coder/cine-stream/internal/domain"
	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

const maxRequestBody = 1 << 20 // 1 MiB

// imdbRatingPattern matches the display format stored for IMDb scores, e.g. "8.4".
var imdbRatingPattern = regexp.MustCompile(`^\d{1,2}\.\d$`)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type movieCreateRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Synopsis      string   `json:"synopsis"`
	Year          int      `json:"year"`
	Duration      string   `json:"duration"`
	Rating        string   `json:"rating"`
	ImdbRating    string   `json:"imdbRating"`
	PosterImage   string   `json:"posterImage"`
	BackdropImage string   `json:"backdropImage"`
	VideoURL      *string  `json:"videoUrl"`
	Genres        []string `json:"genres"`
	Cast          string   `json:"cast"`
	Director      string   `json:"director"`
	Language      string   `json:"language"`
	IsFeatured    bool     `json:"isFeatured"`
	IsTrending    bool     `json:"isTrending"`
	IsPopular     bool     `json:"isPopular"`
}

type movieResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Synopsis      string    `json:"synopsis"`
	Year          int       `json:"year"`
	Duration      string    `json:"duration"`
	Rating        string    `json:"rating"`
	ImdbRating    string    `json:"imdbRating"`
	PosterImage   string    `json:"posterImage"`
	BackdropImage string    `json:"backdropImage"`
	VideoURL      *string   `json:"videoUrl,omitempty"`
	Genres        []string  `json:"genres"`
	Cast          string    `json:"cast"`
	Director      string    `json:"director"`
	Language      string    `json:"language"`
	IsFeatured    bool      `json:"isFeatured"`
	IsTrending    bool      `json:"isTrending"`
	IsPopular     bool      `json:"isPopular"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, toMovieResponses(s.catalog.Movies.List()))
}

func (s *Server) handleGetFeatured(w http.ResponseWriter, r *http.Request) {
	movie, err := s.catalog.Movies.Featured()
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "No featured movie found")
			return
		}
		s.logger.WithError(err).Error("get featured movie failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch featured movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleGetTrending(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, toMovieResponses(s.catalog.Movies.Trending()))
}

func (s *Server) handleGetPopular(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, toMovieResponses(s.catalog.Movies.Popular()))
}

func (s *Server) handleSearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	movies, err := s.catalog.Movies.Search(query)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Search query is required")
			return
		}
		s.logger.WithError(err).Error("search movies failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search movies")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}

func (s *Server) handleMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := decodePathParam(r, "genre")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	movies, err := s.catalog.Movies.ByGenre(genre)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Genre is required")
			return
		}
		s.logger.WithError(err).Error("movies by genre failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch movies by genre")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}

func (s *Server) handleMoviesByLanguage(w http.ResponseWriter, r *http.Request) {
	language, err := decodePathParam(r, "language")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	movies, err := s.catalog.Movies.ByLanguage(language)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Language is required")
			return
		}
		s.logger.WithError(err).Error("movies by language failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch movies by language")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := decodePathParam(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	movie, err := s.catalog.Movies.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		s.logger.WithError(err).Error("get movie failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	if msg := validateMovieCreate(req); msg != "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", msg)
		return
	}

	movie, err := s.catalog.Movies.Create(store.MovieCreateParams{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Synopsis:      strings.TrimSpace(req.Synopsis),
		Year:          req.Year,
		Duration:      strings.TrimSpace(req.Duration),
		Rating:        strings.TrimSpace(req.Rating),
		ImdbRating:    strings.TrimSpace(req.ImdbRating),
		PosterImage:   strings.TrimSpace(req.PosterImage),
		BackdropImage: strings.TrimSpace(req.BackdropImage),
		VideoURL:      normalizeStringPtr(req.VideoURL),
		Genres:        req.Genres,
		Cast:          strings.TrimSpace(req.Cast),
		Director:      strings.TrimSpace(req.Director),
		Language:      strings.TrimSpace(req.Language),
		IsFeatured:    req.IsFeatured,
		IsTrending:    req.IsTrending,
		IsPopular:     req.IsPopular,
	})
	if err != nil {
		s.logger.WithError(err).Error("create movie failed")
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create movie")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/movies/%s", url.PathEscape(movie.ID)))
	s.respondJSON(w, http.StatusCreated, toMovieResponse(movie))
}

func validateMovieCreate(req movieCreateRequest) string {
	required := []struct {
		name  string
		value string
	}{
		{"title", req.Title},
		{"description", req.Description},
		{"synopsis", req.Synopsis},
		{"duration", req.Duration},
		{"rating", req.Rating},
		{"posterImage", req.PosterImage},
		{"backdropImage", req.BackdropImage},
		{"cast", req.Cast},
		{"director", req.Director},
		{"language", req.Language},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.name + " is required"
		}
	}
	if req.Year <= 0 {
		return "year must be a positive integer"
	}
	if !imdbRatingPattern.MatchString(strings.TrimSpace(req.ImdbRating)) {
		return "imdbRating must be a decimal string with one fraction digit"
	}
	if len(req.Genres) == 0 {
		return "genres must not be empty"
	}
	for _, genre := range req.Genres {
		if strings.TrimSpace(genre) == "" {
			return "genres must not contain empty entries"
		}
	}
	return ""
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.WithError(err).Error("failed to encode response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Malformed JSON payload")
	case errors.As(err, &typeError):
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", fmt.Sprintf("Invalid value for field %s", typeError.Field))
	case errors.Is(err, io.EOF):
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request body cannot be empty")
	default:
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to parse request body")
	}
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		Synopsis:      movie.Synopsis,
		Year:          movie.Year,
		Duration:      movie.Duration,
		Rating:        movie.Rating,
		ImdbRating:    movie.ImdbRating,
		PosterImage:   movie.PosterImage,
		BackdropImage: movie.BackdropImage,
		VideoURL:      movie.VideoURL,
		Genres:        movie.Genres,
		Cast:          movie.Cast,
		Director:      movie.Director,
		Language:      movie.Language,
		IsFeatured:    movie.IsFeatured,
		IsTrending:    movie.IsTrending,
		IsPopular:     movie.IsPopular,
		CreatedAt:     movie.CreatedAt,
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	return items
}

func normalizeStringPtr(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	val := strings.TrimSpace(*ptr)
	if val == "" {
		return nil
	}
	return &val
}

func decodePathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", fmt.Errorf("missing %s parameter", name)
	}
	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter", name)
	}
	return val, nil
}
