package domain

import "time"

// Movie represents the canonical catalog entry for a movie or show.
type Movie struct {
	ID            string
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
	CreatedAt     time.Time
}
