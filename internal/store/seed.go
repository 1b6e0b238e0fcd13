package store

import "github.com/sirupsen/logrus"

// SeedSampleData loads the demo catalog and a handful of "user1" progress
// records so a fresh process has something to serve. Intended for the server
// entrypoint and for tests; the store itself never seeds.
func SeedSampleData(s *Store) {
	sampleMovies := []MovieCreateParams{
		{
			Title:         "The Crown",
			Description:   "A biographical drama that chronicles the reign of Queen Elizabeth II, from her wedding in 1947 to the early 2000s, offering an intimate look at the British royal family.",
			Synopsis:      "The Crown offers an intimate portrait of the British royal family's reign through decades of political intrigue, personal relationships, and historical events that shaped a nation.",
			Year:          2016,
			Duration:      "4 Seasons",
			Rating:        "TV-MA",
			ImdbRating:    "8.7",
			PosterImage:   "https://images.unsplash.com/photo-1635805737707-575885ab0820?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://pixabay.com/get/gcffa9dfd9237680731fd641bf48d03dc6fb8a7da6c0521d487da31463bd20ccb906c5e92425d02ec10db4087b17a454f105b82e2685bfc089a1bb63ee8666b15_1280.jpg",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"),
			Genres:        []string{"Drama", "Biography", "History"},
			Cast:          "Claire Foy, Olivia Colman, Imelda Staunton",
			Director:      "Peter Morgan",
			Language:      "English",
			IsFeatured:    true,
			IsTrending:    true,
			IsPopular:     true,
		},
		{
			Title:         "Avengers: Endgame",
			Description:   "The epic conclusion to the Infinity Saga as the remaining heroes fight to undo Thanos' devastating snap.",
			Synopsis:      "After the devastating events of Avengers: Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more to reverse Thanos' actions and restore balance to the universe.",
			Year:          2019,
			Duration:      "3h 1m",
			Rating:        "PG-13",
			ImdbRating:    "8.4",
			PosterImage:   "https://images.unsplash.com/photo-1635805737707-575885ab0820?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1635805737707-575885ab0820?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4"),
			Genres:        []string{"Action", "Adventure", "Drama"},
			Cast:          "Robert Downey Jr., Chris Evans, Mark Ruffalo",
			Director:      "Anthony Russo, Joe Russo",
			Language:      "English",
			IsTrending:    true,
			IsPopular:     true,
		},
		{
			Title:         "Blade Runner 2049",
			Description:   "A young blade runner discovers a secret that could plunge what's left of society into chaos.",
			Synopsis:      "Thirty years after the events of the first film, a new blade runner, LAPD Officer K, unearths a long-buried secret that has the potential to plunge what's left of society into chaos.",
			Year:          2017,
			Duration:      "2h 44m",
			Rating:        "R",
			ImdbRating:    "8.0",
			PosterImage:   "https://pixabay.com/get/g51430837caa86bf69a982d69882a7c821016a171672498a5883b6fe8e1b2408d0638e25648ddb74d767a8e9addf2671ef71ec90f6e7666bd4b67b1764089d0c4_1280.jpg",
			BackdropImage: "https://pixabay.com/get/g51430837caa86bf69a982d69882a7c821016a171672498a5883b6fe8e1b2408d0638e25648ddb74d767a8e9addf2671ef71ec90f6e7666bd4b67b1764089d0c4_1280.jpg",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4"),
			Genres:        []string{"Sci-Fi", "Drama", "Thriller"},
			Cast:          "Ryan Gosling, Harrison Ford, Ana de Armas",
			Director:      "Denis Villeneuve",
			Language:      "English",
			IsTrending:    true,
			IsPopular:     true,
		},
		{
			Title:         "The Pursuit of Happyness",
			Description:   "A struggling salesman takes custody of his son as he's poised to begin a life-changing professional career.",
			Synopsis:      "Based on a true story, a struggling salesman takes custody of his son as he's poised to begin a life-changing professional career.",
			Year:          2006,
			Duration:      "1h 57m",
			Rating:        "PG-13",
			ImdbRating:    "8.0",
			PosterImage:   "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4"),
			Genres:        []string{"Biography", "Drama"},
			Cast:          "Will Smith, Jaden Smith, Thandiwe Newton",
			Director:      "Gabriele Muccino",
			Language:      "English",
			IsTrending:    true,
			IsPopular:     true,
		},
		{
			Title:         "A Quiet Place",
			Description:   "A family is forced to live in silence while hiding from creatures that hunt by sound.",
			Synopsis:      "In a post-apocalyptic world, a family is forced to live in silence while hiding from creatures that hunt by sound.",
			Year:          2018,
			Duration:      "1h 30m",
			Rating:        "PG-13",
			ImdbRating:    "7.5",
			PosterImage:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4"),
			Genres:        []string{"Horror", "Drama", "Sci-Fi"},
			Cast:          "Emily Blunt, John Krasinski, Millicent Simmonds",
			Director:      "John Krasinski",
			Language:      "English",
			IsTrending:    true,
		},
		{
			Title:         "The Grand Budapest Hotel",
			Description:   "A legendary concierge and his protégé become involved in a murder mystery and theft.",
			Synopsis:      "The adventures of Gustave H, a legendary concierge at a famous European hotel, and Zero Moustafa, the lobby boy who becomes his most trusted friend.",
			Year:          2014,
			Duration:      "1h 39m",
			Rating:        "R",
			ImdbRating:    "8.1",
			PosterImage:   "https://pixabay.com/get/gd6246710f019771b0a03d91b14de718ed41c00fe5e40cbcddc92099b367c462a44257c56cbf7f5d3085f5de32966c37c47a2b05ccc687008198da842a705a806_1280.jpg",
			BackdropImage: "https://pixabay.com/get/gd6246710f019771b0a03d91b14de718ed41c00fe5e40cbcddc92099b367c462a44257c56cbf7f5d3085f5de32966c37c47a2b05ccc687008198da842a705a806_1280.jpg",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4"),
			Genres:        []string{"Comedy", "Drama", "Adventure"},
			Cast:          "Ralph Fiennes, F. Murray Abraham, Mathieu Amalric",
			Director:      "Wes Anderson",
			Language:      "English",
			IsTrending:    true,
			IsPopular:     true,
		},
		{
			Title:         "Interstellar",
			Description:   "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Synopsis:      "Earth's future has been riddled by disasters, famines, and droughts. There is only one way to ensure mankind's survival: Interstellar travel.",
			Year:          2014,
			Duration:      "2h 49m",
			Rating:        "PG-13",
			ImdbRating:    "8.6",
			PosterImage:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4"),
			Genres:        []string{"Adventure", "Drama", "Sci-Fi"},
			Cast:          "Matthew McConaughey, Anne Hathaway, Jessica Chastain",
			Director:      "Christopher Nolan",
			Language:      "English",
			IsPopular:     true,
		},
		{
			Title:         "La La Land",
			Description:   "A jazz musician and an aspiring actress fall in love while pursuing their dreams in Los Angeles.",
			Synopsis:      "While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations for the future.",
			Year:          2016,
			Duration:      "2h 8m",
			Rating:        "PG-13",
			ImdbRating:    "8.0",
			PosterImage:   "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4"),
			Genres:        []string{"Comedy", "Drama", "Music"},
			Cast:          "Ryan Gosling, Emma Stone, Rosemarie DeWitt",
			Director:      "Damien Chazelle",
			Language:      "English",
			IsPopular:     true,
		},
		{
			Title:         "Dangal",
			Description:   "A former wrestler trains his daughters to become world-class wrestlers against all odds.",
			Synopsis:      "Mahavir Singh Phogat, a former amateur wrestler, coaches his daughters Geeta and Babita to become India's first world-class female wrestlers, defying social expectations along the way.",
			Year:          2016,
			Duration:      "2h 41m",
			Rating:        "PG",
			ImdbRating:    "8.3",
			PosterImage:   "https://images.unsplash.com/photo-1547347298-4074fc3086f0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			BackdropImage: "https://images.unsplash.com/photo-1547347298-4074fc3086f0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=675",
			VideoURL:      strPtr("https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4"),
			Genres:        []string{"Biography", "Drama", "Sport"},
			Cast:          "Aamir Khan, Fatima Sana Shaikh, Sanya Malhotra",
			Director:      "Nitesh Tiwari",
			Language:      "Hindi",
			IsPopular:     true,
		},
	}

	ids := make([]string, 0, len(sampleMovies))
	for _, params := range sampleMovies {
		movie := s.CreateMovie(params)
		ids = append(ids, movie.ID)
	}

	sampleProgress := []struct {
		movieIdx int
		percent  int
	}{
		{0, 65},
		{1, 32},
		{2, 78},
		{3, 45},
		{4, 12},
		{5, 89},
	}
	for _, p := range sampleProgress {
		s.UpsertProgress(ids[p.movieIdx], "user1", p.percent)
	}

	movies, progress := s.Counts()
	s.logger.WithFields(logrus.Fields{
		"movies":   movies,
		"progress": progress,
	}).Info("store: seeded sample data")
}

func strPtr(v string) *string {
	return &v
}
