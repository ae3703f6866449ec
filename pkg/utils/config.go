package utils

import (
	"log"
	"os"
)

// TMDBConfig holds everything needed to talk to the upstream movie
// provider. Base URLs are overridable so tests can point the client at
// a mock server.
type TMDBConfig struct {
	APIKey       string
	APIBaseURL   string
	ImageBaseURL string
}

type ServerConfig struct {
	Addr string
}

func LoadTMDBConfig() TMDBConfig {
	key := os.Getenv("TMDB_API_KEY")
	if key == "" {
		log.Fatal("TMDB_API_KEY is required")
	}

	base := os.Getenv("TMDB_API_BASE_URL")
	if base == "" {
		base = "https://api.themoviedb.org/3"
	}

	imgBase := os.Getenv("TMDB_IMAGE_BASE_URL")
	if imgBase == "" {
		imgBase = "https://image.tmdb.org/t/p/w500"
	}

	return TMDBConfig{
		APIKey:       key,
		APIBaseURL:   base,
		ImageBaseURL: imgBase,
	}
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("MOVIERANKER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return ServerConfig{Addr: addr}
}
