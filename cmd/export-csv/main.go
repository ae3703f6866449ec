package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"movieranker/internal/movies"
	"movieranker/pkg/database"
)

// Exports the collection to CSV, highest rated first.
func main() {
	out := flag.String("out", "data/movies.csv", "output CSV path")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportMovies(ctx, movies.NewRepo(db), *out); err != nil {
		log.Fatalf("export movies failed: %v", err)
	}

	log.Printf("exported movies to %s", *out)
}

func exportMovies(ctx context.Context, repo *movies.Repo, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "title", "year", "description", "rating", "ranking", "review", "img_url"}); err != nil {
		return err
	}

	all, err := repo.List(ctx)
	if err != nil {
		return err
	}

	for _, m := range all {
		rating := ""
		if m.Rating != nil {
			rating = strconv.FormatFloat(*m.Rating, 'f', -1, 64)
		}
		ranking := ""
		if m.Ranking != nil {
			ranking = strconv.Itoa(*m.Ranking)
		}
		review := ""
		if m.Review != nil {
			review = *m.Review
		}

		if err := w.Write([]string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			strconv.Itoa(m.Year),
			m.Description,
			rating,
			ranking,
			review,
			m.ImgURL,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
