package catalog

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/khoad/asynclist/internal/database/repository"
)

// Word pools for generated metadata.
var (
	adjectives = []string{"Silent", "Golden", "Hollow", "Burning", "Forgotten", "Endless", "Crimson", "Quiet", "Broken", "Distant", "Iron", "Pale", "Restless", "Shattered", "Wandering", "Winter"}
	nouns      = []string{"River", "Citadel", "Garden", "Archive", "Harbor", "Mountain", "Letter", "Voyage", "Machine", "Orchard", "Mirror", "Signal", "Atlas", "Thread", "Lantern", "Meridian"}
	firstNames = []string{"Ada", "Rohan", "Mei", "Tomas", "Ingrid", "Kwame", "Sofia", "Henrik", "Amara", "Jun", "Leila", "Viktor", "Noor", "Elias", "Priya", "Casimir"}
	lastNames  = []string{"Okafor", "Lindqvist", "Tanaka", "Moreau", "Castellanos", "Virtanen", "Adeyemi", "Kovacs", "Brandt", "Ferreira", "Nakamura", "Osei", "Halvorsen", "Marchetti", "Szabo", "Quintero"}
)

// Generate returns n sample books. The same seed produces the same books,
// ids included, so reseeding an existing catalog stays stable.
func Generate(n int, seed int64) []repository.Book {
	rng := rand.New(rand.NewSource(seed))
	out := make([]repository.Book, 0, n)
	for i := 0; i < n; i++ {
		adj := adjectives[rng.Intn(len(adjectives))]
		noun := nouns[rng.Intn(len(nouns))]
		var title string
		if rng.Intn(2) == 0 {
			title = fmt.Sprintf("The %s %s", adj, noun)
		} else {
			title = fmt.Sprintf("%s of the %s %s", nouns[rng.Intn(len(nouns))], adj, noun)
		}
		out = append(out, repository.Book{
			ID:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("book:%d:%d", seed, i))).String(),
			Title:  title,
			Author: fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
			Year:   1900 + rng.Intn(126),
			Pages:  80 + rng.Intn(900),
			Rating: 1 + float64(rng.Intn(41))/10,
		})
	}
	return out
}

// Seed replaces the catalog with n generated books.
func Seed(ctx context.Context, repo *repository.BookRepo, n int, seed int64) error {
	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	if err := repo.InsertBatch(ctx, Generate(n, seed)); err != nil {
		return fmt.Errorf("insert books: %w", err)
	}
	return nil
}
