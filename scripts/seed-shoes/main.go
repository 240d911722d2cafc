package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/storage"
)

func main() {
	count := flag.Int("n", 24, "number of shoes to insert")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/soleshop.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	inserted, err := seedShoes(context.Background(), store, gofakeit.New(*seed), *count, time.Now().UTC())
	if err != nil {
		slog.Error("seeding failed", "error", err, "inserted", inserted)
		store.Close()
		os.Exit(1)
	}
	slog.Info("seeded shoes", "inserted", inserted, "database", dbPath)
}

// seedShoes inserts n fake shoes: a third on sale, a third released inside the recency window.
func seedShoes(ctx context.Context, store *storage.Storage, faker *gofakeit.Faker, n int, now time.Time) (int, error) {
	inserted := 0
	for i := 0; i < n; i++ {
		shoe := fakeShoe(faker, i, now)

		if _, err := store.CreateShoe(ctx, shoe); err != nil {
			if errors.Is(err, storage.ErrDuplicateSlug) {
				slog.Debug("skipping duplicate shoe", "slug", shoe.Slug)
				continue
			}
			return inserted, fmt.Errorf("insert %s: %w", shoe.Slug, err)
		}
		inserted++
	}
	return inserted, nil
}

func fakeShoe(faker *gofakeit.Faker, i int, now time.Time) catalog.Shoe {
	name := fmt.Sprintf("%s %s", faker.AdjectiveDescriptive(), faker.Animal())
	slug := catalog.Slugify(name)

	price := int64(faker.IntRange(60, 220)) * 100
	shoe := catalog.Shoe{
		Slug:        slug,
		Name:        name,
		ImageSrc:    "/public/images/shoes/" + slug + ".jpg",
		Price:       price,
		NumOfColors: faker.IntRange(1, 6),
	}

	switch i % 3 {
	case 0:
		sale := price * int64(faker.IntRange(50, 85)) / 100
		shoe.SalePrice = &sale
		shoe.ReleaseDate = faker.DateRange(now.AddDate(-1, 0, 0), now)
	case 1:
		shoe.ReleaseDate = faker.DateRange(now.Add(-catalog.RecencyWindow+time.Hour), now)
	default:
		shoe.ReleaseDate = faker.DateRange(now.AddDate(-2, 0, 0), now.Add(-2*catalog.RecencyWindow))
	}
	shoe.ReleaseDate = shoe.ReleaseDate.UTC()

	return shoe
}
