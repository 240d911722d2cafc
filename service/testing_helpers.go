package service

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/storage"
)

// testNow is the fixed clock every test service resolves variants against.
var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
		PublicDir:   t.TempDir(),
		SiteName:    "Sole Shop",
	}
	config.Catalog.NewReleaseWindow = catalog.RecencyWindow

	svc := New(store, config)
	svc.now = func() time.Time { return testNow }

	return svc
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// seedShoe stores a shoe for a test
func seedShoe(t *testing.T, svc *Service, shoe catalog.Shoe) {
	t.Helper()

	if _, err := svc.storage.CreateShoe(context.Background(), shoe); err != nil {
		t.Fatalf("failed to seed shoe %s: %v", shoe.Slug, err)
	}
}

// seedScenarioShoes stores one shoe per card variant
func seedScenarioShoes(t *testing.T, svc *Service) {
	t.Helper()

	sale := int64(50)
	seedShoe(t, svc, catalog.Shoe{
		Slug: "on-sale-shoe", Name: "On Sale Shoe", ImageSrc: "/public/images/on-sale.jpg",
		Price: 16500, SalePrice: &sale,
		ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), NumOfColors: 1,
	})
	seedShoe(t, svc, catalog.Shoe{
		Slug: "new-shoe", Name: "New Shoe", ImageSrc: "/public/images/new.jpg",
		Price: 12000, ReleaseDate: testNow.AddDate(0, 0, -1), NumOfColors: 3,
	})
	seedShoe(t, svc, catalog.Shoe{
		Slug: "old-shoe", Name: "Old Shoe", ImageSrc: "/public/images/old.jpg",
		Price: 9000, ReleaseDate: testNow.AddDate(-2, 0, 0), NumOfColors: 2,
	})
}
