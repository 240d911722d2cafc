package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/storage"
	"github.com/loganlanou/soleshop/views/layout"
)

type CreateShoeRequest struct {
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	ImageSrc       string `json:"image_src"`
	PriceCents     int64  `json:"price_cents"`
	SalePriceCents *int64 `json:"sale_price_cents"`
	ReleaseDate    string `json:"release_date"` // YYYY-MM-DD or RFC 3339
	NumColors      int    `json:"num_colors"`
}

type ShoeResponse struct {
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	ImageSrc       string          `json:"image_src"`
	URL            string          `json:"url"`
	PriceCents     int64           `json:"price_cents"`
	SalePriceCents *int64          `json:"sale_price_cents,omitempty"`
	ReleaseDate    time.Time       `json:"release_date"`
	NumColors      int             `json:"num_colors"`
	Variant        catalog.Variant `json:"variant"`
}

func (s *Service) shoeToResponse(shoe catalog.Shoe, isNew func(time.Time) bool) ShoeResponse {
	return ShoeResponse{
		Slug:           shoe.Slug,
		Name:           shoe.Name,
		ImageSrc:       shoe.ImageSrc,
		URL:            layout.BuildAbsoluteURL(s.config.BaseURL, shoe.Href()),
		PriceCents:     shoe.Price,
		SalePriceCents: shoe.SalePrice,
		ReleaseDate:    shoe.ReleaseDate,
		NumColors:      shoe.NumOfColors,
		Variant:        shoe.Variant(isNew),
	}
}

// handleAPIListShoes lists every shoe, or only those resolving to ?variant=.
func (s *Service) handleAPIListShoes(c echo.Context) error {
	var want *catalog.Variant
	if param := c.QueryParam("variant"); param != "" {
		var v catalog.Variant
		if err := v.UnmarshalText([]byte(param)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		want = &v
	}

	shoes, err := s.storage.ListCatalog(c.Request().Context())
	if err != nil {
		slog.Error("failed to list shoes", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list shoes")
	}

	isNew := s.isNew()
	response := make([]ShoeResponse, 0, len(shoes))
	for _, shoe := range shoes {
		resp := s.shoeToResponse(shoe, isNew)
		if want != nil && resp.Variant != *want {
			continue
		}
		response = append(response, resp)
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Service) handleAPIGetShoe(c echo.Context) error {
	slug := c.Param("slug")
	row, err := s.storage.Queries.GetShoeBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Shoe not found")
		}
		slog.Error("failed to get shoe", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get shoe")
	}

	return c.JSON(http.StatusOK, s.shoeToResponse(row.ToCatalog(), s.isNew()))
}

func (s *Service) handleAPICreateShoe(c echo.Context) error {
	var req CreateShoeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	shoe, err := req.toShoe()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := shoe.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.storage.CreateShoe(c.Request().Context(), shoe)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlug) {
			return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("Shoe %q already exists", shoe.Slug))
		}
		slog.Error("failed to create shoe", "error", err, "slug", shoe.Slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create shoe")
	}

	slog.Info("shoe created", "id", row.ID, "slug", row.Slug)
	return c.JSON(http.StatusCreated, s.shoeToResponse(row.ToCatalog(), s.isNew()))
}

func (s *Service) handleAPIDeleteShoe(c echo.Context) error {
	slug := c.Param("slug")
	if err := s.storage.DeleteShoe(c.Request().Context(), slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Shoe not found")
		}
		slog.Error("failed to delete shoe", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete shoe")
	}

	slog.Info("shoe deleted", "slug", slug)
	return c.NoContent(http.StatusNoContent)
}

func (r CreateShoeRequest) toShoe() (catalog.Shoe, error) {
	release, err := parseReleaseDate(r.ReleaseDate)
	if err != nil {
		return catalog.Shoe{}, err
	}

	slug := strings.TrimSpace(r.Slug)
	if slug == "" {
		slug = catalog.Slugify(r.Name)
	}

	return catalog.Shoe{
		Slug:        slug,
		Name:        strings.TrimSpace(r.Name),
		ImageSrc:    strings.TrimSpace(r.ImageSrc),
		Price:       r.PriceCents,
		SalePrice:   r.SalePriceCents,
		ReleaseDate: release,
		NumOfColors: r.NumColors,
	}, nil
}

func parseReleaseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("release_date is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("release_date %q must be YYYY-MM-DD or RFC 3339", value)
	}
	return t, nil
}
