package service

import (
	"bytes"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/internal/linesheet"
	"github.com/loganlanou/soleshop/internal/ogimage"
	"github.com/loganlanou/soleshop/views/components"
	"github.com/loganlanou/soleshop/views/helpers"
	"github.com/loganlanou/soleshop/views/layout"
)

// handleShoeOGImage draws the social preview for a shoe.
func (s *Service) handleShoeOGImage(c echo.Context) error {
	slug := c.Param("slug")
	row, err := s.storage.Queries.GetShoeBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Shoe not found")
		}
		slog.Error("failed to fetch shoe for OG image", "slug", slug, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load shoe")
	}

	shoe := row.ToCatalog()
	info := ogimage.ShoeInfo{
		Name:       shoe.Name,
		Price:      helpers.FormatPrice(shoe.Price),
		ColorLabel: helpers.Pluralize("Color", shoe.NumOfColors),
		ImagePath:  s.localImagePath(shoe.ImageSrc),
	}

	variant := shoe.Variant(s.isNew())
	if kind, ok := variant.Badge(); ok {
		info.BadgeLabel = kind.Label()
		info.BadgeColor = components.BadgeColor(kind)
	}
	if variant == catalog.VariantOnSale && shoe.SalePrice != nil {
		info.SalePrice = helpers.FormatPrice(*shoe.SalePrice)
	}

	var buf bytes.Buffer
	if err := ogimage.WritePNG(&buf, info); err != nil {
		slog.Error("failed to generate OG image", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate image")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// handleCatalogPDF renders the printable line sheet of every shoe.
func (s *Service) handleCatalogPDF(c echo.Context) error {
	shoes, err := s.storage.ListCatalog(c.Request().Context())
	if err != nil {
		slog.Error("failed to list shoes for line sheet", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load shoes")
	}

	isNew := s.isNew()
	entries := make([]linesheet.Entry, 0, len(shoes))
	for _, shoe := range shoes {
		entry := linesheet.Entry{
			Name:       shoe.Name,
			URL:        layout.BuildAbsoluteURL(s.config.BaseURL, shoe.Href()),
			Price:      helpers.FormatPrice(shoe.Price),
			ColorLabel: helpers.Pluralize("Color", shoe.NumOfColors),
		}
		variant := shoe.Variant(isNew)
		if kind, ok := variant.Badge(); ok {
			entry.Badge = kind.Label()
		}
		if variant == catalog.VariantOnSale && shoe.SalePrice != nil {
			entry.SalePrice = helpers.FormatPrice(*shoe.SalePrice)
		}
		entries = append(entries, entry)
	}

	var buf bytes.Buffer
	if err := linesheet.Write(&buf, s.config.SiteName+" Line Sheet", s.now(), entries); err != nil {
		slog.Error("failed to render line sheet", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render line sheet")
	}

	c.Response().Header().Set("Content-Disposition", `inline; filename="catalog.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// localImagePath maps a /public/... image URL onto the served directory.
// Remote or empty sources return "".
func (s *Service) localImagePath(src string) string {
	rel, ok := strings.CutPrefix(src, "/public/")
	if !ok || strings.Contains(rel, "..") {
		return ""
	}
	return filepath.Join(s.config.PublicDir, filepath.FromSlash(rel))
}
