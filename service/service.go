package service

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/storage"
	"github.com/loganlanou/soleshop/views/helpers"
	"github.com/loganlanou/soleshop/views/layout"
	"github.com/loganlanou/soleshop/views/shop"
)

type Service struct {
	storage *storage.Storage
	config  *Config
	now     func() time.Time
}

func New(storage *storage.Storage, config *Config) *Service {
	return &Service{
		storage: storage,
		config:  config,
		now:     time.Now,
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files
	e.Static("/public", s.config.PublicDir)

	// Shop pages
	e.GET("/", s.handleHome)
	e.GET("/shoe/:slug", s.handleShoe)
	e.GET("/shoe/:slug/og.png", s.handleShoeOGImage)
	e.GET("/catalog.pdf", s.handleCatalogPDF)

	// JSON API
	api := e.Group("/api")
	api.GET("/shoes", s.handleAPIListShoes)
	api.GET("/shoes/:slug", s.handleAPIGetShoe)
	api.POST("/shoes", s.handleAPICreateShoe)
	api.DELETE("/shoes/:slug", s.handleAPIDeleteShoe)

	e.GET("/health", s.handleHealth)
}

// isNew is the recency predicate used for every variant resolved by the service.
func (s *Service) isNew() func(time.Time) bool {
	return catalog.NewShoePredicate(s.now, s.config.Catalog.NewReleaseWindow)
}

func (s *Service) pageMeta(c echo.Context) layout.PageMeta {
	return layout.NewPageMeta(c, s.config.BaseURL, s.config.SiteName)
}

func (s *Service) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	filter := shop.ParseFilter(c.QueryParam("filter"))

	list := s.storage.ListCatalog
	if filter == shop.FilterSale {
		list = s.storage.ListOnSale
	}
	shoes, err := list(ctx)
	if err != nil {
		slog.Error("failed to fetch shoes", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load shoes")
	}
	slog.Debug("fetched shoes", "count", len(shoes), "filter", filter)

	isNew := s.isNew()
	items := make([]shop.Item, 0, len(shoes))
	for _, shoe := range shoes {
		variant := shoe.Variant(isNew)
		if !filter.Keep(variant) {
			continue
		}
		items = append(items, shop.Item{Shoe: shoe, Variant: variant})
	}

	meta := s.pageMeta(c)
	switch filter {
	case shop.FilterSale:
		meta.Title = "Sale - " + s.config.SiteName
	case shop.FilterNew:
		meta.Title = "New Releases - " + s.config.SiteName
	case shop.FilterAll:
	}

	return Render(c, shop.Index(meta, items, filter))
}

func (s *Service) handleShoe(c echo.Context) error {
	slug := c.Param("slug")
	ctx := c.Request().Context()

	row, err := s.storage.Queries.GetShoeBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Info("shoe not found", "slug", slug)
			meta := s.pageMeta(c)
			meta.Title = "Shoe Not Found - " + s.config.SiteName
			return RenderStatus(c, http.StatusNotFound, shop.NotFound(meta, slug))
		}
		slog.Error("failed to fetch shoe", "slug", slug, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load shoe")
	}

	shoe := row.ToCatalog()
	variant := shoe.Variant(s.isNew())
	meta := s.pageMeta(c).FromShoe(shoe, variant, helpers.FormatPrice(shoe.Price))

	return Render(c, shop.Detail(meta, shop.Item{Shoe: shoe, Variant: variant}))
}

func (s *Service) handleHealth(c echo.Context) error {
	status := map[string]any{
		"status":      "ok",
		"environment": s.config.Environment,
	}
	count, err := s.storage.Queries.CountShoes(c.Request().Context())
	if err != nil {
		slog.Warn("health check database query failed", "error", err)
		status["status"] = "degraded"
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	status["shoes"] = count
	return c.JSON(http.StatusOK, status)
}

// Render renders a templ component and writes it to the response
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	// Don't call WriteHeader here - let Echo handle it on first Write()
	return component.Render(c.Request().Context(), c.Response())
}

// RenderStatus renders a templ component with a non-200 status.
func RenderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}
