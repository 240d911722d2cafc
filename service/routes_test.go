package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/views/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(e *echo.Echo, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// TestPublicRoutes tests that public routes exist and are accessible
func TestPublicRoutes(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Shop listing", "GET", "/", http.StatusOK},
		{"Sale listing", "GET", "/?filter=sale", http.StatusOK},
		{"New listing", "GET", "/?filter=new", http.StatusOK},
		{"Shoe detail", "GET", "/shoe/new-shoe", http.StatusOK},
		{"Missing shoe", "GET", "/shoe/nope", http.StatusNotFound},
		{"OG image", "GET", "/shoe/on-sale-shoe/og.png", http.StatusOK},
		{"Missing OG image", "GET", "/shoe/nope/og.png", http.StatusNotFound},
		{"Line sheet", "GET", "/catalog.pdf", http.StatusOK},
		{"Health check", "GET", "/health", http.StatusOK},
		{"API list", "GET", "/api/shoes", http.StatusOK},
		{"API get", "GET", "/api/shoes/old-shoe", http.StatusOK},
		{"API missing", "GET", "/api/shoes/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, nil)
			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

func TestHome_RendersOneCardPerShoe(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()

	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, 3, strings.Count(html, "<article>"))
	assert.Contains(t, html, `<a href="/shoe/on-sale-shoe" class="flex-[1_1_340px] no-underline text-inherit" data-variant="on-sale">`)
	assert.Contains(t, html, `data-variant="new-release"`)
	assert.Contains(t, html, `data-variant="default"`)
	assert.Equal(t, 1, strings.Count(html, ">Sale</span>"))
	assert.Equal(t, 1, strings.Count(html, ">Just Released</span>"))
	assert.Contains(t, html, `data-price="sale">$0.50</span>`)
	assert.Contains(t, html, ">1 Color</p>")
	assert.Contains(t, html, ">3 Colors</p>")
	assert.Contains(t, html, ">2 Colors</p>")
}

func TestHome_Filters(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/?filter=sale", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "<article>"))
	assert.Contains(t, rec.Body.String(), "/shoe/on-sale-shoe")

	rec = doRequest(e, http.MethodGet, "/?filter=new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "<article>"))
	assert.Contains(t, rec.Body.String(), "/shoe/new-shoe")
}

func TestHome_SaleFilterIncludesDiscountedNewRelease(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	sale := int64(9900)
	seedShoe(t, svc, catalog.Shoe{
		Slug: "fresh-deal", Name: "Fresh Deal", ImageSrc: "/public/images/fresh.jpg",
		Price: 13000, SalePrice: &sale, ReleaseDate: testNow.AddDate(0, 0, -2), NumOfColors: 1,
	})

	rec := doRequest(e, http.MethodGet, "/?filter=sale", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "<article>"))
	assert.Contains(t, rec.Body.String(), "/shoe/fresh-deal")

	rec = doRequest(e, http.MethodGet, "/?filter=new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/shoe/fresh-deal")
}

func TestHome_Empty(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-empty="true"`)
}

func TestShoeDetail(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/shoe/on-sale-shoe", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()

	assert.Contains(t, html, "<title>On Sale Shoe - Sole Shop</title>")
	assert.Contains(t, html, `data-qr="true"`)
	assert.Contains(t, html, "http://localhost:8080/shoe/on-sale-shoe/og.png")

	rec = doRequest(e, http.MethodGet, "/shoe/missing-shoe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shoe not found")
}

func TestAPIListShoes_Variants(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/api/shoes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var shoes []ShoeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shoes))
	require.Len(t, shoes, 3)

	variants := map[string]string{}
	for _, shoe := range shoes {
		text, err := shoe.Variant.MarshalText()
		require.NoError(t, err)
		variants[shoe.Slug] = string(text)
	}
	assert.Equal(t, "on-sale", variants["on-sale-shoe"])
	assert.Equal(t, "new-release", variants["new-shoe"])
	assert.Equal(t, "default", variants["old-shoe"])

	assert.Contains(t, rec.Body.String(), `"variant":"on-sale"`)
	assert.Contains(t, rec.Body.String(), `"url":"http://localhost:8080/shoe/new-shoe"`)
}

func TestAPIListShoes_VariantQuery(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/api/shoes?variant=new-release", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var shoes []ShoeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shoes))
	require.Len(t, shoes, 1)
	assert.Equal(t, "new-shoe", shoes[0].Slug)
	assert.Equal(t, catalog.VariantNewRelease, shoes[0].Variant)

	rec = doRequest(e, http.MethodGet, "/api/shoes?variant=clearance", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIDeleteShoe(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodDelete, "/api/shoes/old-shoe", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/shoes/old-shoe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/shoes/old-shoe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPICreateShoe(t *testing.T) {
	e, _ := setupTestEcho(t)

	body := []byte(`{"name":"Cosmic Runner","image_src":"/public/images/cosmic.jpg","price_cents":14000,"sale_price_cents":11000,"release_date":"2024-06-10","num_colors":4}`)
	rec := doRequest(e, http.MethodPost, "/api/shoes", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ShoeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "cosmic-runner", created.Slug)
	require.NotNil(t, created.SalePriceCents)
	assert.EqualValues(t, 11000, *created.SalePriceCents)

	rec = doRequest(e, http.MethodPost, "/api/shoes", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/shoes/cosmic-runner", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPICreateShoe_Invalid(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing release date", `{"name":"A","price_cents":100,"num_colors":1}`},
		{"bad release date", `{"name":"A","price_cents":100,"release_date":"June 1","num_colors":1}`},
		{"negative price", `{"name":"A","price_cents":-1,"release_date":"2024-01-01","num_colors":1}`},
		{"missing name", `{"price_cents":100,"release_date":"2024-01-01","num_colors":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/shoes", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestShoeOGImage(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/shoe/new-shoe/og.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
}

func TestShoeOGImage_BadgeMatchesCard(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	tests := []struct {
		slug string
		kind catalog.BadgeKind
	}{
		{"on-sale-shoe", catalog.BadgeSale},
		{"new-shoe", catalog.BadgeNewRelease},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, "/shoe/"+tt.slug+"/og.png", nil)
			require.Equal(t, http.StatusOK, rec.Code)

			img, err := png.Decode(rec.Body)
			require.NoError(t, err)

			// inside the right padding of the badge pill
			r, g, b, _ := img.At(1150, 60).RGBA()
			got := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
			assert.Equal(t, components.BadgeColor(tt.kind), got)
		})
	}
}

func TestCatalogPDF(t *testing.T) {
	e, svc := setupTestEcho(t)
	seedScenarioShoes(t, svc)

	rec := doRequest(e, http.MethodGet, "/catalog.pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestHealth(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"shoes":0`)
}

func TestLocalImagePath(t *testing.T) {
	svc := setupTestService(t)

	assert.Contains(t, svc.localImagePath("/public/images/a.jpg"), "images")
	assert.Empty(t, svc.localImagePath("https://cdn.example.com/a.jpg"))
	assert.Empty(t, svc.localImagePath("/public/../secrets"))
}
