package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/soleshop/internal/catalog"
)

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string // "website" or "product"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard string // "summary_large_image"

	// Internal state
	SiteURL string

	// Schema.org JSON-LD (pre-computed)
	ProductSchemaJSON string
}

// NewPageMeta creates a PageMeta with site-wide defaults
// Call this first, then chain .FromShoe() or other modifiers
func NewPageMeta(c echo.Context, siteURL, siteName string) PageMeta {
	canonicalURL := BuildAbsoluteURL(siteURL, c.Request().URL.Path)
	description := "Sneakers, runners and everyday shoes. New releases every month."

	return PageMeta{
		Title:        siteName,
		Description:  description,
		Keywords:     []string{"shoes", "sneakers", "running shoes", "sale"},
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       siteName,
		OGDescription: description,
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		TwitterCard: "summary_large_image",

		SiteURL: siteURL,
	}
}

// FromShoe updates PageMeta with shoe-specific information
func (pm PageMeta) FromShoe(shoe catalog.Shoe, variant catalog.Variant, formattedPrice string) PageMeta {
	pm.Title = shoe.Name + " - " + pm.OGSiteName
	pm.OGTitle = shoe.Name

	description := fmt.Sprintf("%s, %s.", shoe.Name, formattedPrice)
	switch variant {
	case catalog.VariantOnSale:
		description = fmt.Sprintf("%s is on sale.", shoe.Name)
	case catalog.VariantNewRelease:
		description = fmt.Sprintf("%s just released, %s.", shoe.Name, formattedPrice)
	case catalog.VariantDefault:
	}
	pm.Description = description
	pm.OGDescription = description

	pm.Keywords = []string{shoe.Name, "shoes", "sneakers"}

	shoeURL := BuildAbsoluteURL(pm.SiteURL, shoe.Href())
	pm.CanonicalURL = shoeURL
	pm.OGURL = shoeURL
	pm.OGType = "product"
	pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, shoe.Href()+"/og.png")

	pm.ProductSchemaJSON = pm.productSchemaJSON(shoe, variant)
	return pm
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	return strings.Join(pm.Keywords, ", ")
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}

// productSchemaJSON generates Schema.org Product JSON-LD
func (pm PageMeta) productSchemaJSON(shoe catalog.Shoe, variant catalog.Variant) string {
	price := shoe.Price
	if variant == catalog.VariantOnSale && shoe.SalePrice != nil {
		price = *shoe.SalePrice
	}

	schema := map[string]interface{}{
		"@context":    "https://schema.org/",
		"@type":       "Product",
		"name":        shoe.Name,
		"description": pm.Description,
		"image":       BuildAbsoluteURL(pm.SiteURL, shoe.ImageSrc),
		"releaseDate": shoe.ReleaseDate.Format("2006-01-02"),
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"url":           pm.OGURL,
			"priceCurrency": "USD",
			"price":         fmt.Sprintf("%.2f", float64(price)/100.0),
		},
	}

	bytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(bytes)
}
