package shop

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/views/components"
	"github.com/loganlanou/soleshop/views/helpers"
	"github.com/loganlanou/soleshop/views/layout"
	qrcode "github.com/skip2/go-qrcode"
)

// Item is a shoe with its variant already resolved.
type Item struct {
	Shoe    catalog.Shoe
	Variant catalog.Variant
}

// Filter narrows the listing by variant.
type Filter string

const (
	FilterAll  Filter = ""
	FilterSale Filter = "sale"
	FilterNew  Filter = "new"
)

// ParseFilter maps the query value; unknown values show everything.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterSale, FilterNew:
		return Filter(s)
	}
	return FilterAll
}

// Keep reports whether an item with variant v belongs in the filtered listing.
func (f Filter) Keep(v catalog.Variant) bool {
	switch f {
	case FilterSale:
		return v == catalog.VariantOnSale
	case FilterNew:
		return v == catalog.VariantNewRelease
	}
	return true
}

var filterLinks = []struct {
	filter Filter
	label  string
	href   string
}{
	{FilterAll, "All Shoes", "/"},
	{FilterSale, "Sale", "/?filter=sale"},
	{FilterNew, "New Releases", "/?filter=new"},
}

// Index renders the shop listing as a wrapping grid of cards.
func Index(meta layout.PageMeta, items []Item, filter Filter) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header class="mb-8 flex items-baseline justify-between"><h2 class="text-2xl font-[600]">%s</h2><nav class="flex gap-6">`,
			templ.EscapeString(meta.OGSiteName)); err != nil {
			return err
		}
		for _, link := range filterLinks {
			class := "text-[#6b6b6b]"
			if link.filter == filter {
				class = "text-[#c5295d] font-[600]"
			}
			if _, err := fmt.Fprintf(w, `<a href="%s" class="%s">%s</a>`, link.href, class, link.label); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<a href="/catalog.pdf" class="text-[#6b6b6b]">Line Sheet</a></nav></header>`); err != nil {
			return err
		}

		if len(items) == 0 {
			_, err := io.WriteString(w, `<p class="text-[#6b6b6b]" data-empty="true">No shoes match this filter.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<section class="flex flex-wrap gap-8" data-shoe-grid="true">`); err != nil {
			return err
		}
		for _, item := range items {
			if err := components.ShoeCard(item.Shoe, item.Variant).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return layout.Base(meta, body)
}

// Detail renders the page a card links to, with a QR code pointing back at it.
func Detail(meta layout.PageMeta, item Item) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<a href="/" class="text-[#6b6b6b]">&larr; All shoes</a><div class="mt-6 flex flex-wrap gap-12"><div class="max-w-md flex-1">`); err != nil {
			return err
		}
		if err := components.ShoeCard(item.Shoe, item.Variant).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div><dl class="flex-1 space-y-2 text-[#6b6b6b]">`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<dt>Released</dt><dd data-release-date="true">%s</dd>`,
			templ.EscapeString(helpers.FormatDate(item.Shoe.ReleaseDate))); err != nil {
			return err
		}
		if item.Variant == catalog.VariantOnSale && item.Shoe.SalePrice != nil {
			if discount := helpers.FormatDiscount(item.Shoe.Price, *item.Shoe.SalePrice); discount != "" {
				if _, err := fmt.Fprintf(w, `<dt>Savings</dt><dd class="text-[#c5295d]" data-discount="true">%s</dd>`,
					templ.EscapeString(discount)); err != nil {
					return err
				}
			}
		}

		if src, err := qrDataURI(meta.CanonicalURL); err == nil {
			if _, err := fmt.Fprintf(w, `<dt>Share</dt><dd><img src="%s" alt="QR code for %s" width="160" height="160" data-qr="true"></dd>`,
				src, templ.EscapeString(item.Shoe.Name)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</dl></div>`)
		return err
	})
	return layout.Base(meta, body)
}

// NotFound renders the missing shoe page.
func NotFound(meta layout.PageMeta, slug string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h2 class="text-2xl font-[600]">Shoe not found</h2><p class="mt-4 text-[#6b6b6b]">We couldn't find &ldquo;%s&rdquo;. <a href="/" class="text-[#c5295d]">Browse all shoes</a>.</p>`,
			templ.EscapeString(slug))
		return err
	})
	return layout.Base(meta, body)
}

func qrDataURI(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
