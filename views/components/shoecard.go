package components

import (
	"context"
	"io"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/views/helpers"
	"github.com/loganlanou/soleshop/views/theme"
)

const (
	linkClass  = "flex-[1_1_340px] no-underline text-inherit"
	imageClass = "w-full rounded-[16px_16px_4px_4px]"
	rowClass   = "flex justify-between text-base"
	priceClass = "text-inherit no-underline"
)

var (
	nameClass      = twmerge.Merge(theme.Font(theme.Weights.Medium), theme.Text(theme.Colors.Gray900))
	colorInfoClass = theme.Text(theme.Colors.Gray700)
	salePriceClass = twmerge.Merge(theme.Text(theme.Colors.Primary), theme.Font(theme.Weights.Medium))
	struckThrough  = twmerge.Merge(priceClass, "line-through", theme.Text(theme.Colors.Gray700))
)

// PriceClass returns the base price classes; discounted shoes get a muted, struck price.
func PriceClass(variant catalog.Variant) string {
	switch variant {
	case catalog.VariantOnSale:
		return struckThrough
	case catalog.VariantNewRelease, catalog.VariantDefault:
		return priceClass
	}
	return priceClass
}

// currentPrice is what the shoe sells for now: the sale price when present,
// otherwise the base price.
func currentPrice(shoe catalog.Shoe) int64 {
	if shoe.SalePrice != nil {
		return *shoe.SalePrice
	}
	return shoe.Price
}

// ShoeCard renders the product card for shoe in the given variant.
// The on-sale variant always renders the sale price element.
func ShoeCard(shoe catalog.Shoe, variant catalog.Variant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		href := string(templ.URL(shoe.Href()))
		if err := tag(w, "a", "href", href, "class", linkClass, "data-variant", variant.String()); err != nil {
			return err
		}
		if err := tag(w, "article"); err != nil {
			return err
		}

		if err := tag(w, "div", "class", "relative"); err != nil {
			return err
		}
		if err := tag(w, "img", "alt", "", "src", shoe.ImageSrc, "class", imageClass); err != nil {
			return err
		}
		if kind, ok := variant.Badge(); ok {
			if err := Badge(kind).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := closeTag(w, "div"); err != nil {
			return err
		}

		if err := tag(w, "div", "class", twmerge.Merge(rowClass, "mt-3")); err != nil {
			return err
		}
		if err := textElement(w, "h3", shoe.Name, "class", nameClass); err != nil {
			return err
		}
		if err := textElement(w, "span", helpers.FormatPrice(shoe.Price),
			"class", PriceClass(variant), "data-price", "base"); err != nil {
			return err
		}
		if err := closeTag(w, "div"); err != nil {
			return err
		}

		if err := tag(w, "div", "class", twmerge.Merge(rowClass, "mt-[3px]")); err != nil {
			return err
		}
		if err := textElement(w, "p", helpers.Pluralize("Color", shoe.NumOfColors), "class", colorInfoClass); err != nil {
			return err
		}
		if variant == catalog.VariantOnSale {
			if err := textElement(w, "span", helpers.FormatPrice(currentPrice(shoe)),
				"class", salePriceClass, "data-price", "sale"); err != nil {
				return err
			}
		}
		if err := closeTag(w, "div"); err != nil {
			return err
		}

		if err := closeTag(w, "article"); err != nil {
			return err
		}
		return closeTag(w, "a")
	})
}

// Card resolves the variant against now and renders the card.
func Card(shoe catalog.Shoe, now time.Time) templ.Component {
	variant := shoe.Variant(func(releaseDate time.Time) bool {
		return catalog.IsNewShoe(releaseDate, now)
	})
	return ShoeCard(shoe, variant)
}
