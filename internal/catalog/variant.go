package catalog

import (
	"fmt"
	"time"
)

// Variant is the display mode of a shoe card. Exactly one is active per render.
type Variant int

const (
	VariantDefault Variant = iota
	VariantNewRelease
	VariantOnSale
)

// ResolveVariant picks the card variant for a shoe.
// A shoe can be both discounted and newly released; on-sale wins.
func ResolveVariant(salePrice *int64, releaseDate time.Time, isNew func(time.Time) bool) Variant {
	if salePrice != nil {
		return VariantOnSale
	}
	if isNew != nil && isNew(releaseDate) {
		return VariantNewRelease
	}
	return VariantDefault
}

func (v Variant) String() string {
	switch v {
	case VariantOnSale:
		return "on-sale"
	case VariantNewRelease:
		return "new-release"
	default:
		return "default"
	}
}

// MarshalText encodes the variant as its kebab-case name for JSON responses.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "on-sale":
		return VariantOnSale, nil
	case "new-release":
		return VariantNewRelease, nil
	case "default":
		return VariantDefault, nil
	}
	return VariantDefault, fmt.Errorf("unknown variant %q", s)
}

// BadgeKind selects the label and background of a card badge.
type BadgeKind int

const (
	BadgeSale BadgeKind = iota + 1
	BadgeNewRelease
)

// Label is the visible badge text.
func (k BadgeKind) Label() string {
	switch k {
	case BadgeSale:
		return "Sale"
	case BadgeNewRelease:
		return "Just Released"
	}
	return ""
}

// Badge returns the badge shown for the variant, if any.
func (v Variant) Badge() (BadgeKind, bool) {
	switch v {
	case VariantOnSale:
		return BadgeSale, true
	case VariantNewRelease:
		return BadgeNewRelease, true
	case VariantDefault:
		return 0, false
	}
	return 0, false
}
