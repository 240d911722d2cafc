package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Shoe is the record a card is rendered from. Prices are in cents.
type Shoe struct {
	Slug        string
	Name        string
	ImageSrc    string
	Price       int64
	SalePrice   *int64 // nil when the shoe is not discounted
	ReleaseDate time.Time
	NumOfColors int
}

// Variant resolves the card variant using the given recency predicate.
func (s Shoe) Variant(isNew func(time.Time) bool) Variant {
	return ResolveVariant(s.SalePrice, s.ReleaseDate, isNew)
}

// Href is the detail page link for the shoe.
func (s Shoe) Href() string {
	return "/shoe/" + s.Slug
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks the fields a stored shoe must have. Rendering never calls it.
func (s Shoe) Validate() error {
	if !slugPattern.MatchString(s.Slug) {
		return fmt.Errorf("slug %q must be lowercase letters, numbers, and hyphens", s.Slug)
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if s.Price < 0 {
		return errors.New("price must not be negative")
	}
	if s.SalePrice != nil && *s.SalePrice < 0 {
		return errors.New("sale price must not be negative")
	}
	if s.NumOfColors < 0 {
		return errors.New("number of colors must not be negative")
	}
	if s.ReleaseDate.IsZero() {
		return errors.New("release date is required")
	}
	return nil
}

// Slugify turns a display name into a slug, e.g. "Tail-Climber 2" -> "tail-climber-2".
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
