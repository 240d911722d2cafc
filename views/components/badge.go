package components

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/loganlanou/soleshop/internal/catalog"
	"github.com/loganlanou/soleshop/views/theme"
)

// badgeBase is the shared geometry: overlaid on the image, top right.
var badgeBase = "absolute -right-1 top-3 w-fit px-2.5 leading-8 rounded-[2px] " +
	theme.Font(theme.Weights.Medium) + " " + theme.Text(theme.Colors.White)

// 14/18 rem; kept out of the merge so it is not read as a text color.
const badgeFontSize = "text-[length:0.777rem]"

var badgeBackgrounds = map[catalog.BadgeKind]string{
	catalog.BadgeSale:       theme.Colors.Primary,
	catalog.BadgeNewRelease: theme.Colors.Secondary,
}

// BadgeColor is the background hex for kind, or "" for unknown kinds.
func BadgeColor(kind catalog.BadgeKind) string {
	return badgeBackgrounds[kind]
}

// BadgeClass returns the merged classes for a badge kind.
func BadgeClass(kind catalog.BadgeKind) string {
	return twmerge.Merge(badgeBase, theme.Bg(BadgeColor(kind))) + " " + badgeFontSize
}

// Badge renders the overlay label for kind. Unknown kinds render nothing.
func Badge(kind catalog.BadgeKind) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, ok := badgeBackgrounds[kind]; !ok {
			return nil
		}
		return textElement(w, "span", kind.Label(),
			"class", BadgeClass(kind),
			"data-badge", badgeName(kind),
		)
	})
}

func badgeName(kind catalog.BadgeKind) string {
	switch kind {
	case catalog.BadgeSale:
		return "sale"
	case catalog.BadgeNewRelease:
		return "new-release"
	}
	return ""
}
