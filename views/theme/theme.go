// Package theme holds the storefront palette and font weights.
package theme

import "fmt"

type palette struct {
	White     string
	Gray100   string
	Gray300   string
	Gray500   string
	Gray700   string
	Gray900   string
	Primary   string
	Secondary string
}

// Colors is the shop palette.
var Colors = palette{
	White:     "#ffffff",
	Gray100:   "#f2f2f2",
	Gray300:   "#d8d8d8",
	Gray500:   "#9a9a9a",
	Gray700:   "#6b6b6b",
	Gray900:   "#1a1a1a",
	Primary:   "#c5295d",
	Secondary: "#6868d9",
}

type weights struct {
	Normal int
	Medium int
	Bold   int
}

// Weights is the font weight scale.
var Weights = weights{
	Normal: 500,
	Medium: 600,
	Bold:   800,
}

// Text returns a Tailwind arbitrary text color class, e.g. "text-[#c5295d]".
func Text(hex string) string {
	return fmt.Sprintf("text-[%s]", hex)
}

// Bg returns a Tailwind arbitrary background color class.
func Bg(hex string) string {
	return fmt.Sprintf("bg-[%s]", hex)
}

// Font returns a Tailwind arbitrary font weight class, e.g. "font-[600]".
func Font(weight int) string {
	return fmt.Sprintf("font-[%d]", weight)
}
