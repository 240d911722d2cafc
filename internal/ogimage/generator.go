package ogimage

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	_ "image/jpeg"
)

const (
	Width  = 1200
	Height = 630

	textAreaHeight = 190
)

// ShoeInfo is what the social preview shows for a shoe.
type ShoeInfo struct {
	Name       string
	Price      string // formatted base price
	SalePrice  string // formatted sale price, empty when not discounted
	ColorLabel string
	BadgeLabel string // empty for no badge
	BadgeColor string // hex, e.g. "#c5295d"
	ImagePath  string // optional local image drawn behind the text
}

var (
	regularFont = mustParseFont(goregular.TTF)
	boldFont    = mustParseFont(gobold.TTF)
)

// Generate draws the Open Graph image for a shoe.
func Generate(info ShoeInfo) (image.Image, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetHexColor("#f2f2f2")
	dc.Clear()

	if info.ImagePath != "" {
		if img, err := gg.LoadImage(info.ImagePath); err != nil {
			slog.Debug("shoe image unavailable, drawing plain background", "path", info.ImagePath, "error", err)
		} else {
			drawCover(dc, img)
		}
	}

	// semi-transparent bar behind the text
	textAreaY := float64(Height - textAreaHeight)
	dc.SetRGBA(0, 0, 0, 0.75)
	dc.DrawRectangle(0, textAreaY, Width, textAreaHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face(boldFont, 56))
	dc.DrawStringAnchored(truncateText(info.Name, 32), 60, textAreaY+70, 0, 0.5)

	dc.SetFontFace(face(regularFont, 32))
	secondLine := info.Price
	if info.SalePrice != "" {
		secondLine = fmt.Sprintf("%s (was %s)", info.SalePrice, info.Price)
	}
	if info.ColorLabel != "" {
		secondLine = fmt.Sprintf("%s • %s", secondLine, info.ColorLabel)
	}
	dc.DrawStringAnchored(secondLine, 60, textAreaY+140, 0, 0.5)

	if info.BadgeLabel != "" {
		drawBadge(dc, info.BadgeLabel, info.BadgeColor)
	}

	return dc.Image(), nil
}

// WritePNG encodes the generated image to w.
func WritePNG(w io.Writer, info ShoeInfo) error {
	img, err := Generate(info)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// drawBadge draws the label pill in the top right corner, like the card badge.
func drawBadge(dc *gg.Context, label, hex string) {
	dc.SetFontFace(face(boldFont, 36))
	textWidth, _ := dc.MeasureString(label)

	padX, boxH := 28.0, 72.0
	boxW := textWidth + 2*padX
	x := Width - boxW - 40
	y := 48.0

	if hex == "" {
		hex = "#1a1a1a"
	}
	dc.SetHexColor(hex)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 4)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, x+boxW/2, y+boxH/2, 0.5, 0.35)
}

// drawCover scales img to fill the canvas, cropping the overflow.
func drawCover(dc *gg.Context, img image.Image) {
	b := img.Bounds()
	scale := max(float64(Width)/float64(b.Dx()), float64(Height)/float64(b.Dy()))

	dc.Push()
	dc.Scale(scale, scale)
	dx := (float64(Width)/scale - float64(b.Dx())) / 2
	dy := (float64(Height)/scale - float64(b.Dy())) / 2
	dc.DrawImage(img, int(dx), int(dy))
	dc.Pop()
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse embedded font: %v", err))
	}
	return f
}

// truncateText truncates text to maxLength characters
func truncateText(text string, maxLength int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= maxLength {
		return string(runes)
	}
	return string(runes[:maxLength-3]) + "..."
}
