package ogimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, ShoeInfo{
		Name:       "Tail Climber",
		Price:      "$165.00",
		SalePrice:  "$99.00",
		ColorLabel: "2 Colors",
		BadgeLabel: "Sale",
		BadgeColor: "#c5295d",
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestGenerate_MissingImageFallsBack(t *testing.T) {
	img, err := Generate(ShoeInfo{
		Name:      "No Photo",
		Price:     "$80.00",
		ImagePath: "does/not/exist.jpg",
	})
	require.NoError(t, err)

	// top left pixel is the plain background
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xf2f2), r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "abcdefg...", truncateText("abcdefghijklmnop", 10))
}
