package helpers

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{50, "$0.50"},
		{1599, "$15.99"},
		{16500, "$165.00"},
		{123456789, "$1,234,567.89"},
		{-250, "-$2.50"},
		{math.MaxInt64, "$92,233,720,368,547,758.07"},
		{math.MinInt64, "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.cents))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 Color", Pluralize("Color", 1))
	assert.Equal(t, "3 Colors", Pluralize("Color", 3))
	assert.Equal(t, "0 Colors", Pluralize("Color", 0))
	assert.Equal(t, "2 Boxes", Pluralize("Box", 2))
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "27% off", FormatDiscount(16500, 12000))
	assert.Equal(t, "", FormatDiscount(16500, 16500))
	assert.Equal(t, "", FormatDiscount(0, 0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 4, 2024", FormatDate(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)))
}
