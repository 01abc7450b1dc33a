// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/imaging"
)

/*
TestFit covers landscape, portrait, small and degenerate inputs.
*/
func TestFit(t *testing.T) {
	tests := []struct {
		name                  string
		width, height         int
		wantWidth, wantHeight int
	}{
		{"landscape", 1600, 1200, 800, 600},
		{"portrait", 1000, 2000, 400, 800},
		{"already small", 640, 480, 640, 480},
		{"exact box", 800, 800, 800, 800},
		{"thin strip", 4000, 2, 800, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := imaging.Fit(tt.width, tt.height, 800, 800)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantHeight, height)
		})
	}
}

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	source := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			source.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buffer bytes.Buffer
	require.NoError(t, png.Encode(&buffer, source))
	return &buffer
}

/*
TestNormalize resizes a PNG into a bounded JPEG.
*/
func TestNormalize(t *testing.T) {
	result, err := imaging.Normalize(encodePNG(t, 1200, 300), imaging.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "png", result.Format)
	assert.Equal(t, 800, result.Width)
	assert.Equal(t, 200, result.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 800, 200), decoded.Bounds())
}

/*
TestNormalize_RejectsGarbage reports ErrUnsupported for non-images.
*/
func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := imaging.Normalize(strings.NewReader("%PDF-1.4 not an image"), imaging.DefaultOptions())
	assert.ErrorIs(t, err, imaging.ErrUnsupported)
}
