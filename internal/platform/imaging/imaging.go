// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package imaging normalises stored-good photos before they are persisted.

Every accepted upload (JPEG, PNG, GIF, WebP, BMP or TIFF) is decoded, scaled
down to fit a bounding box while keeping its aspect ratio, and re-encoded as
JPEG. Images already inside the box are re-encoded without scaling.
*/
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Stored-good photo defaults.
const (
	DefaultMaxWidth  = 800
	DefaultMaxHeight = 800
	DefaultQuality   = 70
)

// ErrUnsupported is returned when the upload is not a decodable image.
var ErrUnsupported = errors.New("imaging: unsupported or corrupt image")

// Options bounds the output.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

// DefaultOptions fits photos into 800x800 at JPEG quality 70.
func DefaultOptions() Options {
	return Options{MaxWidth: DefaultMaxWidth, MaxHeight: DefaultMaxHeight, Quality: DefaultQuality}
}

// Result is the encoded JPEG with its final dimensions.
type Result struct {
	Data   []byte
	Width  int
	Height int
	Format string
}

// Normalize decodes src and returns the resized JPEG.
func Normalize(src io.Reader, options Options) (Result, error) {
	decoded, format, err := image.Decode(src)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	bounds := decoded.Bounds()
	width, height := Fit(bounds.Dx(), bounds.Dy(), options.MaxWidth, options.MaxHeight)

	// JPEG has no alpha, so transparent areas are flattened onto white
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), decoded, bounds, draw.Over, nil)

	quality := options.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, canvas, &jpeg.Options{Quality: quality}); err != nil {
		return Result{}, fmt.Errorf("imaging: encode jpeg: %w", err)
	}

	return Result{Data: buffer.Bytes(), Width: width, Height: height, Format: format}, nil
}

// Fit returns the largest size with the aspect ratio of width x height that
// fits maxWidth x maxHeight. Sizes already inside the box are unchanged and a
// non-positive bound disables that axis.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return width, height
	}

	scale := 1.0
	if maxWidth > 0 && width > maxWidth {
		scale = float64(maxWidth) / float64(width)
	}
	if maxHeight > 0 && height > maxHeight {
		scale = min(scale, float64(maxHeight)/float64(height))
	}
	if scale == 1.0 {
		return width, height
	}

	return max(1, int(float64(width)*scale+0.5)), max(1, int(float64(height)*scale+0.5))
}
