package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// Swatch size limits. MaxSwatchSize bounds the side of one color square and
// MaxSwatchCanvas bounds each side of the rendered image.
const (
	MaxSwatchSize   = 1024
	MaxSwatchCanvas = 16384
)

// SwatchResult contains a palette rendered as a grid of solid squares.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch draws each palette color as a size x size square, left to right
// and top to bottom, wrapping after columns squares. Unused cells of the last row
// are transparent. The result is a base64-encoded PNG.
//
// size must be between 1 and MaxSwatchSize, and the grid must fit within
// MaxSwatchCanvas pixels on each side.
func RenderSwatch(entries []PaletteEntry, size, columns int) (*SwatchResult, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if size < 1 || size > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size must be between 1 and %d, got %d", MaxSwatchSize, size)
	}
	if columns < 1 {
		return nil, fmt.Errorf("columns must be at least 1, got %d", columns)
	}

	columns = min(columns, len(entries))
	rows := (len(entries) + columns - 1) / columns
	if columns > MaxSwatchCanvas/size || rows > MaxSwatchCanvas/size {
		return nil, fmt.Errorf("swatch of %dx%d squares at size %d exceeds %d pixels per side",
			columns, rows, size, MaxSwatchCanvas)
	}

	canvas := imaging.New(columns*size, rows*size, color.NRGBA{})
	for i, e := range entries {
		c := e.Color.RGB
		tile := imaging.New(size, size, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		canvas = imaging.Paste(canvas, tile, image.Pt((i%columns)*size, (i/columns)*size))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode swatch image: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		Columns:     columns,
		Rows:        rows,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
