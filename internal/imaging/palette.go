package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/image-palette-mcp/internal/quantize"
)

// PaletteOptions configures ExtractPalette.
type PaletteOptions struct {
	HistogramOptions

	// SortByShare orders the palette by pixel share, largest first. Otherwise
	// colors keep the order median cut produced them in.
	SortByShare bool
}

// PaletteEntry is one color of an extracted palette.
type PaletteEntry struct {
	Color ColorResult `json:"color"`

	// Pixels is the number of sampled pixels inside the color's box.
	Pixels uint64 `json:"pixels"`

	// Percentage is Pixels as a share of all sampled pixels (0-100).
	Percentage float64 `json:"percentage"`
}

// PaletteResult contains a median-cut palette for an image.
type PaletteResult struct {
	Colors          []PaletteEntry `json:"colors"`
	SampledPixels   uint64         `json:"sampled_pixels"`
	HistogramLevels [3]int         `json:"histogram_levels"`
}

// ExtractPalette reduces an image to at most count representative colors using
// median cut.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return. Must be at least 1. Images with
//     fewer distinct histogram cells yield fewer colors.
//   - opts: Sampling and ordering options.
//
// Returns:
//   - *PaletteResult: The palette. It is empty when no pixel was sampled, for
//     example in a fully transparent image.
//   - error: Non-nil if count or the options are invalid.
//
// # Percentages
//
// Percentages describe how many sampled pixels fall inside each color's box of
// the histogram. They are not the result of mapping pixels to their nearest
// palette color.
func ExtractPalette(img image.Image, count int, opts PaletteOptions) (*PaletteResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}

	h, err := BuildHistogram(img, opts.HistogramOptions)
	if err != nil {
		return nil, err
	}

	total := h.Total()
	swatches := quantize.Quantize(h, count)
	colors := make([]PaletteEntry, 0, len(swatches))
	for _, s := range swatches {
		colors = append(colors, PaletteEntry{
			Color:      NewColorResult(s.Color),
			Pixels:     s.Points,
			Percentage: float64(s.Points) / float64(total) * 100,
		})
	}

	if opts.SortByShare {
		sort.SliceStable(colors, func(i, j int) bool {
			return colors[i].Pixels > colors[j].Pixels
		})
	}

	return &PaletteResult{
		Colors:          colors,
		SampledPixels:   total,
		HistogramLevels: h.Levels(),
	}, nil
}
