package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-palette-mcp/internal/quantize"
)

// HistogramOptions controls how image pixels are sampled into a color histogram.
type HistogramOptions struct {
	// Bits per channel (red, green, blue), each 1-8. The zero value means
	// quantize.DefaultBits.
	Bits [3]int

	// MaxDimension downsamples the image with nearest-neighbor sampling so that
	// neither side exceeds it. Zero samples every pixel.
	MaxDimension int

	// Region limits sampling to a rectangle of the image.
	Region *Region

	// NamedRegion limits sampling to a named part of the image (see RegionNames).
	// It is ignored when Region is set.
	NamedRegion string

	// IncludeTransparent counts fully transparent pixels. They are skipped by
	// default so image backgrounds do not pull the palette toward black.
	IncludeTransparent bool
}

// BuildHistogram samples the pixels of img into a new RGB histogram.
//
// Parameters:
//   - img: The source image.
//   - opts: Sampling options. The zero value samples every non-transparent pixel
//     into a 5-6-5 bit histogram.
//
// Returns:
//   - *quantize.RGBHistogram: The filled histogram.
//   - error: Non-nil if the bits or region are invalid.
//
// Pixels are read as premultiplied 8-bit RGBA, matching SampleColor. Downsampling
// uses nearest-neighbor so no blended colors enter the histogram.
func BuildHistogram(img image.Image, opts HistogramOptions) (*quantize.RGBHistogram, error) {
	bits := opts.Bits
	if bits == ([3]int{}) {
		bits = quantize.DefaultBits
	}
	h, err := quantize.NewRGBHistogram(bits[0], bits[1], bits[2])
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}

	src, err := sampleSource(img, opts)
	if err != nil {
		return nil, err
	}

	h.AddRGBA(clone.AsRGBA(src), opts.IncludeTransparent)

	return h, nil
}

// sampleSource applies the region and downsampling options to img.
func sampleSource(img image.Image, opts HistogramOptions) (image.Image, error) {
	src := img
	switch {
	case opts.Region != nil:
		cropped, err := cropRegion(img, *opts.Region)
		if err != nil {
			return nil, err
		}
		src = cropped
	case opts.NamedRegion != "":
		r, err := NamedRegion(img.Bounds(), opts.NamedRegion)
		if err != nil {
			return nil, err
		}
		cropped, err := cropRegion(img, r)
		if err != nil {
			return nil, fmt.Errorf("failed to crop %s: %w", opts.NamedRegion, err)
		}
		src = cropped
	}

	if opts.MaxDimension > 0 {
		b := src.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			src = imaging.Fit(src, opts.MaxDimension, opts.MaxDimension, imaging.NearestNeighbor)
		}
	}
	return src, nil
}
