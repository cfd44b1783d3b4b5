package quantize

import (
	"image"
	"image/color"
	"image/draw"
)

// DefaultBits is the histogram resolution used when none is configured: 5 bits
// of red, 6 of green and 5 of blue.
var DefaultBits = [3]int{5, 6, 5}

// MedianCutQuantizer implements draw.Quantizer using median cut over an
// RGBHistogram of the image.
//
// It only builds the palette. Mapping pixels onto it is left to the caller (for
// example image/gif), so no dithering happens here.
type MedianCutQuantizer struct {
	// Bits per channel of the intermediate histogram. The zero value means
	// DefaultBits.
	Bits [3]int
}

var _ draw.Quantizer = MedianCutQuantizer{}

// Quantize appends up to cap(p)-len(p) colors to p, or up to 256 if p has no
// spare capacity. Fully transparent pixels are ignored. If Bits is invalid, p is
// returned unchanged.
func (q MedianCutQuantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	bits := q.Bits
	if bits == ([3]int{}) {
		bits = DefaultBits
	}
	h, err := NewRGBHistogram(bits[0], bits[1], bits[2])
	if err != nil {
		return p
	}
	h.AddImage(m)

	n := cap(p) - len(p)
	if n <= 0 {
		n = 256
	}
	for _, s := range Quantize(h, n) {
		p = append(p, s.Color)
	}
	return p
}
