package quantize

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// Histogram is a read-only table of sample counts over a discretized color cube.
//
// At is only called with coordinates inside [0, Levels()[axis]-1] for each axis.
// Counts must not change while a quantization is running.
type Histogram interface {
	// At returns the number of samples in cell (i, j, k).
	At(i, j, k int) uint64

	// Levels returns the number of discrete levels along each axis.
	Levels() [3]int
}

// RGBHistogram is a dense Histogram over RGB colors.
//
// Each 8-bit channel is reduced to the configured number of bits by dropping
// its low bits, so a histogram with bits {5, 6, 5} has 32x64x32 cells.
type RGBHistogram struct {
	bits   [3]uint
	levels [3]int
	counts []uint64
	total  uint64
}

// NewRGBHistogram creates an empty histogram with the given number of bits per
// channel. Each value must be between 1 and 8.
func NewRGBHistogram(rBits, gBits, bBits int) (*RGBHistogram, error) {
	h := &RGBHistogram{}
	for axis, b := range [3]int{rBits, gBits, bBits} {
		if b < 1 || b > 8 {
			return nil, fmt.Errorf("invalid %s channel bits %d: must be between 1 and 8", Axis(axis), b)
		}
		h.bits[axis] = uint(b)
		h.levels[axis] = 1 << b
	}
	h.counts = make([]uint64, h.levels[0]*h.levels[1]*h.levels[2])
	return h, nil
}

func (h *RGBHistogram) index(i, j, k int) int {
	return (i*h.levels[1]+j)*h.levels[2] + k
}

// At returns the number of samples in cell (i, j, k).
func (h *RGBHistogram) At(i, j, k int) uint64 {
	return h.counts[h.index(i, j, k)]
}

// Levels returns the number of cells along the red, green and blue axes.
func (h *RGBHistogram) Levels() [3]int {
	return h.levels
}

// Total returns the number of samples added since creation or the last Reset.
func (h *RGBHistogram) Total() uint64 {
	return h.total
}

// Add records n samples of the 8-bit color (r, g, b).
func (h *RGBHistogram) Add(r, g, b uint8, n uint32) {
	i := int(r >> (8 - h.bits[0]))
	j := int(g >> (8 - h.bits[1]))
	k := int(b >> (8 - h.bits[2]))
	h.counts[h.index(i, j, k)] += uint64(n)
	h.total += uint64(n)
}

// AddColor records one sample of c. Alpha is ignored.
func (h *RGBHistogram) AddColor(c color.Color) {
	r, g, b, _ := c.RGBA()
	h.Add(uint8(r>>8), uint8(g>>8), uint8(b>>8), 1)
}

// AddImage records every pixel of m that is not fully transparent.
func (h *RGBHistogram) AddImage(m image.Image) {
	rgba, ok := m.(*image.RGBA)
	if !ok {
		rgba = clone.AsRGBA(m)
	}
	h.AddRGBA(rgba, false)
}

// AddRGBA records the premultiplied pixels of m. Fully transparent pixels are
// skipped unless includeTransparent is set.
func (h *RGBHistogram) AddRGBA(m *image.RGBA, includeTransparent bool) {
	bounds := m.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+bounds.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0 && !includeTransparent {
				continue
			}
			h.Add(row[i], row[i+1], row[i+2], 1)
		}
	}
}

// Reset clears all counts.
func (h *RGBHistogram) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.total = 0
}
