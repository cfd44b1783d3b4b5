package quantize

import "image/color"

// Swatch is one color of a quantized palette together with the number of
// histogram samples in the box it was computed from.
type Swatch struct {
	Color  color.RGBA
	Points uint64
}

// MedianCut quantizes h to at most maxBoxes colors and appends them to dst,
// returning the extended slice. Colors are packed with Pack and always opaque.
//
// Nothing is appended when maxBoxes is less than one or when h holds no samples.
func MedianCut(h Histogram, maxBoxes int, dst []uint32) []uint32 {
	for _, b := range newCutter(h, maxBoxes).run() {
		dst = append(dst, b.MeanColor(h))
	}
	return dst
}

// Quantize is like MedianCut but returns each color with its box's point count.
func Quantize(h Histogram, maxBoxes int) []Swatch {
	boxes := newCutter(h, maxBoxes).run()
	swatches := make([]Swatch, 0, len(boxes))
	for _, b := range boxes {
		swatches = append(swatches, Swatch{
			Color:  Unpack(b.MeanColor(h)),
			Points: b.points,
		})
	}
	return swatches
}

// cutter holds the state of one median cut run.
type cutter struct {
	h        Histogram
	maxBoxes int
	queue    Queue
	leaves   []Box // boxes that could not be split, in the order found
	full     bool
}

func newCutter(h Histogram, maxBoxes int) *cutter {
	c := &cutter{h: h, maxBoxes: maxBoxes}
	if maxBoxes < 1 {
		return c
	}

	levels := h.Levels()
	root := NewBox([3]int{}, [3]int{levels[0] - 1, levels[1] - 1, levels[2] - 1})
	root.points = root.countPoints(h)
	if root.points == 0 {
		return c
	}
	c.queue.Push(root)
	return c
}

// step shrinks and splits the largest queued box. It returns false once the queue
// is empty, the queue has reached maxBoxes, or the result is full.
func (c *cutter) step() bool {
	if c.full || c.queue.Len() == 0 || c.queue.Len() >= c.maxBoxes {
		return false
	}

	box := c.queue.Pop()
	box.Shrink(c.h)
	if box.Split(c.h, &c.queue) {
		return true
	}

	if len(c.leaves) >= c.maxBoxes {
		c.full = true
		return false
	}
	c.leaves = append(c.leaves, box)
	return true
}

// run steps until done, then moves the remaining queued boxes to the result
// largest volume first.
func (c *cutter) run() []Box {
	for c.step() {
	}
	for !c.full && c.queue.Len() > 0 && len(c.leaves) < c.maxBoxes {
		c.leaves = append(c.leaves, c.queue.Pop())
	}
	return c.leaves
}
