package quantize

// Box is an axis-aligned region of the color cube with inclusive bounds.
//
// The cached point count is only meaningful after Shrink, or for boxes produced by
// Split, which assigns each child the count it scanned. The cached volume orders
// boxes in the Queue.
type Box struct {
	lo, hi [3]int // inclusive
	points uint64
	volume int
}

// NewBox creates a box spanning lo to hi inclusive. Its point count is zero until
// Shrink is called.
func NewBox(lo, hi [3]int) Box {
	b := Box{lo: lo, hi: hi}
	b.volume = b.calculateVolume()
	return b
}

// Bounds returns the inclusive lower and upper corners of the box.
func (b Box) Bounds() (lo, hi [3]int) {
	return b.lo, b.hi
}

// Points returns the cached number of histogram samples inside the box.
func (b Box) Points() uint64 {
	return b.points
}

// Volume returns the number of histogram cells covered by the box.
func (b Box) Volume() int {
	return b.volume
}

// Shrink moves each face of the box inward until it touches a cell with samples,
// then recounts the box's points.
//
// Axes are tightened in order red, green, blue, each against the already tightened
// ranges of the previous axes. A box without samples collapses to its lower corner
// along every axis.
func (b *Box) Shrink(h Histogram) {
	for a := Red; a <= Blue; a++ {
		b.axisShrink(h, a)
	}
	b.points = b.countPoints(h)
	b.volume = b.calculateVolume()
}

// Split divides the box along its longest axis at the plane where the samples on
// each side are closest to half, pushing both halves onto q. It reports whether a
// split happened; the receiver itself is never pushed.
//
// The box must have been shrunk so that its point count is current.
func (b Box) Split(h Histogram, q *Queue) bool {
	a := b.longestAxis()

	// Sweep a plane perpendicular to a from the low face to the high face,
	// moving the samples it crosses from the high side to the low side.
	var low uint64
	high := b.points
	for i := b.lo[a]; i <= b.hi[a]; i++ {
		plane := b.planePoints(h, a, i)
		low += plane
		high -= plane

		if low <= high {
			continue
		}
		switch {
		case high > 0:
			box1, box2 := b.cut(a, i)
			box1.points, box2.points = low, high
			q.Push(box1)
			q.Push(box2)
			return true
		case low-plane > 0:
			// Everything left sits on plane i; cut just before it instead.
			box1, box2 := b.cut(a, i-1)
			box1.points, box2.points = low-plane, high+plane
			q.Push(box1)
			q.Push(box2)
			return true
		default:
			return false
		}
	}
	return false
}

// MeanColor returns the sample-weighted average color of the box, scaled from
// histogram coordinates to 0-255 and packed with Pack.
//
// A box without samples returns Black. Boxes handed out by MedianCut always hold
// samples.
func (b Box) MeanColor(h Histogram) uint32 {
	var sum [3]uint64
	var count uint64
	for i := b.lo[0]; i <= b.hi[0]; i++ {
		for j := b.lo[1]; j <= b.hi[1]; j++ {
			for k := b.lo[2]; k <= b.hi[2]; k++ {
				c := h.At(i, j, k)
				sum[0] += c * uint64(i)
				sum[1] += c * uint64(j)
				sum[2] += c * uint64(k)
				count += c
			}
		}
	}
	if count == 0 {
		return Black
	}

	// Scale to 0-255 before dividing by the count. Both divisions truncate and
	// the order changes the result.
	levels := h.Levels()
	var ch [3]uint8
	for a := range ch {
		if levels[a] > 1 {
			ch[a] = uint8(255 * sum[a] / uint64(levels[a]-1) / count)
		}
	}
	return Pack(ch[0], ch[1], ch[2], 255)
}

func (b Box) calculateVolume() int {
	return (b.hi[0] - b.lo[0] + 1) * (b.hi[1] - b.lo[1] + 1) * (b.hi[2] - b.lo[2] + 1)
}

func (b Box) countPoints(h Histogram) uint64 {
	var count uint64
	for i := b.lo[0]; i <= b.hi[0]; i++ {
		for j := b.lo[1]; j <= b.hi[1]; j++ {
			for k := b.lo[2]; k <= b.hi[2]; k++ {
				count += h.At(i, j, k)
			}
		}
	}
	return count
}

// longestAxis picks the axis with the largest extent, preferring red over green
// over blue on ties.
func (b Box) longestAxis() Axis {
	r := b.hi[Red] - b.lo[Red]
	g := b.hi[Green] - b.lo[Green]
	bl := b.hi[Blue] - b.lo[Blue]
	switch {
	case r >= g && r >= bl:
		return Red
	case g >= r && g >= bl:
		return Green
	default:
		return Blue
	}
}

// at reads the histogram with coordinate i on axis a, and j, k on the two other
// axes in ascending order.
func at(h Histogram, a Axis, i, j, k int) uint64 {
	var c [3]int
	p, q := a.others()
	c[a], c[p], c[q] = i, j, k
	return h.At(c[0], c[1], c[2])
}

// planePoints counts the samples in slab i of axis a within the box's current
// ranges on the other axes.
func (b Box) planePoints(h Histogram, a Axis, i int) uint64 {
	p, q := a.others()
	var n uint64
	for j := b.lo[p]; j <= b.hi[p]; j++ {
		for k := b.lo[q]; k <= b.hi[q]; k++ {
			n += at(h, a, i, j, k)
		}
	}
	return n
}

func (b Box) planeEmpty(h Histogram, a Axis, i int) bool {
	p, q := a.others()
	for j := b.lo[p]; j <= b.hi[p]; j++ {
		for k := b.lo[q]; k <= b.hi[q]; k++ {
			if at(h, a, i, j, k) > 0 {
				return false
			}
		}
	}
	return true
}

func (b *Box) axisShrink(h Histogram, a Axis) {
	for b.lo[a] < b.hi[a] && b.planeEmpty(h, a, b.lo[a]) {
		b.lo[a]++
	}
	for b.hi[a] > b.lo[a] && b.planeEmpty(h, a, b.hi[a]) {
		b.hi[a]--
	}
}

// cut returns the part of b up to and including plane i of axis a, and the part
// after it. Point counts are left for the caller to assign.
func (b Box) cut(a Axis, i int) (Box, Box) {
	hi1, lo2 := b.hi, b.lo
	hi1[a] = i
	lo2[a] = i + 1
	return NewBox(b.lo, hi1), NewBox(lo2, b.hi)
}
