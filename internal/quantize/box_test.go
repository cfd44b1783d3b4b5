package quantize

import (
	"image/color"
	"testing"
)

// denseHistogram is a Histogram with arbitrary levels per axis for tests.
type denseHistogram struct {
	levels [3]int
	counts []uint64
}

func newDenseHistogram(r, g, b int) *denseHistogram {
	return &denseHistogram{
		levels: [3]int{r, g, b},
		counts: make([]uint64, r*g*b),
	}
}

func (h *denseHistogram) index(i, j, k int) int {
	return (i*h.levels[1]+j)*h.levels[2] + k
}

func (h *denseHistogram) At(i, j, k int) uint64 { return h.counts[h.index(i, j, k)] }
func (h *denseHistogram) Levels() [3]int        { return h.levels }

func (h *denseHistogram) set(i, j, k int, n uint64) {
	h.counts[h.index(i, j, k)] = n
}

func (h *denseHistogram) total() uint64 {
	var t uint64
	for _, c := range h.counts {
		t += c
	}
	return t
}

// fullBox returns an unshrunk box covering the whole histogram.
func fullBox(h Histogram) Box {
	l := h.Levels()
	return NewBox([3]int{}, [3]int{l[0] - 1, l[1] - 1, l[2] - 1})
}

func TestNewBox_Volume(t *testing.T) {
	b := NewBox([3]int{1, 2, 3}, [3]int{4, 2, 7})
	if b.Volume() != 4*1*5 {
		t.Errorf("Volume: got %d, want %d", b.Volume(), 4*1*5)
	}
	if b.Points() != 0 {
		t.Errorf("Points: got %d, want 0 before Shrink", b.Points())
	}
}

func TestBox_Shrink(t *testing.T) {
	h := newDenseHistogram(8, 8, 8)
	h.set(2, 3, 4, 5)
	h.set(5, 1, 6, 2)

	b := fullBox(h)
	b.Shrink(h)

	lo, hi := b.Bounds()
	if lo != [3]int{2, 1, 4} || hi != [3]int{5, 3, 6} {
		t.Errorf("Bounds: got %v-%v, want [2 1 4]-[5 3 6]", lo, hi)
	}
	if b.Points() != 7 {
		t.Errorf("Points: got %d, want 7", b.Points())
	}
	if b.Volume() != 4*3*3 {
		t.Errorf("Volume: got %d, want %d", b.Volume(), 4*3*3)
	}
}

func TestBox_Shrink_Idempotent(t *testing.T) {
	h := newDenseHistogram(6, 7, 5)
	h.set(1, 6, 0, 3)
	h.set(4, 2, 3, 1)
	h.set(3, 3, 4, 9)

	b := fullBox(h)
	b.Shrink(h)
	first := b
	b.Shrink(h)

	if b != first {
		t.Errorf("second Shrink changed box: got %+v, want %+v", b, first)
	}
}

func TestBox_Shrink_Empty(t *testing.T) {
	h := newDenseHistogram(4, 4, 4)

	b := NewBox([3]int{1, 0, 2}, [3]int{3, 3, 3})
	b.Shrink(h)

	lo, hi := b.Bounds()
	if lo != hi {
		t.Errorf("empty box should collapse to a point, got %v-%v", lo, hi)
	}
	if b.Points() != 0 {
		t.Errorf("Points: got %d, want 0", b.Points())
	}
	if b.Volume() != 1 {
		t.Errorf("Volume: got %d, want 1", b.Volume())
	}
}

func TestBox_Shrink_UsesCurrentRanges(t *testing.T) {
	// Samples outside the box on other axes must not keep a face from moving.
	h := newDenseHistogram(4, 4, 4)
	h.set(0, 3, 3, 10) // outside the box along green and blue
	h.set(2, 1, 1, 1)

	b := NewBox([3]int{0, 0, 0}, [3]int{3, 2, 2})
	b.Shrink(h)

	lo, hi := b.Bounds()
	if lo != [3]int{2, 1, 1} || hi != [3]int{2, 1, 1} {
		t.Errorf("Bounds: got %v-%v, want [2 1 1]-[2 1 1]", lo, hi)
	}
	if b.Points() != 1 {
		t.Errorf("Points: got %d, want 1", b.Points())
	}
}

func TestBox_LongestAxis(t *testing.T) {
	tests := []struct {
		name string
		hi   [3]int
		want Axis
	}{
		{"red longest", [3]int{5, 2, 2}, Red},
		{"green longest", [3]int{2, 5, 2}, Green},
		{"blue longest", [3]int{2, 2, 5}, Blue},
		{"all equal prefers red", [3]int{3, 3, 3}, Red},
		{"green and blue tie prefers green", [3]int{2, 5, 5}, Green},
		{"red and blue tie prefers red", [3]int{5, 2, 5}, Red},
		{"single cell", [3]int{0, 0, 0}, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBox([3]int{}, tt.hi)
			if got := b.longestAxis(); got != tt.want {
				t.Errorf("longestAxis: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBox_Split_AtMedian(t *testing.T) {
	h := newDenseHistogram(8, 1, 1)
	h.set(0, 0, 0, 5)
	h.set(3, 0, 0, 2)
	h.set(6, 0, 0, 2)

	b := fullBox(h)
	b.Shrink(h)

	var q Queue
	if !b.Split(h, &q) {
		t.Fatal("Split returned false")
	}
	if q.Len() != 2 {
		t.Fatalf("queue length: got %d, want 2", q.Len())
	}

	// Larger volume pops first.
	high := q.Pop()
	low := q.Pop()

	if lo, hi := low.Bounds(); lo[0] != 0 || hi[0] != 0 || low.Points() != 5 {
		t.Errorf("low child: got red %d-%d with %d points, want 0-0 with 5", lo[0], hi[0], low.Points())
	}
	if lo, hi := high.Bounds(); lo[0] != 1 || hi[0] != 6 || high.Points() != 4 {
		t.Errorf("high child: got red %d-%d with %d points, want 1-6 with 4", lo[0], hi[0], high.Points())
	}
}

func TestBox_Split_BacksOffWhenRemainderOnPlane(t *testing.T) {
	h := newDenseHistogram(8, 1, 1)
	h.set(0, 0, 0, 1)
	h.set(5, 0, 0, 10)

	b := fullBox(h)
	b.Shrink(h)

	var q Queue
	if !b.Split(h, &q) {
		t.Fatal("Split returned false")
	}

	first := q.Pop()
	second := q.Pop()

	if lo, hi := first.Bounds(); lo[0] != 0 || hi[0] != 4 || first.Points() != 1 {
		t.Errorf("low child: got red %d-%d with %d points, want 0-4 with 1", lo[0], hi[0], first.Points())
	}
	if lo, hi := second.Bounds(); lo[0] != 5 || hi[0] != 5 || second.Points() != 10 {
		t.Errorf("high child: got red %d-%d with %d points, want 5-5 with 10", lo[0], hi[0], second.Points())
	}
}

func TestBox_Split_AlongGreen(t *testing.T) {
	h := newDenseHistogram(4, 16, 4)
	h.set(1, 2, 1, 3)
	h.set(2, 14, 2, 3)

	b := fullBox(h)
	b.Shrink(h)

	var q Queue
	if !b.Split(h, &q) {
		t.Fatal("Split returned false")
	}
	for q.Len() > 0 {
		c := q.Pop()
		lo, hi := c.Bounds()
		if lo[Red] != 1 || hi[Red] != 2 || lo[Blue] != 1 || hi[Blue] != 2 {
			t.Errorf("child changed red or blue range: %v-%v", lo, hi)
		}
		if c.Points() != 3 {
			t.Errorf("child points: got %d, want 3", c.Points())
		}
	}
}

func TestBox_Split_SingleCell(t *testing.T) {
	h := newDenseHistogram(8, 8, 8)
	h.set(3, 4, 5, 42)

	b := fullBox(h)
	b.Shrink(h)

	var q Queue
	if b.Split(h, &q) {
		t.Error("Split of a single occupied cell should fail")
	}
	if q.Len() != 0 {
		t.Errorf("queue length: got %d, want 0", q.Len())
	}

	want := Pack(uint8(255*3/7), uint8(255*4/7), uint8(255*5/7), 255)
	if got := b.MeanColor(h); got != want {
		t.Errorf("MeanColor: got %v, want %v", Unpack(got), Unpack(want))
	}
}

func TestBox_Split_NoEmptyChildren(t *testing.T) {
	h := newDenseHistogram(5, 5, 5)
	cells := [][4]int{
		{0, 0, 0, 1}, {4, 4, 4, 1}, {2, 1, 3, 7}, {1, 4, 0, 2}, {3, 3, 3, 50},
	}
	for _, c := range cells {
		h.set(c[0], c[1], c[2], uint64(c[3]))
	}

	var q Queue
	root := fullBox(h)
	root.Shrink(h)
	q.Push(root)

	for q.Len() > 0 {
		b := q.Pop()
		b.Shrink(h)
		parent := b.Points()

		var children Queue
		if !b.Split(h, &children) {
			continue
		}
		var sum uint64
		for children.Len() > 0 {
			c := children.Pop()
			if c.Points() == 0 {
				t.Fatalf("split of %+v produced an empty child %+v", b, c)
			}
			if c.Points() != c.countPoints(h) {
				t.Fatalf("child point count %d does not match histogram %d", c.Points(), c.countPoints(h))
			}
			sum += c.Points()
			q.Push(c)
		}
		if sum != parent {
			t.Fatalf("children hold %d points, parent held %d", sum, parent)
		}
	}
}

func TestBox_MeanColor_TruncationOrder(t *testing.T) {
	// Cells at red 1 and 2: (255*3/3)/2 = 127. Dividing by the count first
	// would give 255*1/3 = 85.
	h := newDenseHistogram(4, 1, 1)
	h.set(1, 0, 0, 1)
	h.set(2, 0, 0, 1)

	b := fullBox(h)
	got := Unpack(b.MeanColor(h))
	want := color.RGBA{127, 0, 0, 255}
	if got != want {
		t.Errorf("MeanColor: got %v, want %v", got, want)
	}
}

func TestBox_MeanColor_Weighted(t *testing.T) {
	h := newDenseHistogram(2, 2, 2)
	h.set(0, 0, 0, 3)
	h.set(1, 1, 1, 1)

	got := Unpack(fullBox(h).MeanColor(h))
	// 255*1/1/4 = 63 on every channel.
	want := color.RGBA{63, 63, 63, 255}
	if got != want {
		t.Errorf("MeanColor: got %v, want %v", got, want)
	}
}

func TestBox_MeanColor_Empty(t *testing.T) {
	h := newDenseHistogram(4, 4, 4)
	if got := fullBox(h).MeanColor(h); got != Black {
		t.Errorf("MeanColor of empty box: got %v, want opaque black", Unpack(got))
	}
}
