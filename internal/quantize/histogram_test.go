package quantize

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestNewRGBHistogram(t *testing.T) {
	h, err := NewRGBHistogram(5, 6, 5)
	if err != nil {
		t.Fatalf("NewRGBHistogram failed: %v", err)
	}
	if h.Levels() != [3]int{32, 64, 32} {
		t.Errorf("Levels: got %v, want [32 64 32]", h.Levels())
	}
	if len(h.counts) != 32*64*32 {
		t.Errorf("cells: got %d, want %d", len(h.counts), 32*64*32)
	}
}

func TestNewRGBHistogram_InvalidBits(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
	}{
		{"zero red", 0, 6, 5},
		{"nine green", 5, 9, 5},
		{"negative blue", 5, 6, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRGBHistogram(tt.r, tt.g, tt.b); err == nil {
				t.Error("expected error for invalid bits")
			}
		})
	}
}

func TestRGBHistogram_Add(t *testing.T) {
	h, _ := NewRGBHistogram(5, 6, 5)
	h.Add(255, 128, 7, 3)
	h.Add(255, 129, 0, 1) // same cell after dropping low bits

	if got := h.At(31, 32, 0); got != 4 {
		t.Errorf("At(31,32,0): got %d, want 4", got)
	}
	if h.Total() != 4 {
		t.Errorf("Total: got %d, want 4", h.Total())
	}
}

func TestRGBHistogram_AddImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 0, 0, 255})
		img.SetNRGBA(x, 1, color.NRGBA{0, 0, 255, 0}) // fully transparent
	}

	h, _ := NewRGBHistogram(8, 8, 8)
	h.AddImage(img)

	if h.Total() != 4 {
		t.Errorf("Total: got %d, want 4 (transparent pixels skipped)", h.Total())
	}
	if got := h.At(255, 0, 0); got != 4 {
		t.Errorf("At(255,0,0): got %d, want 4", got)
	}
}

func TestRGBHistogram_Reset(t *testing.T) {
	h, _ := NewRGBHistogram(4, 4, 4)
	h.AddColor(color.RGBA{10, 20, 30, 255})
	h.Reset()

	if h.Total() != 0 {
		t.Errorf("Total after Reset: got %d, want 0", h.Total())
	}
	for i, c := range h.counts {
		if c != 0 {
			t.Fatalf("cell %d not cleared: %d", i, c)
		}
	}
}

func TestRGBHistogram_Quantize(t *testing.T) {
	h, _ := NewRGBHistogram(8, 8, 8)
	h.Add(255, 0, 0, 50)
	h.Add(0, 0, 255, 50)

	got := Quantize(h, 4)
	if len(got) != 2 {
		t.Fatalf("got %d swatches, want 2", len(got))
	}
	seen := map[color.RGBA]uint64{}
	for _, s := range got {
		seen[s.Color] = s.Points
	}
	if seen[color.RGBA{255, 0, 0, 255}] != 50 || seen[color.RGBA{0, 0, 255, 255}] != 50 {
		t.Errorf("unexpected swatches: %v", got)
	}
}

func TestAxis_String(t *testing.T) {
	if Red.String() != "red" || Green.String() != "green" || Blue.String() != "blue" {
		t.Errorf("unexpected axis names: %s %s %s", Red, Green, Blue)
	}
	if Axis(7).String() != "axis(7)" {
		t.Errorf("unknown axis: got %s", Axis(7))
	}
}

func TestRGBHistogram_Add_LargeCounts(t *testing.T) {
	h, _ := NewRGBHistogram(5, 6, 5)
	h.Add(10, 20, 30, math.MaxUint32)
	h.Add(10, 20, 30, math.MaxUint32)
	h.Add(10, 20, 30, 2)

	want := uint64(2*math.MaxUint32 + 2)
	if got := h.At(10>>3, 20>>2, 30>>3); got != want {
		t.Errorf("cell: got %d, want %d", got, want)
	}
	if h.Total() != want {
		t.Errorf("Total: got %d, want %d", h.Total(), want)
	}
}

func TestRGBHistogram_AddRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
			}
		}
	}

	tests := []struct {
		name               string
		includeTransparent bool
		wantTotal          uint64
		wantBlack          uint64
	}{
		{"skip transparent", false, 8, 0},
		{"include transparent", true, 16, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := NewRGBHistogram(8, 8, 8)
			h.AddRGBA(img, tt.includeTransparent)

			if h.Total() != tt.wantTotal {
				t.Errorf("Total: got %d, want %d", h.Total(), tt.wantTotal)
			}
			if got := h.At(0, 255, 0); got != 8 {
				t.Errorf("green cell: got %d, want 8", got)
			}
			if got := h.At(0, 0, 0); got != tt.wantBlack {
				t.Errorf("black cell: got %d, want %d", got, tt.wantBlack)
			}
		})
	}
}

func TestRGBHistogram_AddRGBA_SubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 4 && y >= 4 {
				c = color.RGBA{0, 0, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	sub := img.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	h, _ := NewRGBHistogram(8, 8, 8)
	h.AddRGBA(sub, false)

	if h.Total() != 16 || h.At(0, 0, 255) != 16 {
		t.Errorf("got %d samples, %d blue; want 16 blue", h.Total(), h.At(0, 0, 255))
	}
}

func TestRGBHistogram_AddImage_Premultiplied(t *testing.T) {
	// Half-transparent white reduces to premultiplied gray.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 128})
		}
	}

	h, _ := NewRGBHistogram(8, 8, 8)
	h.AddImage(img)

	r, g, b, _ := img.At(0, 0).RGBA()
	if got := h.At(int(r>>8), int(g>>8), int(b>>8)); got != 4 {
		t.Errorf("premultiplied cell (%d,%d,%d): got %d, want 4", r>>8, g>>8, b>>8, got)
	}
}
