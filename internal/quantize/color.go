package quantize

import (
	"fmt"
	"image/color"
)

// Axis identifies one dimension of the color cube.
type Axis int

// Color cube axes, in the order they are shrunk and preferred on ties.
const (
	Red Axis = iota
	Green
	Blue
)

func (a Axis) String() string {
	switch a {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// others returns the two remaining axes in ascending order.
func (a Axis) others() (Axis, Axis) {
	switch a {
	case Red:
		return Green, Blue
	case Green:
		return Red, Blue
	default:
		return Red, Green
	}
}

// Black is the packed opaque black returned for boxes without samples.
const Black uint32 = 0xFF000000

// Pack packs 8-bit channels into a uint32 with red in the lowest byte.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Unpack is the inverse of Pack.
func Unpack(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}
