// Package quantize implements median-cut color quantization over a dense
// three-dimensional color histogram.
//
// The algorithm follows P. Heckbert, "Color image quantization for frame buffer
// display", Computer Graphics 16(3), pp. 297-307 (1982). The color cube described
// by a Histogram is recursively partitioned into axis-aligned boxes. Each box taken
// from the queue is first shrunk to the tightest bounds that still enclose all of
// its samples, then split along its longest axis at the plane where the sample
// count on each side is as close to half as possible.
//
// # Histograms
//
// Any type implementing Histogram can be quantized. RGBHistogram is the dense
// implementation used by the rest of the module; it reduces each 8-bit channel to a
// configurable number of bits so the table stays small (5-6-5 bits is 65536 cells).
//
// # Ordering
//
// Boxes are processed largest volume first. Volume, not point count, decides the
// order, so large sparse regions of the cube are split before small dense ones.
// Result colors are returned in the order their boxes were finalized: boxes that
// could not be split come first, followed by the boxes still queued when the cap
// was reached, again largest volume first.
//
// # Packed Colors
//
// MedianCut appends colors packed into a uint32 with red in the lowest byte and
// alpha in the highest. Use Unpack to get a color.RGBA.
//
// # Thread Safety
//
// MedianCut and Quantize do not retain state between calls and may run
// concurrently, provided no goroutine writes to the histogram being quantized.
package quantize
