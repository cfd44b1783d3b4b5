// Package imaging connects decoded images to the median-cut quantizer.
//
// It loads and caches images, samples their pixels into a quantize.RGBHistogram,
// extracts palettes from that histogram and renders palettes as swatch images.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Regions
//
// Sampling can be limited to a Region, where (X1,Y1) is inclusive and (X2,Y2) is
// exclusive, or to a named part of the image such as "top-left" or "center".
//
// # Histogram Sampling
//
// Each pixel is reduced to 8-bit premultiplied RGBA and then to the histogram's
// resolution by dropping low bits (5-6-5 bits per channel by default). Fully
// transparent pixels are skipped unless requested. Large images can be
// downsampled first with MaxDimension to bound the sampling cost; nearest-neighbor
// sampling keeps every sampled color one that exists in the image.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Other functions are stateless
// and may run concurrently as long as the images they read are not modified.
package imaging
