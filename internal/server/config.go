package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-palette-mcp/internal/quantize"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel     = "IMAGE_PALETTE_MCP_LOG_LEVEL"
	EnvHistBits     = "IMAGE_PALETTE_MCP_HIST_BITS"
	EnvMaxDimension = "IMAGE_PALETTE_MCP_MAX_DIMENSION"
	EnvDefaultCount = "IMAGE_PALETTE_MCP_DEFAULT_COUNT"
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// Debug enables logging of each tool call to stderr.
	Debug bool

	// HistogramBits is the default bits per channel (red, green, blue).
	HistogramBits [3]int

	// MaxDimension is the default downsampling limit before histogram fill.
	// Zero samples every pixel.
	MaxDimension int

	// DefaultCount is the palette size used when a call does not give one.
	DefaultCount int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HistogramBits: quantize.DefaultBits,
		MaxDimension:  256,
		DefaultCount:  8,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any environment overrides.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Debug = strings.EqualFold(v, "debug")
	}

	if v, ok := lookup(EnvHistBits); ok && v != "" {
		bits, err := parseBits(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvHistBits, err)
		}
		cfg.HistogramBits = bits
	}

	if v, ok := lookup(EnvMaxDimension); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s: %q must be a non-negative integer", EnvMaxDimension, v)
		}
		cfg.MaxDimension = n
	}

	if v, ok := lookup(EnvDefaultCount); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid %s: %q must be a positive integer", EnvDefaultCount, v)
		}
		cfg.DefaultCount = n
	}

	return cfg, nil
}

// parseBits parses "r,g,b" bits per channel, each 1-8.
func parseBits(s string) ([3]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf("%q: want three comma-separated values", s)
	}
	var bits [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [3]int{}, fmt.Errorf("%q: %w", s, err)
		}
		if n < 1 || n > 8 {
			return [3]int{}, fmt.Errorf("%q: bits must be between 1 and 8", s)
		}
		bits[i] = n
	}
	return bits, nil
}
