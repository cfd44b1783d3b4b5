package server

import "github.com/ironsheep/image-palette-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// regionSchema describes an explicit rectangle argument.
func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (inclusive)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (inclusive)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": "Optional region to analyze. If omitted, analyzes entire image.",
	}
}

// paletteProperties are the arguments shared by the palette tools.
func paletteProperties(cfg Config) map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"count": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum number of palette colors",
			"default":     cfg.DefaultCount,
			"minimum":     1,
		},
		"region": regionSchema(),
		"named_region": map[string]interface{}{
			"type":        "string",
			"enum":        imaging.RegionNames,
			"description": "Named part of the image to analyze. Ignored when region is given.",
		},
		"histogram_bits": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "integer", "minimum": 1, "maximum": 8},
			"minItems":    3,
			"maxItems":    3,
			"description": "Histogram resolution as [red, green, blue] bits per channel",
			"default":     cfg.HistogramBits,
		},
		"max_dimension": map[string]interface{}{
			"type":        "integer",
			"description": "Downsample so neither side exceeds this many pixels before sampling. 0 samples every pixel.",
			"default":     cfg.MaxDimension,
		},
		"include_transparent": map[string]interface{}{
			"type":        "boolean",
			"description": "Count fully transparent pixels (as black). Default false.",
			"default":     false,
		},
		"sort_by_share": map[string]interface{}{
			"type":        "boolean",
			"description": "Order colors by pixel share instead of median-cut order. Default false.",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools using DefaultConfig for defaults.
func GetToolDefinitions() []Tool {
	return toolDefinitions(DefaultConfig())
}

func toolDefinitions(cfg Config) []Tool {
	swatchProps := paletteProperties(cfg)
	swatchProps["swatch_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Side length of each color square in pixels (default 32)",
		"default":     32,
		"minimum":     1,
		"maximum":     imaging.MaxSwatchSize,
	}
	swatchProps["columns"] = map[string]interface{}{
		"type":        "integer",
		"description": "Squares per row (default 8)",
		"default":     8,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha usage and number of distinct colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Palette Operations
		{
			Name:        "image_quantize_palette",
			Description: "Reduce an image to at most N representative colors with the median cut algorithm. Returns each color with the share of sampled pixels its region of color space holds.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": paletteProperties(cfg),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_palette_swatch",
			Description: "Compute a median cut palette and render it as a PNG grid of color squares (base64-encoded).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": toolDefinitions(s.config),
		},
	}
}
