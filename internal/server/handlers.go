package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/image-palette-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_quantize_palette").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.config.Debug {
		log.Printf("Tool call: %s %s", params.Name, string(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.config.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_quantize_palette":
		return s.handleImageQuantizePalette(args)
	case "image_palette_swatch":
		return s.handleImagePaletteSwatch(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Palette Operation Handlers ===

type imagePaletteArgs struct {
	Path               string          `json:"path"`
	Count              int             `json:"count"`
	Region             *imaging.Region `json:"region,omitempty"`
	NamedRegion        string          `json:"named_region"`
	HistogramBits      []int           `json:"histogram_bits"`
	MaxDimension       *int            `json:"max_dimension"`
	IncludeTransparent bool            `json:"include_transparent"`
	SortByShare        bool            `json:"sort_by_share"`
}

// paletteOptions applies server defaults to the palette arguments.
func (s *Server) paletteOptions(a *imagePaletteArgs) (imaging.PaletteOptions, error) {
	if a.Count == 0 {
		a.Count = s.config.DefaultCount
	}

	opts := imaging.PaletteOptions{
		HistogramOptions: imaging.HistogramOptions{
			Bits:               s.config.HistogramBits,
			MaxDimension:       s.config.MaxDimension,
			Region:             a.Region,
			NamedRegion:        a.NamedRegion,
			IncludeTransparent: a.IncludeTransparent,
		},
		SortByShare: a.SortByShare,
	}

	if a.HistogramBits != nil {
		if len(a.HistogramBits) != 3 {
			return opts, fmt.Errorf("histogram_bits must have 3 values, got %d", len(a.HistogramBits))
		}
		copy(opts.Bits[:], a.HistogramBits)
	}
	if a.MaxDimension != nil {
		if *a.MaxDimension < 0 {
			return opts, fmt.Errorf("max_dimension must not be negative, got %d", *a.MaxDimension)
		}
		opts.MaxDimension = *a.MaxDimension
	}
	return opts, nil
}

func (s *Server) handleImageQuantizePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.paletteOptions(&a)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractPalette(img, a.Count, opts)
}

type imagePaletteSwatchArgs struct {
	imagePaletteArgs
	SwatchSize int `json:"swatch_size"`
	Columns    int `json:"columns"`
}

// paletteSwatchResult is the palette together with its rendering.
type paletteSwatchResult struct {
	Palette *imaging.PaletteResult `json:"palette"`
	Swatch  *imaging.SwatchResult  `json:"swatch"`
}

func (s *Server) handleImagePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a imagePaletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SwatchSize == 0 {
		a.SwatchSize = 32
	}
	if a.Columns == 0 {
		a.Columns = 8
	}
	opts, err := s.paletteOptions(&a.imagePaletteArgs)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	palette, err := imaging.ExtractPalette(img, a.Count, opts)
	if err != nil {
		return nil, err
	}
	swatch, err := imaging.RenderSwatch(palette.Colors, a.SwatchSize, a.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to render swatch: %w", err)
	}
	return &paletteSwatchResult{Palette: palette, Swatch: swatch}, nil
}
