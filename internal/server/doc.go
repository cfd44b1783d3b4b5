// Package server implements the MCP (Model Context Protocol) server for palette extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes median-cut color
// quantization through the MCP protocol, so MCP clients can reduce an image to a
// small representative palette.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata, including the distinct color count
//   - image_sample_color: Get color at pixel
//   - image_quantize_palette: Median cut palette with per-color pixel share
//   - image_palette_swatch: Median cut palette rendered as a PNG
//
// # Configuration
//
// Tool defaults (palette size, histogram resolution, downsampling limit) come
// from Config, normally built by ConfigFromEnv. Arguments given to a tool call
// override them for that call.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path. The
// cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//     (-32700 parse error, -32601 method not found, -32602 invalid params)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
