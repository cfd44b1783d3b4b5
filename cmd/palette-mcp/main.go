package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/image-palette-mcp/internal/imaging"
	"github.com/ironsheep/image-palette-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-palette-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		case "quantize":
			if err := runQuantize(os.Stdout, cfg, os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "quantize: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	if cfg.Debug {
		log.Printf("Image Palette MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: bits=%v max_dimension=%d count=%d", cfg.HistogramBits, cfg.MaxDimension, cfg.DefaultCount)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "image-palette-mcp - MCP server for median cut palette extraction")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: image-palette-mcp [options]")
	fmt.Fprintln(w, "       image-palette-mcp quantize <image> [count]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  quantize         Print the palette of an image, one color per line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=debug    Enable debug logging\n", server.EnvLogLevel)
	fmt.Fprintf(w, "  %s=5,6,5     Histogram bits per channel\n", server.EnvHistBits)
	fmt.Fprintf(w, "  %s=256   Downsampling limit, 0 disables\n", server.EnvMaxDimension)
	fmt.Fprintf(w, "  %s=8     Palette size when none is given\n", server.EnvDefaultCount)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(w, "Configure it in your MCP client (e.g., Claude Desktop).")
}

// runQuantize prints the palette of the image named by args[0], largest share first.
func runQuantize(w io.Writer, cfg server.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: quantize <image> [count]")
	}

	count := cfg.DefaultCount
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[1], err)
		}
		count = n
	}

	img, err := imaging.NewImageCache().Load(args[0])
	if err != nil {
		return err
	}

	result, err := imaging.ExtractPalette(img, count, imaging.PaletteOptions{
		HistogramOptions: imaging.HistogramOptions{
			Bits:         cfg.HistogramBits,
			MaxDimension: cfg.MaxDimension,
		},
		SortByShare: true,
	})
	if err != nil {
		return err
	}

	for _, entry := range result.Colors {
		fmt.Fprintf(w, "%s %6.2f%%\n", entry.Color.Hex, entry.Percentage)
	}
	return nil
}
