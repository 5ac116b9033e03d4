// Command svgsmooth rewrites the polylines of an SVG file
// as smooth bezier curves, or as straight paths without
// their sharp vertices.
//
// Usage:
//
//	svgsmooth <in.svg> <out.svg> [out.png]
//
// The settings are read from the SVGSMOOTH_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/svgsmooth/internal/config"
	"github.com/benoitkugler/svgsmooth/internal/convert"
	"go.uber.org/zap"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if len(os.Args) != 3 && len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: svgsmooth <in.svg> <out.svg> [out.png]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var pngOutput string
	if len(os.Args) == 4 {
		pngOutput = os.Args[3]
	}
	if err := convert.Run(*cfg, logger, os.Args[1], os.Args[2], pngOutput); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
