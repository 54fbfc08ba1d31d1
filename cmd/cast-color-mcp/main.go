package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/cast-color-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("cast-color-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("cast-color-mcp - MCP server for cast palette color lookup")
			fmt.Println()
			fmt.Println("Usage: cast-color-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  " + server.EnvCastImage + "=<path>     Default cast-color image")
			fmt.Println("  " + server.EnvGrayImage + "=<path>     Default cast-grayscale image (derived when unset)")
			fmt.Println("  " + server.EnvThreshold + "=<0-1>       Direct-match threshold (default 0.995)")
			fmt.Println("  " + server.EnvGradientSize + "=<WxH>   Ratio gradient size (default 23x197, \"auto\" = 1 x cast height)")
			fmt.Println("  " + server.EnvLogLevel + "=debug       Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Debug {
		log.Printf("Cast Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("cast image %q, grayscale %q, threshold %v, gradient %v",
			cfg.CastImage, cfg.GrayImage, cfg.Resolver.Threshold, cfg.Resolver.GradientSize)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
