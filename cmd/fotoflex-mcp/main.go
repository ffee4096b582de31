package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ironsheep/fotoflex-mcp/internal/config"
	"github.com/ironsheep/fotoflex-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("fotoflex-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("fotoflex-mcp - MCP server for interactive image editing with undo")
			fmt.Println()
			fmt.Println("Usage: fotoflex-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug          Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=800    Preview viewport width\n", config.EnvPreviewMaxWidth)
			fmt.Printf("  %s=600   Preview viewport height\n", config.EnvPreviewMaxHeight)
			fmt.Printf("  %s=75          JPEG save quality (1-100)\n", config.EnvJPEGQuality)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Register it as a stdio server in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	for _, w := range cfg.Warnings {
		log.Printf("config: %s", w)
	}
	if cfg.Debug() {
		log.Printf("FotoFlex MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Printf("stdin is a terminal; fotoflex-mcp expects MCP JSON-RPC requests, one per line (see --help)")
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
