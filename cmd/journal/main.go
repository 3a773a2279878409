package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mvanek/journal"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "new":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "Usage: journal new <site-name>")
				os.Exit(1)
			}
			if err := runNew(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "version":
			fmt.Printf("journal %s\n", version)
			return
		case "help", "-h", "--help":
			printUsage()
			return
		case "serve":
			// fall through to the server below
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := journal.LoadConfig(journal.EnvOr("CONFIG_PATH", "config.toml"))
	if err != nil {
		log.Fatal(err)
	}

	app := journal.New(cfg)
	defer app.Close()

	log.Printf("journal: serving %q on %s", cfg.Name, cfg.Addr)
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func printUsage() {
	fmt.Print(`journal - a Markdown learning journal server

Usage: journal [COMMAND]

Commands:
  serve    Start the HTTP server (default)
  new      Scaffold a new site directory with sample content
  version  Print the version
  help     Show this help
`)
}
