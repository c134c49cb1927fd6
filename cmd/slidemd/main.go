package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okaneko/slidemd/internal/app"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Usage = usage
	flag.Parse()

	if *help {
		fmt.Println("Usage: slidemd [options] <markdown-file>")
		fmt.Println("\nPresent a markdown file as a full-screen terminal slideshow.")
		fmt.Println("Keys: left/right (or h/l) change slides, q or esc quits.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("slidemd %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	target := filepath.Clean(flag.Arg(0))
	if err := app.Run(target); err != nil {
		fmt.Fprintf(os.Stderr, "slidemd: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: slidemd [options] <markdown-file>")
	flag.PrintDefaults()
}
