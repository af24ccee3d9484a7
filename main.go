package main

// The entry point of the editor. It handles command-line flags, initializes
// the terminal interface (termbox), loads the requested file, and starts the
// main editor loop.

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print file type associations if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo()
		return
	}

	// Print the theme palette if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return
	}

	// Initialize termbox for TUI handling. termbox owns the raw-mode session:
	// Close restores the original terminal mode on every path below.
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)

	editor := NewEditor()

	// Open the file given as argument. A missing file starts an empty buffer
	// with the name retained as the save target.
	if flag.NArg() > 0 {
		if err := editor.LoadFile(flag.Arg(0)); err != nil {
			termbox.Close()
			fmt.Fprintf(os.Stderr, "failed to open file %s: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
	}

	editor.setStatusMessage("HELP: i = insert | Esc = view | Ctrl-S = save | Ctrl-Q = quit")

	// Enter the main event loop.
	if err := editor.HandleEvents(); err != nil {
		termbox.Close()
		fmt.Fprintf(os.Stderr, "terminal error: %v\n", err)
		os.Exit(1)
	}
}
