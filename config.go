package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import (
	"flag"
	"time"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	TabWidth       int           // Number of columns a tab character occupies on screen.
	QuitTimes      int           // Consecutive quit presses required when the document is modified.
	MessageTimeout time.Duration // How long a status message stays visible.
	UseLogFile     bool          // Whether to write debug logs to a file.
	LogFilePath    string        // Where to store the debug logs.
	ShowColors     bool          // Command-line flag to show available colors and exit.
	ShowInfo       bool          // Command-line flag to show file type info and exit.
	ShowVersion    bool          // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	flag.IntVar(&Config.TabWidth, "tab-width", 4, "Tab width in columns")
	flag.IntVar(&Config.QuitTimes, "quit-times", 3, "Quit presses needed with unsaved changes")
	flag.DurationVar(&Config.MessageTimeout, "message-timeout", 5*time.Second, "Status message display time")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", "/tmp/see-editor-debug.log", "Path to log file")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Show available colors")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show file type associations")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}
