package main

// Utility to preview the theme palette. This is useful for adjusting Theme
// entries and ensuring the terminal supports the expected color range.

import (
	"fmt"
	"os"
	"sort"

	"github.com/nsf/termbox-go"
)

// PrintColors initializes termbox and draws every theme entry with its actual
// attributes next to its semantic name.
func PrintColors() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	names := make([]ColorName, 0, len(Theme))
	for name := range Theme {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for row, name := range names {
		fg, bg := GetThemeColor(name)
		label := colorNames[name]
		for i, r := range label {
			termbox.SetCell(i, row, r, termbox.Attribute(254), termbox.ColorDefault)
		}
		sample := " see editor sample "
		for i, r := range sample {
			termbox.SetCell(20+i, row, r, fg, bg)
		}
	}

	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell(i, len(names)+1, r, termbox.ColorWhite, termbox.ColorDefault)
	}

	termbox.Flush()
	termbox.PollEvent()
}
