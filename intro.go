package main

// Handles drawing the intro screen that appears when the editor starts with
// an empty unnamed buffer.

import (
	"github.com/nsf/termbox-go"
)

// drawIntro draws a centered informational box with version and basic
// commands over the text area.
func (e *Editor) drawIntro() {
	titleFg, _ := GetThemeColor(ColorIntroTitle)
	textFg, _ := GetThemeColor(ColorIntroText)
	markerFg, _ := GetThemeColor(ColorEmptyLineMarker)
	_, bg := GetThemeColor(ColorDefault)

	for y := 0; y < e.screenRows; y++ {
		termbox.SetCell(0, y, '~', markerFg, bg)
	}

	lines := []struct {
		text string
		fg   termbox.Attribute
	}{
		{"see editor", titleFg},
		{Version, textFg},
		{"", textFg},
		{"press  i       to start editing", textFg},
		{"press  Ctrl-S  to save", textFg},
		{"press  Ctrl-Q  to quit", textFg},
	}

	maxLen := 0
	for _, line := range lines {
		if len(line.text) > maxLen {
			maxLen = len(line.text)
		}
	}

	startY := (e.screenRows - len(lines)) / 2
	if startY < 0 {
		startY = 0
	}
	for i, line := range lines {
		lineX := (e.screenCols - maxLen) / 2
		if lineX < 1 {
			lineX = 1
		}
		for j, char := range line.text {
			termbox.SetCell(lineX+j, startY+i, char, line.fg, bg)
		}
	}
}
