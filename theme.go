package main

// Color palette used by the editor. Maps semantic color names (like
// ColorStatusBar or ColorKeyword) to terminal attributes (foreground and
// background).

import "github.com/nsf/termbox-go"

// To see the palette execute `see-editor -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	// Syntax highlighting classes.
	ColorNumber
	ColorString
	ColorCharacter
	ColorComment
	ColorMultiComment
	ColorKeyword
	ColorTypeKeyword
	ColorMatch

	ColorStatusBar       // Main status bar at the bottom.
	ColorViewMode        // Status bar indicator for view mode.
	ColorInsertMode      // Status bar indicator for insert mode.
	ColorEmptyLineMarker // The '~' marker for lines beyond EOF.
	ColorIntroTitle      // Title line of the intro screen.
	ColorIntroText       // Body text of the intro screen.
)

// colorNames maps each ColorName to a printable identifier for -colors output.
var colorNames = map[ColorName]string{
	ColorDefault:         "default",
	ColorNumber:          "number",
	ColorString:          "string",
	ColorCharacter:       "character",
	ColorComment:         "comment",
	ColorMultiComment:    "multiline-comment",
	ColorKeyword:         "keyword",
	ColorTypeKeyword:     "type-keyword",
	ColorMatch:           "match",
	ColorStatusBar:       "status-bar",
	ColorViewMode:        "view-mode",
	ColorInsertMode:      "insert-mode",
	ColorEmptyLineMarker: "empty-line-marker",
	ColorIntroTitle:      "intro-title",
	ColorIntroText:       "intro-text",
}

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	// Syntax
	ColorNumber:       {Background: termbox.ColorDefault, Foreground: termbox.Attribute(135)},
	ColorString:       {Background: termbox.ColorDefault, Foreground: termbox.Attribute(37)},
	ColorCharacter:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(42)},
	ColorComment:      {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorMultiComment: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorKeyword:      {Background: termbox.ColorDefault, Foreground: termbox.Attribute(178)},
	ColorTypeKeyword:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(112)},
	ColorMatch:        {Background: termbox.Attribute(166), Foreground: termbox.Attribute(1)},

	// UI
	ColorStatusBar:       {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorViewMode:        {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorInsertMode:      {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorEmptyLineMarker: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorIntroTitle:      {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254) | termbox.AttrBold},
	ColorIntroText:       {Background: termbox.ColorDefault, Foreground: termbox.Attribute(248)},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}

// highlightColorName maps a syntax highlight class to its theme entry.
func highlightColorName(h Highlight) ColorName {
	switch h {
	case HighlightNumber:
		return ColorNumber
	case HighlightString:
		return ColorString
	case HighlightCharacter:
		return ColorCharacter
	case HighlightComment:
		return ColorComment
	case HighlightMultiComment:
		return ColorMultiComment
	case HighlightPrimaryKeyword:
		return ColorKeyword
	case HighlightSecondaryKeyword:
		return ColorTypeKeyword
	case HighlightMatch:
		return ColorMatch
	default:
		return ColorDefault
	}
}
