package main

// A single line of the document: its runes, the parallel slice of highlight
// classes, and the multi-line comment state the line ends in. The highlight
// slice always has the same length as the content; every edit goes through a
// rehighlight before the row is rendered again.

import (
	"github.com/mattn/go-runewidth"
)

// Row holds one line of text and its per-rune highlight classes.
type Row struct {
	chars       []rune
	hl          []Highlight
	openComment bool // true when the row ends inside a multi-line comment
}

// newRow creates a row from a slice of runes. The highlight slice starts
// zeroed at matching length; the document rehighlights rows on load and edit.
func newRow(chars []rune) *Row {
	r := &Row{
		chars: make([]rune, len(chars)),
		hl:    make([]Highlight, len(chars)),
	}
	copy(r.chars, chars)
	return r
}

// Len returns the number of runes in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// String returns the row content as a string.
func (r *Row) String() string {
	return string(r.chars)
}

// HighlightAt returns the highlight class of the rune at index i, or
// HighlightNone out of range.
func (r *Row) HighlightAt(i int) Highlight {
	if i < 0 || i >= len(r.hl) {
		return HighlightNone
	}
	return r.hl[i]
}

// InsertChar inserts c at rune index at; positions past the end append.
func (r *Row) InsertChar(at int, c rune) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
}

// DeleteChar removes the rune at index at; out-of-range positions are ignored.
func (r *Row) DeleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	copy(r.chars[at:], r.chars[at+1:])
	r.chars = r.chars[:len(r.chars)-1]
}

// Append concatenates other's content onto r.
func (r *Row) Append(other *Row) {
	r.chars = append(r.chars, other.chars...)
}

// Split truncates r at index at and returns a new row holding the remainder.
func (r *Row) Split(at int) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	tail := newRow(r.chars[at:])
	r.chars = r.chars[:at]
	return tail
}

// Rehighlight recomputes the row's highlight classes with the inherited
// multi-line comment state and returns the state the row ends in. It restores
// the len(hl) == len(chars) invariant after any edit.
func (r *Row) Rehighlight(opts *HighlightOptions, inComment bool) bool {
	r.hl, r.openComment = HighlightRow(r.chars, opts, inComment)
	return r.openComment
}

// CxToRx converts a rune index into the visual column it lands on, expanding
// tabs to the configured tab stop and accounting for double-width runes.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		rx += runeVisualWidth(r.chars[i], rx)
	}
	return rx
}

// runeVisualWidth returns the number of screen columns c occupies when drawn
// starting at visual column x.
func runeVisualWidth(c rune, x int) int {
	if c == '\t' {
		return Config.TabWidth - (x % Config.TabWidth)
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}
