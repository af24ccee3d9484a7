package main

import (
	"testing"
	"time"
)

// Tests run without InitConfig, so give Config the flag defaults here.
func init() {
	Config.TabWidth = 4
	Config.QuitTimes = 3
	Config.MessageTimeout = 5 * time.Second
}

func TestRowInsertChar(t *testing.T) {
	row := newRow([]rune("ac"))
	row.InsertChar(1, 'b')
	if row.String() != "abc" {
		t.Fatalf("got %q", row.String())
	}
	row.InsertChar(99, '!')
	if row.String() != "abc!" {
		t.Fatalf("out-of-range insert should append, got %q", row.String())
	}
}

func TestRowDeleteChar(t *testing.T) {
	row := newRow([]rune("abc"))
	row.DeleteChar(1)
	if row.String() != "ac" {
		t.Fatalf("got %q", row.String())
	}
	row.DeleteChar(5)
	if row.String() != "ac" {
		t.Fatalf("out-of-range delete should be ignored, got %q", row.String())
	}
}

func TestRowSplitAndAppend(t *testing.T) {
	row := newRow([]rune("hello world"))
	tail := row.Split(5)
	if row.String() != "hello" || tail.String() != " world" {
		t.Fatalf("got %q / %q", row.String(), tail.String())
	}

	row.Append(tail)
	if row.String() != "hello world" {
		t.Fatalf("got %q", row.String())
	}
}

func TestRehighlightRestoresLengthInvariant(t *testing.T) {
	row := newRow([]rune("if x"))
	opts := goOpts()
	row.Rehighlight(opts, false)

	row.InsertChar(4, '1')
	row.Rehighlight(opts, false)
	if len(row.hl) != row.Len() {
		t.Fatalf("highlight length %d != content length %d", len(row.hl), row.Len())
	}

	row.DeleteChar(0)
	row.Rehighlight(opts, false)
	if len(row.hl) != row.Len() {
		t.Fatalf("highlight length %d != content length %d", len(row.hl), row.Len())
	}
}

func TestRowOpenCommentState(t *testing.T) {
	row := newRow([]rune("x /* open"))
	if !row.Rehighlight(goOpts(), false) {
		t.Fatal("row should end inside the comment")
	}
	if !row.openComment {
		t.Fatal("openComment flag not stored")
	}

	row = newRow([]rune("done */ x"))
	if row.Rehighlight(goOpts(), true) {
		t.Fatal("closing delimiter should clear the state")
	}
}

func TestCxToRxTabsAndWideRunes(t *testing.T) {
	tests := []struct {
		line string
		cx   int
		want int
	}{
		{"\tx", 1, 4},    // tab expands to the next tab stop
		{"a\tb", 2, 4},   // partial tab: a(1) + tab(3)
		{"世x", 1, 2},     // wide rune occupies two columns
		{"ab", 2, 2},     // plain ascii
		{"\t\t", 2, 8},   // consecutive tabs
		{"世\t界", 2, 4},   // wide rune then tab aligned to column 4
		{"abc", 99, 3},   // clamped to row length
	}
	for _, tt := range tests {
		row := newRow([]rune(tt.line))
		if got := row.CxToRx(tt.cx); got != tt.want {
			t.Errorf("%q cx=%d: got %d, want %d", tt.line, tt.cx, got, tt.want)
		}
	}
}
