package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadDocument(t *testing.T, fileType, content string) *Document {
	t.Helper()
	d := NewDocument()
	d.filename = fileType
	d.fileType = getFileType(fileType)
	if err := d.loadFromReader(strings.NewReader(content)); err != nil {
		t.Fatalf("load: %v", err)
	}
	return d
}

func documentLines(d *Document) []string {
	lines := make([]string, d.NumRows())
	for i := range lines {
		lines[i] = d.Row(i).String()
	}
	return lines
}

func TestLoadSerializeRoundTrip(t *testing.T) {
	contents := []string{
		"a\nb\n",
		"one line\n",
		"\n",
		"x\n\ny\n",
	}
	for _, content := range contents {
		d := loadDocument(t, "test.txt", content)
		if got := d.Contents(); got != content {
			t.Errorf("serialize after load: got %q, want %q", got, content)
		}

		again := loadDocument(t, "test.txt", d.Contents())
		if a, b := documentLines(d), documentLines(again); strings.Join(a, "\x00") != strings.Join(b, "\x00") {
			t.Errorf("round trip changed rows: %q vs %q", a, b)
		}
	}
}

func TestLoadStripsFinalNewlineRow(t *testing.T) {
	d := loadDocument(t, "test.txt", "a\nb\n")
	if d.NumRows() != 2 {
		t.Fatalf("got %d rows, want 2", d.NumRows())
	}
}

func TestLoadEmptyInputKeepsOneRow(t *testing.T) {
	d := loadDocument(t, "test.txt", "")
	if d.NumRows() != 1 || d.Row(0).Len() != 0 {
		t.Fatalf("got %d rows", d.NumRows())
	}
}

func TestOpenMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "new.go")
	d := NewDocument()
	if err := d.Open(name); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if d.NumRows() != 1 || d.Row(0).Len() != 0 {
		t.Fatal("missing file should start with one empty row")
	}
	if d.Filename() != name {
		t.Fatalf("save target not retained: %q", d.Filename())
	}
	if d.Modified() {
		t.Fatal("fresh document must not be modified")
	}
	if d.FileTypeName() != "golang" {
		t.Fatalf("file type resolved from name: got %q", d.FileTypeName())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.go")
	d := NewDocument()
	if err := d.Open(name); err != nil {
		t.Fatalf("open: %v", err)
	}

	for i, c := range "hi" {
		d.InsertChar(Position{X: i, Y: 0}, c)
	}
	d.InsertNewline(Position{X: 2, Y: 0})
	if !d.Modified() {
		t.Fatal("edits must set the modified flag")
	}

	if err := d.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if d.Modified() {
		t.Fatal("save must clear the modified flag")
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hi\n\n" {
		t.Fatalf("got %q", string(data))
	}
}

func TestSaveWithoutFilenameFails(t *testing.T) {
	d := NewDocument()
	d.InsertChar(Position{}, 'x')
	if err := d.Save(); err == nil {
		t.Fatal("save of unnamed buffer must fail")
	}
	if !d.Modified() {
		t.Fatal("failed save must leave the document modified")
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	d := loadDocument(t, "test.go", "hello world\n")
	d.InsertNewline(Position{X: 5, Y: 0})
	if got := documentLines(d); got[0] != "hello" || got[1] != " world" {
		t.Fatalf("got %q", got)
	}
}

func TestDeleteAtRowEndJoinsRows(t *testing.T) {
	d := loadDocument(t, "test.go", "ab\ncd\n")
	d.DeleteChar(Position{X: 2, Y: 0})
	if d.NumRows() != 1 || d.Row(0).String() != "abcd" {
		t.Fatalf("got %q", documentLines(d))
	}
}

func TestHighlightStateThreadedOnLoad(t *testing.T) {
	d := loadDocument(t, "test.go", "a\n/* open\nstill in\ndone */ x\n")
	if d.Row(1).openComment != true || d.Row(2).openComment != true {
		t.Fatal("comment state not threaded forward on load")
	}
	if d.Row(3).openComment {
		t.Fatal("closing row must clear the state")
	}
	if d.Row(2).HighlightAt(0) != HighlightMultiComment {
		t.Fatal("interior row not classified as comment")
	}
}

func TestEditCascadesThroughComment(t *testing.T) {
	d := loadDocument(t, "test.go", "/* open\naa\nbb\n")
	if d.Row(2).HighlightAt(0) != HighlightMultiComment {
		t.Fatal("setup: rows should start inside the comment")
	}

	// Deleting the opening delimiter closes the comment for every later row.
	d.DeleteChar(Position{X: 0, Y: 0})
	d.DeleteChar(Position{X: 0, Y: 0})
	if d.Row(1).HighlightAt(0) == HighlightMultiComment ||
		d.Row(2).HighlightAt(0) == HighlightMultiComment {
		t.Fatal("cascade did not reach the following rows")
	}
}

func TestRehighlightCascadeIsBounded(t *testing.T) {
	d := loadDocument(t, "test.go", "a = 1\nbb\ncc\ndd\n")

	// Ending state unchanged: only the edited row is recomputed.
	d.Row(0).InsertChar(0, 'x')
	if got := d.rehighlightFrom(0, 1); got != 1 {
		t.Fatalf("recomputed %d rows, want 1", got)
	}

	// An edit inside an already-open comment changes nothing downstream
	// either, even though the carry state is set.
	d = loadDocument(t, "test.go", "/* open\naa\nbb\n")
	d.Row(0).InsertChar(7, 'x')
	if got := d.rehighlightFrom(0, 1); got != 1 {
		t.Fatalf("recomputed %d rows, want 1", got)
	}

	// Opening a comment flips the state and must cascade to the end.
	d = loadDocument(t, "test.go", "aa\nbb\ncc\n")
	d.Row(0).InsertChar(0, '*')
	d.Row(0).InsertChar(0, '/')
	if got := d.rehighlightFrom(0, 1); got != 3 {
		t.Fatalf("recomputed %d rows, want 3", got)
	}
}
