package main

// The document buffer: the ordered rows of the open file, its file type, and
// the modified flag. All mutations keep the per-row highlight annotations
// consistent by rehighlighting the edited row and cascading forward only while
// the multi-line comment carry state keeps changing.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Position is a (column, row) location in the document, in rune/row indices.
type Position struct {
	X int
	Y int
}

// Document represents the file being edited.
type Document struct {
	rows     []*Row
	fileType *FileType
	filename string
	modified bool
}

// NewDocument returns an unnamed document with a single empty row and the
// inert default file type.
func NewDocument() *Document {
	d := &Document{
		rows:     []*Row{newRow(nil)},
		fileType: getFileType(""),
	}
	return d
}

// Row returns the row at index, or nil when index is out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// NumRows returns the number of rows in the document.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Modified reports whether the document has unsaved changes.
func (d *Document) Modified() bool {
	return d.modified
}

// Filename returns the save target, which is empty for unnamed buffers.
func (d *Document) Filename() string {
	return d.filename
}

// FileTypeName returns the display name of the document's file type.
func (d *Document) FileTypeName() string {
	return d.fileType.Name
}

// Open loads filename into the document. A missing file is not an error: the
// document keeps a single empty row and the name becomes the save target.
func (d *Document) Open(filename string) error {
	d.filename = filename
	d.fileType = getFileType(filename)

	file, err := os.Open(filename)
	if os.IsNotExist(err) {
		d.rows = []*Row{newRow(nil)}
		d.modified = false
		d.RehighlightAll()
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer file.Close()

	return d.loadFromReader(file)
}

// loadFromReader replaces the document content with the lines read from r. A
// trailing newline produces no extra row, so loading the output of Contents
// reproduces the same rows.
func (d *Document) loadFromReader(r io.Reader) error {
	var rows []*Row
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		rows = append(rows, newRow([]rune(line)))

		if err == io.EOF {
			break
		}
	}

	if len(rows) == 0 {
		rows = []*Row{newRow(nil)}
	}

	d.rows = rows
	d.modified = false
	d.RehighlightAll()
	return nil
}

// Contents serializes the document: rows joined with a newline plus a single
// trailing newline.
func (d *Document) Contents() string {
	var b strings.Builder
	for _, row := range d.rows {
		b.WriteString(row.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Save writes the document to its filename and clears the modified flag. It
// fails when the document has no save target.
func (d *Document) Save() error {
	if d.filename == "" {
		return fmt.Errorf("no file name")
	}

	file, err := os.Create(d.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(d.Contents()); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	d.fileType = getFileType(d.filename)
	d.RehighlightAll()
	d.modified = false
	return nil
}

// InsertChar inserts c at the given position. A position one past the last row
// first grows the document by an empty row.
func (d *Document) InsertChar(at Position, c rune) {
	if at.Y < 0 || at.Y > len(d.rows) {
		return
	}
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, newRow(nil))
	}
	d.rows[at.Y].InsertChar(at.X, c)
	d.modified = true
	d.rehighlightFrom(at.Y, 1)
}

// InsertNewline splits the row at the given position; at the end of the
// document it appends an empty row instead.
func (d *Document) InsertNewline(at Position) {
	if at.Y < 0 || at.Y > len(d.rows) {
		return
	}
	d.modified = true
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, newRow(nil))
		d.rehighlightFrom(at.Y, 1)
		return
	}

	tail := d.rows[at.Y].Split(at.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = tail
	d.rehighlightFrom(at.Y, 2)
}

// DeleteChar removes the rune at the given position. Deleting at the end of a
// row joins the next row onto it.
func (d *Document) DeleteChar(at Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}

	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y < len(d.rows)-1 {
		row.Append(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
	} else if at.X < row.Len() {
		row.DeleteChar(at.X)
	} else {
		return
	}
	d.modified = true
	d.rehighlightFrom(at.Y, 1)
}

// RehighlightAll recomputes highlighting for every row from the top, threading
// the multi-line comment state row to row.
func (d *Document) RehighlightAll() {
	d.rehighlightFrom(0, len(d.rows))
}

// rehighlightFrom recomputes highlighting starting at row start. The first
// forced rows are always recomputed; after that the cascade continues only
// while a row's ending comment state differs from what it was before the edit,
// since an unchanged ending state means every following row's input is
// unchanged too. It returns the number of rows recomputed.
func (d *Document) rehighlightFrom(start, forced int) int {
	if start < 0 || start >= len(d.rows) {
		return 0
	}

	state := false
	if start > 0 {
		state = d.rows[start-1].openComment
	}

	count := 0
	for i := start; i < len(d.rows); i++ {
		row := d.rows[i]
		before := row.openComment
		state = row.Rehighlight(&d.fileType.Highlight, state)
		count++
		if count >= forced && state == before {
			break
		}
	}
	return count
}
