package main

// Core of the application. Holds the editor session state (document, cursor,
// viewport offsets, status message, quit counter), moves the cursor with
// clamping, and renders the visible region plus the status and message bars
// into termbox's cell buffer.

import (
	"fmt"
	"os"
	"time"

	"github.com/nsf/termbox-go"
)

// Mode represents the current operational state of the editor.
type Mode int

const (
	ModeView   Mode = iota // Movement and commands only.
	ModeInsert             // Keys mutate the document.
)

// moveDirection identifies a cursor movement command.
type moveDirection int

const (
	moveUp moveDirection = iota
	moveDown
	moveLeft
	moveRight
	movePageUp
	movePageDown
	moveHome
	moveEnd
)

// Editor is the main controller struct that holds all session state.
type Editor struct {
	document    *Document
	cursor      Position
	offset      Position // First visible row/column of the viewport.
	screenRows  int      // Text area height, excluding the two bottom bars.
	screenCols  int
	mode        Mode
	message     string
	messageTime time.Time
	quitTimes   int  // Remaining quit presses while the document is modified.
	quit        bool // Set when a confirmed quit was requested.
}

// NewEditor creates a new editor instance with an empty unnamed document.
func NewEditor() *Editor {
	e := &Editor{
		document:  NewDocument(),
		mode:      ModeView,
		quitTimes: Config.QuitTimes,
	}
	e.addLog("Editor", "Editor initialized")
	return e
}

// addLog appends an internal debug message to the log file when file logging
// is enabled.
func (e *Editor) addLog(group, msg string) {
	if !Config.UseLogFile {
		return
	}
	t := time.Now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		defer f.Close()
		f.WriteString(logMsg + "\n")
	}
}

// LoadFile opens filename into the editor's document.
func (e *Editor) LoadFile(filename string) error {
	if err := e.document.Open(filename); err != nil {
		return err
	}
	e.cursor = Position{}
	e.offset = Position{}
	e.addLog("Editor", fmt.Sprintf("Loaded %s (%d rows, %s)", filename, e.document.NumRows(), e.document.FileTypeName()))
	return nil
}

// setStatusMessage sets the transient message shown in the bottom bar.
func (e *Editor) setStatusMessage(format string, args ...any) {
	if len(args) > 0 {
		e.message = fmt.Sprintf(format, args...)
	} else {
		e.message = format
	}
	e.messageTime = time.Now()
}

// save writes the document to disk. A failed save leaves the document
// modified and reports the error in the status bar.
func (e *Editor) save() {
	if e.document.Filename() == "" {
		e.setStatusMessage("no file name, save aborted")
		return
	}
	if err := e.document.Save(); err != nil {
		e.addLog("Editor", fmt.Sprintf("Save failed: %v", err))
		e.setStatusMessage("can't save, i/o error: %v", err)
		return
	}
	e.setStatusMessage("file saved to %s", e.document.Filename())
}

// moveCursor applies one movement command, clamping the column to the target
// row's length. Left at column zero wraps to the end of the previous row and
// right at the end of a row wraps to the start of the next.
func (e *Editor) moveCursor(dir moveDirection) {
	x, y := e.cursor.X, e.cursor.Y
	height := e.document.NumRows()
	width := 0
	if row := e.document.Row(y); row != nil {
		width = row.Len()
	}

	switch dir {
	case moveUp:
		if y > 0 {
			y--
		}
	case moveDown:
		if y < height {
			y++
		}
	case moveLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			if row := e.document.Row(y); row != nil {
				x = row.Len()
			} else {
				x = 0
			}
		}
	case moveRight:
		if x < width {
			x++
		} else if y < height {
			y++
			x = 0
		}
	case movePageUp:
		if y > e.screenRows {
			y -= e.screenRows
		} else {
			y = 0
		}
	case movePageDown:
		if y+e.screenRows < height {
			y += e.screenRows
		} else {
			y = height
		}
	case moveHome:
		x = 0
	case moveEnd:
		x = width
	}

	width = 0
	if row := e.document.Row(y); row != nil {
		width = row.Len()
	}
	if x > width {
		x = width
	}

	e.cursor = Position{X: x, Y: y}
}

// scroll adjusts the viewport offsets minimally so the cursor stays inside the
// visible rectangle. The horizontal bound uses visual columns so tabs and wide
// runes scroll correctly.
func (e *Editor) scroll() {
	rx := 0
	if row := e.document.Row(e.cursor.Y); row != nil {
		rx = row.CxToRx(e.cursor.X)
	}

	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	}
	if e.cursor.Y >= e.offset.Y+e.screenRows {
		e.offset.Y = e.cursor.Y - e.screenRows + 1
	}
	if rx < e.offset.X {
		e.offset.X = rx
	}
	if rx >= e.offset.X+e.screenCols {
		e.offset.X = rx - e.screenCols + 1
	}
}

// refreshScreenSize rereads the terminal size, keeping the last two lines for
// the status bar and the message bar.
func (e *Editor) refreshScreenSize() {
	w, h := termbox.Size()
	e.screenCols = w
	e.screenRows = h - 2
	if e.screenRows < 0 {
		e.screenRows = 0
	}
}

// draw assembles one full frame in termbox's cell buffer and flushes it in a
// single operation.
func (e *Editor) draw() {
	_, bg := GetThemeColor(ColorDefault)
	termbox.Clear(termbox.ColorDefault, bg)
	e.refreshScreenSize()
	e.scroll()

	if e.showIntro() {
		e.drawIntro()
	} else {
		e.drawRows()
	}
	e.drawStatusBar(e.screenRows)
	e.drawMessageBar(e.screenRows + 1)

	rx := 0
	if row := e.document.Row(e.cursor.Y); row != nil {
		rx = row.CxToRx(e.cursor.X)
	}
	termbox.SetCursor(rx-e.offset.X, e.cursor.Y-e.offset.Y)
	termbox.Flush()
}

// showIntro reports whether the intro screen should replace the text area:
// only for a pristine unnamed buffer.
func (e *Editor) showIntro() bool {
	d := e.document
	return d.Filename() == "" && !d.Modified() &&
		d.NumRows() == 1 && d.Row(0).Len() == 0
}

// drawRows renders the visible slice of the document, one termbox cell per
// visual column, with the foreground attribute picked by highlight class.
// Rows beyond the end of the document get an end-of-buffer marker.
func (e *Editor) drawRows() {
	_, defaultBg := GetThemeColor(ColorDefault)
	markerFg, _ := GetThemeColor(ColorEmptyLineMarker)

	for screenY := 0; screenY < e.screenRows; screenY++ {
		fileY := screenY + e.offset.Y
		row := e.document.Row(fileY)
		if row == nil {
			termbox.SetCell(0, screenY, '~', markerFg, defaultBg)
			continue
		}

		visualX := 0
		for i := 0; i < row.Len(); i++ {
			c := row.chars[i]
			width := runeVisualWidth(c, visualX)
			fg, _ := GetThemeColor(highlightColorName(row.HighlightAt(i)))

			if c == '\t' {
				for j := 0; j < width; j++ {
					screenX := visualX + j - e.offset.X
					if screenX >= 0 && screenX < e.screenCols {
						termbox.SetCell(screenX, screenY, ' ', fg, defaultBg)
					}
				}
			} else {
				// termbox reserves the continuation cell of wide runes itself.
				screenX := visualX - e.offset.X
				if screenX >= 0 && screenX < e.screenCols {
					termbox.SetCell(screenX, screenY, c, fg, defaultBg)
				}
			}
			visualX += width
		}
	}
}

// drawStatusBar renders the inverted status line: mode, filename, modified
// marker on the left; file type and cursor location on the right.
func (e *Editor) drawStatusBar(statusY int) {
	barFg, barBg := GetThemeColor(ColorStatusBar)
	for x := 0; x < e.screenCols; x++ {
		termbox.SetCell(x, statusY, ' ', barFg, barBg)
	}

	modeStr := "VIEW"
	modeFg, modeBg := GetThemeColor(ColorViewMode)
	if e.mode == ModeInsert {
		modeStr = "INSERT"
		modeFg, modeBg = GetThemeColor(ColorInsertMode)
	}
	termbox.SetCell(0, statusY, ' ', modeFg, modeBg)
	for i, r := range modeStr {
		termbox.SetCell(i+1, statusY, r, modeFg, modeBg)
	}
	termbox.SetCell(len(modeStr)+1, statusY, ' ', modeFg, modeBg)

	fileStr := "[no name]"
	if name := e.document.Filename(); name != "" {
		if len(name) > 20 {
			name = name[:20]
		}
		fileStr = name
	}
	if e.document.Modified() {
		fileStr += " (modified)"
	}
	for i, r := range fileStr {
		termbox.SetCell(len(modeStr)+3+i, statusY, r, barFg, barBg)
	}

	right := fmt.Sprintf("[%d/%d] [%s] ", e.cursor.Y+1, e.document.NumRows(), e.document.FileTypeName())
	rightX := e.screenCols - len(right)
	for i, r := range right {
		if rightX+i >= 0 {
			termbox.SetCell(rightX+i, statusY, r, barFg, barBg)
		}
	}
}

// drawMessageBar renders the transient status message until its display
// deadline passes.
func (e *Editor) drawMessageBar(msgY int) {
	if time.Since(e.messageTime) >= Config.MessageTimeout {
		return
	}
	fg, bg := GetThemeColor(ColorDefault)
	for i, r := range e.message {
		if i >= e.screenCols {
			break
		}
		termbox.SetCell(i, msgY, r, fg, bg)
	}
}
