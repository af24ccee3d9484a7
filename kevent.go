package main

// Input processing engine. Contains the main event loop and dispatches
// keyboard events to the mode-specific handlers (view and insert), including
// the quit-confirmation state machine.

import (
	"github.com/nsf/termbox-go"
)

// HandleEvents is the central loop that waits for and processes all user
// input. It returns when a quit has been confirmed; the caller owns terminal
// teardown.
func (e *Editor) HandleEvents() error {
	for {
		e.draw()
		if e.quit {
			return nil
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			e.processKey(ev)
		case termbox.EventResize:
			// The next draw rereads the terminal size.
		case termbox.EventError:
			return ev.Err
		}
	}
}

// processKey runs one key event through the quit machine and then the handler
// for the current mode. Unrecognized keys fall through and are ignored.
func (e *Editor) processKey(ev termbox.Event) {
	if ev.Key == termbox.KeyCtrlQ {
		if e.document.Modified() {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.setStatusMessage("WARNING! file has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return
			}
		}
		e.addLog("Editor", "Quit confirmed")
		e.quit = true
		return
	}
	// Any non-quit key disarms the confirmation counter.
	e.quitTimes = Config.QuitTimes

	if ev.Key == termbox.KeyCtrlS {
		e.save()
		return
	}

	switch e.mode {
	case ModeView:
		e.handleViewMode(ev)
	case ModeInsert:
		e.handleInsertMode(ev)
	}

	e.scroll()
}

// handleViewMode processes keys in view mode: movement plus entering insert
// mode. Printable keys never mutate the document here.
func (e *Editor) handleViewMode(ev termbox.Event) {
	if dir, ok := movementKey(ev); ok {
		e.moveCursor(dir)
		return
	}

	switch ev.Ch {
	case 'i':
		e.mode = ModeInsert
	case 'h':
		e.moveCursor(moveLeft)
	case 'j':
		e.moveCursor(moveDown)
	case 'k':
		e.moveCursor(moveUp)
	case 'l':
		e.moveCursor(moveRight)
	}
}

// handleInsertMode processes keys in insert mode: edits plus movement.
func (e *Editor) handleInsertMode(ev termbox.Event) {
	if dir, ok := movementKey(ev); ok {
		e.moveCursor(dir)
		return
	}

	switch ev.Key {
	case termbox.KeyEsc:
		e.mode = ModeView
	case termbox.KeyEnter:
		e.document.InsertNewline(e.cursor)
		e.cursor = Position{X: 0, Y: e.cursor.Y + 1}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		if e.cursor.X > 0 || e.cursor.Y > 0 {
			e.moveCursor(moveLeft)
			e.document.DeleteChar(e.cursor)
		}
	case termbox.KeyDelete:
		e.document.DeleteChar(e.cursor)
	case termbox.KeySpace:
		e.insertChar(' ')
	case termbox.KeyTab:
		e.insertChar('\t')
	default:
		if ev.Ch != 0 {
			e.insertChar(ev.Ch)
		}
	}
}

// insertChar inserts a rune at the cursor and advances it.
func (e *Editor) insertChar(c rune) {
	e.document.InsertChar(e.cursor, c)
	e.cursor.X++
}

// movementKey maps the special movement keys shared by both modes. The second
// return value is false for everything else.
func movementKey(ev termbox.Event) (moveDirection, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return moveUp, true
	case termbox.KeyArrowDown:
		return moveDown, true
	case termbox.KeyArrowLeft:
		return moveLeft, true
	case termbox.KeyArrowRight:
		return moveRight, true
	case termbox.KeyPgup:
		return movePageUp, true
	case termbox.KeyPgdn:
		return movePageDown, true
	case termbox.KeyHome:
		return moveHome, true
	case termbox.KeyEnd:
		return moveEnd, true
	}
	return 0, false
}
