package app

import (
	"time"

	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
	"github.com/dshills/multicursor/internal/renderer/backend"
)

// blinkTick is how often the blink phase is checked.
const blinkTick = 50 * time.Millisecond

// eventLoop is the main application loop.
func (app *Application) eventLoop() error {
	events := make(chan backend.Event)
	go app.pollEvents(events)

	ticker := time.NewTicker(blinkTick)
	defer ticker.Stop()

	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				return err
			}
			app.renderer.Render()

		case cfg := <-app.reloads:
			app.applyConfig(cfg)
			app.renderer.Render()

		case now := <-ticker.C:
			if app.blinker.Update(now) {
				app.renderer.Render()
			}
		}
	}
}

// pollEvents forwards backend events until the application is done.
func (app *Application) pollEvents(out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			select {
			case <-app.done:
				return
			default:
				continue
			}
		}
		select {
		case out <- ev:
		case <-app.done:
			return
		}
	}
}

// handleEvent routes a backend event. It returns ErrQuit to exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev.Key)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventFocus:
		if ev.Focused {
			app.blinker.Start(time.Now())
		} else {
			app.blinker.Stop()
		}
	}
	return nil
}

// handleKey runs bound commands and sends every other key to the
// dispatcher.
func (app *Application) handleKey(ev key.Event) error {
	defer app.blinker.Reset(time.Now())

	if name, ok := app.keys.Lookup(ev); ok {
		if name == CmdQuit {
			return ErrQuit
		}
		if !app.commands.Run(name) {
			app.logger.Warn("key %s: unknown command %q", ev, name)
		}
		return nil
	}

	app.dispatcher.HandleKey(ev)
	return nil
}

// handleMouse places, toggles and adds cursors on left button presses.
// Ctrl+Alt toggles a cursor, Ctrl+Alt+Shift adds a column of cursors and a
// plain click moves the primary cursor and drops the extras.
func (app *Application) handleMouse(ev backend.Event) {
	pressed := ev.MouseButton == backend.MouseLeft && app.lastButton != backend.MouseLeft
	app.lastButton = ev.MouseButton
	if !pressed {
		return
	}

	offset := app.renderer.OffsetAt(ev.MouseX, ev.MouseY)
	ctrlAlt := ev.Mod&(key.ModCtrl|key.ModAlt) == key.ModCtrl|key.ModAlt
	switch {
	case ctrlAlt && ev.Mod&key.ModShift != 0:
		app.commands.AddColumnCursors(offset)
	case ctrlAlt:
		app.commands.ToggleCursorAt(offset)
	default:
		cs := app.ed.Cursors()
		cs.ClearExtraCursors()
		cs.SetPrimary(cursor.NewCursor(offset))
		app.ed.EmitCursorPositionChanged()
	}
	app.blinker.Reset(time.Now())
}
