package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

// Run drives the event loop until the user quits. The terminal is restored
// on every exit path, including panics.
func (app *Application) Run() (err error) {
	defer app.screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			app.screen.Fini()
			app.log.WithField("panic", r).Error("recovered from panic")
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	events := app.pollEvents()
	resumed, stop := watchResume()
	defer stop()

	dirty := true
	for !app.shouldQuit {
		if dirty {
			app.renderer.Render(app.state)
		}

		select {
		case ev := <-events:
			dirty = app.handleEvent(ev)
		case action := <-app.actionCh:
			dirty = app.handleAction(action)
		case <-resumed:
			dirty = app.resumeAfterStop()
		}
		// drain whatever the input handler queued for this event
		if app.processActions() {
			dirty = true
		}
	}
	return nil
}

// pollEvents forwards tcell events to the loop goroutine.
func (app *Application) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			events <- app.screen.PollEvent()
		}
	}()
	return events
}

// watchResume delivers SIGCONT where the platform has it. The returned
// channel is nil elsewhere and never fires.
func watchResume() (<-chan os.Signal, func()) {
	sigs := contSignals()
	if len(sigs) == 0 {
		return nil, func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	return ch, func() { signal.Stop(ch) }
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.shouldQuit = !app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	case nil:
		// screen finalized
		app.shouldQuit = true
	}
	return false
}

func (app *Application) processActions() (changed bool) {
	for {
		select {
		case action := <-app.actionCh:
			changed = app.handleAction(action) || changed
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.YankPathAction:
		return app.yankPath()
	case statepkg.OpenExternalAction:
		return app.openExternal()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).WithField("action", fmt.Sprintf("%T", action)).Warn("action failed")
		app.notify(statepkg.LevelError, err.Error())
	}

	if app.state.NeedsFullRepaint {
		app.screen.Sync()
		app.state.NeedsFullRepaint = false
	}
	if app.state.Quit {
		app.shouldQuit = true
		if app.state.ChangeDirOnExit {
			app.currentPath = app.state.CurrentDir
		}
		return false
	}
	return true
}
