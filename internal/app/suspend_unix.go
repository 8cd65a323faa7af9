//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell hands the terminal back and stops this process only, so a
// wrapping shell function keeps its own job state.
func (app *Application) suspendToShell() {
	_ = app.screen.Suspend()
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop reclaims the terminal after SIGCONT and picks up any size
// change made while stopped.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.log.WithError(err).Warn("resume failed")
		return false
	}
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth, app.state.ScreenHeight = w, h
	}
	_ = app.screen.PostEvent(tcell.NewEventInterrupt(nil))
	return true
}
