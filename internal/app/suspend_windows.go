//go:build windows

package app

import "os"

// Windows has no job control: ctrl+z is ignored and nothing resumes the loop.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool { return false }

func contSignals() []os.Signal { return nil }
