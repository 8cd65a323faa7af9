package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kk-code-lab/stranger/internal/i18n"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
	"github.com/sirupsen/logrus"
)

var errNoEditor = errors.New("no editor configured")

var commandBuilder = exec.Command

// Execute opens path in the editor with the screen suspended. The reducer
// calls it for files entered with l or opened from a bookmark.
func (app *Application) Execute(filePath string) error {
	if len(app.editorCmd) == 0 {
		return errNoEditor
	}
	app.log.WithField("path", filePath).Debug("opening editor")
	return app.runEditor(app.editorArgsWithFile(filePath))
}

func (app *Application) yankPath() bool {
	target := app.state.CurrentFilePath()
	if target == "" {
		target = app.state.CurrentDir
	}
	target = normalizeClipboardPath(target, runtime.GOOS)

	if err := app.writeClipboard(target); err != nil {
		app.log.WithError(err).Warn("clipboard write failed")
		app.notify(statepkg.LevelError, i18n.T(i18n.YankFailed, err.Error()))
		return true
	}
	app.notify(statepkg.LevelSuccess, i18n.T(i18n.PathYanked, target))
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

// openExternal hands the entry under the cursor to the desktop's default
// application without leaving the browser.
func (app *Application) openExternal() bool {
	target := app.state.CurrentFilePath()
	if target == "" {
		return false
	}
	if err := app.openPath(target); err != nil {
		app.log.WithFields(logrus.Fields{"path": target}).WithError(err).Warn("open failed")
		app.notify(statepkg.LevelError, i18n.T(i18n.OpenFailed, filepath.Base(target), err.Error()))
	}
	return true
}

func (app *Application) notify(level statepkg.NotificationLevel, msg string) {
	app.state.Notification = &statepkg.Notification{Level: level, Message: msg}
}

// terminalIO is where a suspended command reads and writes.
type terminalIO struct {
	in, out, err *os.File
}

func stdio() terminalIO {
	return terminalIO{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// runInTerminal runs args on the controlling terminal while the screen is
// suspended. /dev/tty is preferred so redirected stdio does not reach the
// editor; Windows and tty-less sessions use the process stdio.
func (app *Application) runInTerminal(args []string) error {
	if runtime.GOOS == "windows" {
		return app.runSuspended(args, stdio())
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		app.log.WithError(err).Debug("no controlling tty, using stdio")
		return app.runSuspended(args, stdio())
	}
	defer tty.Close()
	return app.runSuspended(args, terminalIO{in: tty, out: tty, err: tty})
}

func (app *Application) runSuspended(args []string, term terminalIO) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = term.in, term.out, term.err
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to resume screen: %w", err))
	}
	app.screen.Sync()
	return runErr
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	return append(append([]string(nil), app.editorCmd...), filePath)
}
