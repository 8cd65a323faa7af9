package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/stranger/internal/config"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
	inputui "github.com/kk-code-lab/stranger/internal/ui/input"
	renderui "github.com/kk-code-lab/stranger/internal/ui/render"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// Options configure a new Application.
type Options struct {
	Dir        string // start directory; empty means the working directory
	Editor     string // editor command line, tried before $VISUAL and $EDITOR
	Store      *config.Store
	Hide       statepkg.NameMatcher
	ShowHidden bool
}

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *statepkg.AppState
	reducer     *statepkg.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan statepkg.Action
	shouldQuit  bool
	currentPath string
	editorCmd   []string
	log         *logrus.Entry

	// system seams, replaced in tests
	writeClipboard func(text string) error
	openPath       func(path string) error
	runEditor      func(args []string) error
}

// NewApplication opens the terminal and loads the start directory.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, opts Options) (*Application, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", opts.Dir, err)
	}

	var bookmarks config.Bookmarks
	if opts.Store != nil && opts.Store.Config != nil {
		bookmarks = opts.Store.Config.Bookmarks
	}
	state := statepkg.NewAppState(dir, bookmarks)
	state.ShowHidden = opts.ShowHidden
	state.Hide = opts.Hide
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	editorCmd, _ := systemEditorLookup().resolve(opts.Editor)
	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:         screen,
		state:          state,
		renderer:       renderui.NewRenderer(screen),
		input:          inputui.NewInputHandler(actionCh),
		actionCh:       actionCh,
		editorCmd:      editorCmd,
		log:            logrus.WithField("component", "app"),
		writeClipboard: writeSystemClipboard,
		openPath:       open.Start,
	}
	app.runEditor = app.runInTerminal

	deps := statepkg.Dependencies{Executor: app}
	if opts.Store != nil {
		deps.Config = opts.Store
	}
	app.reducer = statepkg.NewStateReducer(deps)
	if err := app.reducer.Load(state); err != nil {
		return nil, err
	}
	app.input.SetState(state)

	app.log.WithFields(logrus.Fields{
		"dir":    dir,
		"editor": editorCmd,
	}).Info("application started")
	return app, nil
}

func writeSystemClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// GetCurrentPath returns the directory to change to on exit, or "" when the
// user quit without asking for it.
func (app *Application) GetCurrentPath() string {
	return app.currentPath
}

// ResultFilePath is where the shell function from --setup looks for the
// directory to change to.
func ResultFilePath(pid int) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("stranger_result_%d.txt", pid))
}

// WriteResult stores path for the shell integration. It is a no-op for an
// empty path.
func WriteResult(resultFile, path string) error {
	if path == "" {
		return nil
	}
	// owner only
	if err := os.WriteFile(resultFile, []byte(path), 0o600); err != nil {
		return fmt.Errorf("could not write result file: %w", err)
	}
	return nil
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
