package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

func TestNewApplicationLoadsStartDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	app := newTestApplication(t, dir)

	if app.state.CurrentDir != dir {
		t.Fatalf("expected current dir %q, got %q", dir, app.state.CurrentDir)
	}
	file := app.state.CurrentFile()
	if file == nil || file.Name != "sub" || !file.IsDir() {
		t.Fatalf("expected sub/ under the cursor, got %+v", file)
	}
}

func TestNewApplicationFailsOnMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	if _, err := newApplication(newTestScreen(t), Options{Dir: missing}); err == nil {
		t.Fatalf("expected error for missing start directory")
	}
}

// TestKeyEventReachesReducer checks the event -> action -> state path
func TestKeyEventReachesReducer(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	app := newTestApplication(t, dir)

	if !app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)) {
		t.Fatalf("expected key event to request a redraw")
	}
	app.processActions()

	if app.state.Cursor != 1 {
		t.Fatalf("expected cursor 1 after j, got %d", app.state.Cursor)
	}
}

func TestQuitAndChangeRecordsCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	app := newTestApplication(t, dir)

	app.handleAction(statepkg.QuitAndChangeAction{})

	if !app.shouldQuit {
		t.Fatalf("expected quit")
	}
	if app.GetCurrentPath() != dir {
		t.Fatalf("expected result path %q, got %q", dir, app.GetCurrentPath())
	}
}

func TestQuitLeavesResultPathEmpty(t *testing.T) {
	app := newTestApplication(t, t.TempDir())

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	app.processActions()

	if !app.shouldQuit {
		t.Fatalf("expected quit")
	}
	if app.GetCurrentPath() != "" {
		t.Fatalf("expected no result path, got %q", app.GetCurrentPath())
	}
}

func TestEnterOnFileRunsEditor(t *testing.T) {
	app := newTestApplicationWithFile(t)
	app.editorCmd = []string{"fake-editor", "--wait"}
	var recorded []string
	app.runEditor = func(args []string) error {
		recorded = args
		return nil
	}

	app.handleAction(statepkg.ToChildAction{})

	want := []string{"fake-editor", "--wait", filepath.Join(app.state.CurrentDir, "sample.txt")}
	if !reflect.DeepEqual(recorded, want) {
		t.Fatalf("expected editor %v, got %v", want, recorded)
	}
	if app.state.NeedsFullRepaint {
		t.Fatalf("expected repaint flag to be consumed")
	}
	if app.state.Notification != nil {
		t.Fatalf("expected no notification, got %+v", app.state.Notification)
	}
}

func TestEnterOnFileWithoutEditorNotifies(t *testing.T) {
	app := newTestApplicationWithFile(t)
	app.editorCmd = nil

	app.handleAction(statepkg.ToChildAction{})

	n := app.state.Notification
	if n == nil || n.Level != statepkg.LevelError || !strings.Contains(n.Message, errNoEditor.Error()) {
		t.Fatalf("expected editor failure notification, got %+v", n)
	}
}

func TestWriteResult(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "result.txt")

	if err := WriteResult(resultFile, ""); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}
	if _, err := os.Stat(resultFile); !os.IsNotExist(err) {
		t.Fatalf("expected no result file for empty path")
	}

	if err := WriteResult(resultFile, "/tmp/project"); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	data, err := os.ReadFile(resultFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/tmp/project" {
		t.Fatalf("unexpected result content %q", data)
	}
	if runtime.GOOS != "windows" {
		info, _ := os.Stat(resultFile)
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("expected 0600, got %o", perm)
		}
	}
}

func TestResultFilePathUsesPid(t *testing.T) {
	got := ResultFilePath(4242)
	if filepath.Base(got) != "stranger_result_"+strconv.Itoa(4242)+".txt" {
		t.Fatalf("unexpected result file %q", got)
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"nvim", []string{"nvim"}},
		{"code --wait", []string{"code", "--wait"}},
		{`"/opt/My Editor/bin/ed" -n`, []string{"/opt/My Editor/bin/ed", "-n"}},
		{`emacs -nw 'a b'`, []string{"emacs", "-nw", "a b"}},
		{`vi ""`, []string{"vi", ""}},
	}

	for _, tt := range tests {
		if got := splitCommand(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEditorLookupPrefersConfigured(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		return "/usr/bin/" + cmd, nil
	}
	getenv := func(key string) string {
		if key == "EDITOR" {
			return "nano"
		}
		return ""
	}
	args, ok := editorLookup{goos: "linux", getenv: getenv, lookPath: lookPath}.resolve("hx --vsplit")
	if !ok {
		t.Fatalf("expected configured editor")
	}
	expected := []string{"/usr/bin/hx", "--vsplit"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestEditorLookupFallsBackToEnv(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "nano" {
			return "/usr/bin/nano", nil
		}
		return "", errors.New("not found")
	}
	getenv := func(key string) string {
		if key == "EDITOR" {
			return "nano"
		}
		return ""
	}
	args, ok := editorLookup{goos: "linux", getenv: getenv, lookPath: lookPath}.resolve("missing-editor")
	if !ok {
		t.Fatalf("expected env editor")
	}
	if !reflect.DeepEqual(args, []string{"/usr/bin/nano"}) {
		t.Fatalf("expected nano, got %v", args)
	}
}

func TestEditorLookupWindowsFallbacks(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		switch cmd {
		case "code":
			return "", errors.New("not found")
		case "notepad++.exe":
			return `C:\Program Files\Notepad++\notepad++.exe`, nil
		default:
			return "", errors.New("not found")
		}
	}
	getenv := func(string) string { return "" }
	args, ok := editorLookup{goos: "windows", getenv: getenv, lookPath: lookPath}.resolve("")
	if !ok {
		t.Fatalf("expected editor fallback")
	}
	expected := []string{`C:\Program Files\Notepad++\notepad++.exe`}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}

func TestEditorLookupUnixFallbacks(t *testing.T) {
	lookPath := func(cmd string) (string, error) {
		if cmd == "vim" {
			return "/usr/bin/vim", nil
		}
		return "", errors.New("not found")
	}
	getenv := func(string) string { return "" }
	args, ok := editorLookup{goos: "linux", getenv: getenv, lookPath: lookPath}.resolve("")
	if !ok {
		t.Fatalf("expected editor fallback")
	}
	expected := []string{"/usr/bin/vim"}
	if !reflect.DeepEqual(args, expected) {
		t.Fatalf("expected %v, got %v", expected, args)
	}
}
