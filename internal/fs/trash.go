package fs

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Trasher relocates a path to the desktop trash.
type Trasher interface {
	Trash(path string) error
}

// SystemTrasher shells out to the platform trash tool: gio or trash-put on
// Linux, Finder on macOS, the recycle bin via PowerShell on Windows.
// ErrTrashUnavailable is returned when no tool exists.
type SystemTrasher struct {
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
}

// NewSystemTrasher returns a trasher for the running platform.
func NewSystemTrasher() *SystemTrasher {
	return &SystemTrasher{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (t *SystemTrasher) Trash(path string) error {
	name, args, ok := t.command(path)
	if !ok {
		return &OpError{Kind: KindIO, Op: "trash", Path: path, Err: ErrTrashUnavailable}
	}
	if err := t.run(name, args...); err != nil {
		return wrapErr("trash", path, err)
	}
	return nil
}

func (t *SystemTrasher) command(path string) (string, []string, bool) {
	switch t.goos {
	case "darwin":
		if !t.has("osascript") {
			return "", nil, false
		}
		script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, path)
		return "osascript", []string{"-e", script}, true
	case "windows":
		if !t.has("powershell") {
			return "", nil, false
		}
		quoted := strings.ReplaceAll(path, "'", "''")
		script := fmt.Sprintf(`Add-Type -AssemblyName Microsoft.VisualBasic; `+
			`if (Test-Path -LiteralPath '%[1]s' -PathType Container) `+
			`{ [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteDirectory('%[1]s', 'OnlyErrorDialogs', 'SendToRecycleBin') } `+
			`else { [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile('%[1]s', 'OnlyErrorDialogs', 'SendToRecycleBin') }`, quoted)
		return "powershell", []string{"-NoProfile", "-Command", script}, true
	default:
		if t.has("gio") {
			return "gio", []string{"trash", path}, true
		}
		if t.has("trash-put") {
			return "trash-put", []string{path}, true
		}
		return "", nil, false
	}
}

func (t *SystemTrasher) has(cmd string) bool {
	p, err := t.lookPath(cmd)
	return err == nil && p != ""
}
