package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// fallbackEditors are tried in order when neither the config nor the
// environment names a usable editor.
var fallbackEditors = map[string][][]string{
	"windows": {{"code", "--wait"}, {"notepad++.exe"}, {"notepad.exe"}},
	"":        {{"nvim"}, {"vim"}, {"nano"}},
}

// editorLookup finds the command that opens files in ToChild.
type editorLookup struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

func systemEditorLookup() editorLookup {
	return editorLookup{goos: runtime.GOOS, getenv: os.Getenv, lookPath: exec.LookPath}
}

// resolve returns argv for the first runnable editor: configured, then
// $VISUAL, then $EDITOR, then the platform fallbacks.
func (l editorLookup) resolve(configured string) ([]string, bool) {
	for _, command := range []string{configured, l.getenv("VISUAL"), l.getenv("EDITOR")} {
		if argv, ok := l.runnable(splitCommand(command)); ok {
			return argv, true
		}
	}

	fallbacks, ok := fallbackEditors[strings.ToLower(l.goos)]
	if !ok {
		fallbacks = fallbackEditors[""]
	}
	for _, argv := range fallbacks {
		if resolved, ok := l.runnable(append([]string(nil), argv...)); ok {
			return resolved, true
		}
	}
	return nil, false
}

func (l editorLookup) runnable(argv []string) ([]string, bool) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, false
	}
	path, err := l.lookPath(expandHome(argv[0]))
	if err != nil {
		return nil, false
	}
	argv[0] = path
	return argv, true
}

// splitCommand splits a shell-like command line on unquoted whitespace.
// Single and double quotes group words; there are no escapes.
func splitCommand(command string) []string {
	var (
		argv  []string
		word  strings.Builder
		quote rune
		open  bool
	)
	flush := func() {
		if open {
			argv = append(argv, word.String())
			word.Reset()
			open = false
		}
	}

	for _, r := range strings.TrimSpace(command) {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote, open = r, true
		case quote == 0 && unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
			open = true
		}
	}
	flush()
	return argv
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	rest := path[1:]
	if rest != "" && rest[0] != '/' && rest[0] != '\\' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimLeft(rest, `/\`))
}
