package shellsetup

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectShell(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "login shell prefix is dropped",
			goos:          "darwin",
			parent:        func() string { return "-zsh" },
			expectedShell: "zsh",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				if key == "SHELL" {
					return tt.envShell
				}
				return ""
			}
			got := detectShell(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShell() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestShellName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/bin/zsh", "zsh"},
		{"-bash", "bash"},
		{"fish --login", "fish"},
		{`"C:\Program Files\PowerShell\7\pwsh.exe" -NoLogo`, "pwsh"},
		{"powershell.exe", "pwsh"},
		{"'/usr/bin/nu'", "nu"},
	}
	for _, tt := range tests {
		if got := shellName(tt.in); got != tt.want {
			t.Fatalf("shellName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScriptPicksShellFlavour(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "stranger() {"},
		{"/usr/bin/zsh", "stranger() {"},
		{"-bash", "stranger() {"},
		{"fish", "function stranger\n"},
		{"powershell.exe", "function stranger {"},
		{"tcsh", "stranger() {"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			got := Script(tt.shell, "/opt/bin/stranger")
			if !strings.HasPrefix(got, tt.want) {
				t.Fatalf("Script(%q) starts with %q, want prefix %q", tt.shell, firstLine(got), tt.want)
			}
			if !strings.Contains(got, `"/opt/bin/stranger"`) {
				t.Fatalf("expected quoted executable in script:\n%s", got)
			}
			if !strings.Contains(got, "stranger_result_") {
				t.Fatalf("expected result file lookup in script:\n%s", got)
			}
		})
	}
}

func TestPrintSetupUsesOverride(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		DetectParent: func() string { return "bash" },
		Executable:   "/bin/stranger",
	}
	if err := PrintSetup(&buf, "fish", cfg); err != nil {
		t.Fatalf("PrintSetup: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "function stranger") {
		t.Fatalf("expected fish function, got:\n%s", buf.String())
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
