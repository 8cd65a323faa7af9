// Package shellsetup prints the shell function that lets stranger change the
// parent shell's directory on quit-and-cd.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	Executable   string // defaults to os.Executable
}

const posixScript = `stranger() {
    if [ "$#" -gt 0 ] && [ ! -d "$1" ]; then
        command %[1]s "$@"
        return $?
    fi

    command %[1]s "$@" &
    stranger_pid=$!
    wait $stranger_pid

    result_file="${TMPDIR:-/tmp}/stranger_result_$stranger_pid.txt"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        rm -f "$result_file"
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    else
        rm -f "$result_file" 2>/dev/null
    fi
}
`

const fishScript = `function stranger
    command %[1]s $argv &
    set stranger_pid $last_pid
    wait $stranger_pid

    set tmp $TMPDIR
    test -z "$tmp"; and set tmp /tmp
    set result_file "$tmp/stranger_result_$stranger_pid.txt"
    if test -f "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
    rm -f "$result_file" 2>/dev/null
end
`

const pwshScript = `function stranger {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    $process = Start-Process -FilePath %[1]s -ArgumentList $Args -NoNewWindow -PassThru
    $process.WaitForExit()

    $resultFile = Join-Path $env:TEMP "stranger_result_$($process.Id).txt"
    try {
        if (Test-Path $resultFile -PathType Leaf) {
            $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue | ForEach-Object { $_.Trim() }
            if ((Test-Path $dest -PathType Container) -and -not [string]::IsNullOrEmpty($dest)) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
}
`

// Script returns the integration snippet for shell. Shells without a
// dedicated snippet get the POSIX function.
func Script(shell, executable string) string {
	quoted := strconv.Quote(executable)
	switch shellName(shell) {
	case "fish":
		return fmt.Sprintf(fishScript, quoted)
	case "pwsh":
		return fmt.Sprintf(pwshScript, quoted)
	default:
		return fmt.Sprintf(posixScript, quoted)
	}
}

// PrintSetup writes the snippet for shellOverride, or for the detected shell
// when the override is empty.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := shellName(shellOverride)
	if shell == "" {
		shell = detectShell(runtime.GOOS, os.Getenv, parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "stranger"
		}
	}

	_, err := io.WriteString(w, Script(shell, exe))
	return err
}

// detectShell picks the shell from $SHELL, then the parent process, then
// the platform default.
func detectShell(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := shellName(getenv("SHELL")); shell != "" {
		return shell
	}
	if parent != nil {
		if shell := shellName(parent()); shell != "" {
			return shell
		}
	}
	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

// shellName reduces a command line or executable path such as
// `"C:\Program Files\PowerShell\7\pwsh.exe" -NoLogo` or "-zsh" to a
// lower-case shell name. powershell is reported as pwsh.
func shellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if q := value[0]; q == '"' || q == '\'' {
		value = value[1:]
		if end := strings.IndexByte(value, q); end >= 0 {
			value = value[:end]
		}
	} else if end := strings.IndexAny(value, " \t"); end >= 0 {
		value = value[:end]
	}

	name := strings.ToLower(path.Base(strings.ReplaceAll(value, `\`, "/")))
	name = strings.TrimPrefix(strings.TrimSuffix(name, ".exe"), "-")
	if name == "powershell" {
		return "pwsh"
	}
	if name == "." || name == "/" {
		return ""
	}
	return name
}
