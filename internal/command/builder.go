package command

import (
	"path"
	"strings"
	"unicode"
)

// Command verbs and targets
const (
	ShellExec   = "shell-exec"
	ScriptExt   = ".ahk"
	TaskManager = "%windir%/system32/taskmgr.exe"
)

// Script names, one per action
const (
	ScriptOpenStartMenu          = "OpenStartMenu"
	ScriptOpenActionCenter       = "OpenActionCenter"
	ScriptOpenInputSwitcher      = "OpenInputSwitcher"
	ScriptOpenNotificationCenter = "OpenNotificationCenter"
	ScriptFocusWindow            = "FocusWindow"
)

// Builder produces command strings for bar actions. Scripts are resolved
// below ScriptsDir, which may contain %VAR% references; they are expanded
// when the command runs, not here.
type Builder struct {
	ScriptsDir string
}

// NewBuilder creates a builder for the given scripts directory
func NewBuilder(scriptsDir string) Builder {
	return Builder{ScriptsDir: scriptsDir}
}

// OpenStartMenu is fired by the start button
func (b Builder) OpenStartMenu() string {
	return b.script(ScriptOpenStartMenu, "")
}

// OpenActionCenter is fired by the network and battery segments
func (b Builder) OpenActionCenter() string {
	return b.script(ScriptOpenActionCenter, "")
}

// OpenInputSwitcher is fired by the keyboard segment
func (b Builder) OpenInputSwitcher() string {
	return b.script(ScriptOpenInputSwitcher, "")
}

// OpenNotificationCenter is fired by the clock segment
func (b Builder) OpenNotificationCenter() string {
	return b.script(ScriptOpenNotificationCenter, "")
}

// FocusWindow is fired by an application button with its window handle
func (b Builder) FocusWindow(handle string) string {
	return b.script(ScriptFocusWindow, handle)
}

// OpenTaskManager is fired by the cpu segment
func (b Builder) OpenTaskManager() string {
	return ShellExec + " " + TaskManager
}

// script renders "shell-exec <dir>/<name>.ahk [arg]". A target containing
// spaces is double quoted.
func (b Builder) script(name, arg string) string {
	target := name + ScriptExt
	if dir := toSlash(strings.TrimSpace(b.ScriptsDir)); dir != "" {
		target = path.Join(dir, target)
	}
	if strings.ContainsAny(target, " \t") {
		target = `"` + target + `"`
	}

	cmd := ShellExec + " " + target
	if arg = SanitizeArg(arg); arg != "" {
		cmd += " " + arg
	}
	return cmd
}

// SanitizeArg removes whitespace and control runes so the argument stays a
// single token of the command string
func SanitizeArg(arg string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '"' {
			return -1
		}
		return r
	}, arg)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
