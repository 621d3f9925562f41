package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Directory names below the user's home
const (
	AppDirName     = ".topbar"
	IconsDirName   = "icons"
	ScriptsDirName = "scripts"
	CatalogFile    = "icons.yaml"
)

// Extensions Windows can start without a file association
var WindowsExecutableExtensions = []string{".exe", ".com", ".bat", ".cmd"}

// Extensions started directly on unix-like systems
var UnixExecutableExtensions = []string{"", ".sh"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeAppDir returns the per-user directory holding icons, scripts and
// the icon catalog
func GetHomeAppDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDirName), nil
}

// DefaultIconDir returns the default icon directory, or a relative path
// when the home directory is unknown
func DefaultIconDir() string {
	return appSubdir(IconsDirName)
}

// DefaultScriptsDir returns the default helper scripts directory
func DefaultScriptsDir() string {
	return appSubdir(ScriptsDirName)
}

// DefaultCatalogPath returns the default icon catalog file
func DefaultCatalogPath() string {
	return appSubdir(CatalogFile)
}

func appSubdir(name string) string {
	dir, err := GetHomeAppDir()
	if err != nil {
		return filepath.Join(AppDirName, name)
	}
	return filepath.Join(dir, name)
}

// ExpandEnv expands %VAR% references as well as $VAR and ${VAR}. Windows
// style names are matched case-insensitively; unknown %VAR% references are
// kept as written.
func ExpandEnv(s string) string {
	return os.Expand(expandPercent(s, lookupEnvFold), os.Getenv)
}

// expandPercent replaces %NAME% pairs using lookup
func expandPercent(s string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			break
		}
		end += start + 1

		name := s[start+1 : end]
		b.WriteString(s[:start])
		if value, ok := lookup(name); ok && name != "" {
			b.WriteString(value)
			s = s[end+1:]
			continue
		}
		// keep the first % and retry from the second, it may open a pair
		b.WriteString(s[start:end])
		s = s[end:]
	}
	b.WriteString(s)
	return b.String()
}

// lookupEnvFold looks up an environment variable ignoring case, with the
// usual Windows names mapped to their unix equivalents
func lookupEnvFold(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 && strings.EqualFold(kv[:i], name) {
			return kv[i+1:], true
		}
	}
	if strings.EqualFold(name, "userprofile") {
		if home, err := os.UserHomeDir(); err == nil {
			return home, true
		}
	}
	return "", false
}

// LaunchCommand returns the program and arguments that start target on the
// given OS. Executables run directly; anything else goes through the
// system's default handler.
func LaunchCommand(goos, target string, args []string) (string, []string) {
	ext := strings.ToLower(filepath.Ext(target))

	switch goos {
	case OSWindows:
		if hasExtension(WindowsExecutableExtensions, ext) {
			return target, args
		}
		return CmdCommand, append([]string{WindowsCmdFlag, StartCommand, "", target}, args...)
	case OSDarwin:
		if hasExtension(UnixExecutableExtensions, ext) {
			return target, args
		}
		if len(args) > 0 {
			return OpenCommand, append([]string{target, "--args"}, args...)
		}
		return OpenCommand, []string{target}
	default:
		if hasExtension(UnixExecutableExtensions, ext) {
			return target, args
		}
		// xdg-open takes a single target
		return XDGOpenCommand, []string{target}
	}
}

// LaunchCommandForHost is LaunchCommand for the running OS
func LaunchCommandForHost(target string, args []string) (string, []string) {
	return LaunchCommand(runtime.GOOS, target, args)
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
