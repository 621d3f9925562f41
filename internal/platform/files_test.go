package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeAppDir(t *testing.T) {
	dir, err := GetHomeAppDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with %s, got: %s", AppDirName, dir)
	}

	if filepath.Base(DefaultIconDir()) != IconsDirName {
		t.Errorf("DefaultIconDir() = %s", DefaultIconDir())
	}
	if filepath.Base(DefaultScriptsDir()) != ScriptsDirName {
		t.Errorf("DefaultScriptsDir() = %s", DefaultScriptsDir())
	}
	if filepath.Base(DefaultCatalogPath()) != CatalogFile {
		t.Errorf("DefaultCatalogPath() = %s", DefaultCatalogPath())
	}
}

func TestExpandPercent(t *testing.T) {
	env := map[string]string{"windir": `C:\Windows`, "USERPROFILE": `C:\Users\me`}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"%windir%/system32/taskmgr.exe", `C:\Windows/system32/taskmgr.exe`},
		{"%USERPROFILE%/a %windir%", `C:\Users\me/a C:\Windows`},
		{"100% sure", "100% sure"},
		{"%missing%/x", "%missing%/x"},
		{"50% off %windir%", `50% off C:\Windows`},
		{"%%", "%%"},
		{"no vars", "no vars"},
	}

	for _, test := range tests {
		result := expandPercent(test.input, lookup)
		if result != test.expected {
			t.Errorf("expandPercent(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TOPBAR_TEST_DIR", "/opt/bar")

	tests := []struct {
		input    string
		expected string
	}{
		{"%TOPBAR_TEST_DIR%/scripts", "/opt/bar/scripts"},
		{"%topbar_test_dir%/scripts", "/opt/bar/scripts"},
		{"$TOPBAR_TEST_DIR/scripts", "/opt/bar/scripts"},
		{"${TOPBAR_TEST_DIR}/scripts", "/opt/bar/scripts"},
	}

	for _, test := range tests {
		result := ExpandEnv(test.input)
		if result != test.expected {
			t.Errorf("ExpandEnv(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}

	if home, err := os.UserHomeDir(); err == nil && os.Getenv("USERPROFILE") == "" {
		if got := ExpandEnv("%userprofile%/x"); got != home+"/x" {
			t.Errorf("ExpandEnv(%%userprofile%%) = %q, expected %q", got, home+"/x")
		}
	}
}

func TestLaunchCommand(t *testing.T) {
	tests := []struct {
		goos     string
		target   string
		args     []string
		expected string
	}{
		{OSWindows, `C:\Windows/system32/taskmgr.exe`, nil, `C:\Windows/system32/taskmgr.exe`},
		{OSWindows, "scripts/FocusWindow.ahk", []string{"0x1a"}, `cmd /c start  scripts/FocusWindow.ahk 0x1a`},
		{OSDarwin, "scripts/run.sh", []string{"a"}, "scripts/run.sh a"},
		{OSDarwin, "Calendar.app", nil, "open Calendar.app"},
		{OSDarwin, "Tool.app", []string{"x"}, "open Tool.app --args x"},
		{OSLinux, "/usr/bin/htop", nil, "/usr/bin/htop"},
		{OSLinux, "scripts/OpenStartMenu.ahk", []string{"ignored"}, "xdg-open scripts/OpenStartMenu.ahk"},
	}

	for _, test := range tests {
		name, args := LaunchCommand(test.goos, test.target, test.args)
		result := strings.Join(append([]string{name}, args...), " ")
		if result != test.expected {
			t.Errorf("LaunchCommand(%s, %s) = %q, expected %q", test.goos, test.target, result, test.expected)
		}
	}
}
