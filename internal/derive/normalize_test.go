package derive

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"code", "code"},
		{"Code.exe", "code"},
		{"  CODE  ", "code"},
		{"Firefox (x64) [v120.0]", "firefox"},
		{"Firefox.EXE", "firefox"},
		{"Docker Desktop", "docker desktop"},
		{"sublime_text", "sublime text"},
		{"Notepad++ Portable v8.6.2", "notepad"},
		{"OBS Studio 30.0.2 Setup", "obs studio"},
		{"MyApp-Installer-2024-x86.msi", "myapp"},
		{"Office 2019 Pro 64bit", "office"},
		{"微信（测试版）", "微信"},
		{"【Beta】Spotify", "spotify"},
		{"ＣＯＤＥ", "code"},
		{"Universal x86 Tuning Utility", "universal tuning utility"},
		{"obs64", "obs64"},
		{"7zFM", "7zfm"},
		{"setup.exe", ""},
		{"Protonmail", "protonmail"},
		{"app v1.x", "app x"},
		{"tool 1.2.3a", "tool 1 2 3a"},
		{"foo.setup", "foo"},
		{"foo (bar", "foo bar"},
		{"Visual Studio Code - Insiders", "visual studio code insiders"},
		{".exe", "exe"},
		{"\xf6Ĳ", ""},
		{"a\xf6Ĳ", ""},
		{"Code\xff.exe", ""},
		{"Ĳssel", "ijssel"},
	}

	for _, test := range tests {
		result := Normalize(test.raw)
		if result != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestNormalize_EquivalentNamesCollapse(t *testing.T) {
	pairs := [][2]string{
		{"Code.exe", "code"},
		{"Firefox (x64) [v120.0]", "firefox"},
		{"SPOTIFY", "spotify.exe"},
		{"Windows Terminal", "windows_terminal"},
		{"Obsidian Setup 1.5.3", "obsidian"},
	}

	for _, pair := range pairs {
		a, b := Normalize(pair[0]), Normalize(pair[1])
		if a != b {
			t.Errorf("Normalize(%q) = %q but Normalize(%q) = %q", pair[0], a, pair[1], b)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Firefox (x64) [v120.0]",
		"tool 1.2.3a",
		"a1.2",
		"v1.2abc",
		"foo.setup.exe",
		"Ｆｉｒｅｆｏｘ（ｘ６４）",
		"x86_64 build",
		"straße.app",
		"..v2..3..",
		"\xf6Ĳ",
		"a\xf6Ĳ",
		"Ĳssel Ǆ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func FuzzNormalize(f *testing.F) {
	seeds := []string{
		"Code.exe",
		"Firefox (x64) [v120.0]",
		"Notepad++ Portable v8.6.2",
		"微信（测试版）",
		"a1.2",
		"v1.2abc",
		"1.2.3.4.5",
		"[[(nested)]] app",
		"\xf6Ĳ",
		"a\xf6Ĳ",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		once := Normalize(raw)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize(%q) = %q, Normalize(%q) = %q", raw, once, once, twice)
		}
	})
}
