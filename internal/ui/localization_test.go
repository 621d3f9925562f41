package ui

import (
	"errors"
	"testing"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeySettings); got != "Settings" {
		t.Errorf("GetText(settings) = %q, expected Settings", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeySettings); got != "Настройки" {
		t.Errorf("GetText(settings) in ru = %q, expected Настройки", got)
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(unknown) = %q, expected the key itself", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("unknown language should be ignored, current = %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("language %s has no texts", code)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("language %s misses %s", code, key)
			}
		}
	}
}

func TestLocalization_SystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		detect   func() (string, error)
		expected string
	}{
		{"translated", func() (string, error) { return "zh", nil }, "zh"},
		{"untranslated", func() (string, error) { return "de", nil }, "en"},
		{"detection fails", func() (string, error) { return "", errors.New("no locale") }, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.systemLanguage = tt.detect
			l.SetLanguage("system")
			if got := l.GetCurrentLanguage(); got != tt.expected {
				t.Errorf("SetLanguage(system) = %s, expected %s", got, tt.expected)
			}
		})
	}
}
