package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeandeaual/go-locale"

	"github.com/ytget/topbar/internal/model"
)

// KeyboardSource reports the active input locale. The user locale is the
// closest portable stand-in for the keyboard layout.
type KeyboardSource struct {
	getLocale func() (string, error)
}

// NewKeyboardSource creates a keyboard source backed by go-locale
func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{getLocale: locale.GetLocale}
}

// Kind implements Source
func (k *KeyboardSource) Kind() Kind {
	return KindKeyboard
}

// Sample implements Source
func (k *KeyboardSource) Sample(ctx context.Context) (any, error) {
	tag, err := k.getLocale()
	if err != nil {
		return &model.Keyboard{}, fmt.Errorf("failed to get locale: %w", err)
	}
	tag = normalizeLocaleTag(tag)
	if tag == "" {
		return &model.Keyboard{}, nil
	}
	return &model.Keyboard{Layout: model.String(tag)}, nil
}

// normalizeLocaleTag turns POSIX forms like "en_US.UTF-8" into "en-US"
func normalizeLocaleTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "C" || tag == "POSIX" {
		return ""
	}
	return tag
}
