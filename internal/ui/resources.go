package ui

import (
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/topbar/internal/derive"
)

// IconCache loads icon files from the icon directory once and hands out
// Fyne resources. Files that cannot be read fall back to a built-in theme
// icon so a segment is never drawn without an image.
type IconCache struct {
	mu        sync.Mutex
	dir       string
	resources map[string]fyne.Resource
	missing   map[string]bool
}

// NewIconCache creates a cache reading from dir
func NewIconCache(dir string) *IconCache {
	return &IconCache{
		dir:       dir,
		resources: make(map[string]fyne.Resource),
		missing:   make(map[string]bool),
	}
}

// Dir returns the icon directory
func (c *IconCache) Dir() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dir
}

// SetDir switches the icon directory and drops everything loaded so far
func (c *IconCache) SetDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dir == c.dir {
		return
	}
	c.dir = dir
	c.resources = make(map[string]fyne.Resource)
	c.missing = make(map[string]bool)
}

// Resource returns the resource for an icon reference, nil for the empty
// reference. Dimmed references are rendered with the disabled colour.
func (c *IconCache) Resource(ref derive.IconRef) fyne.Resource {
	if ref.IsZero() {
		return nil
	}
	res := c.load(ref)
	if ref.Dimmed {
		return theme.NewDisabledResource(res)
	}
	return res
}

func (c *IconCache) load(ref derive.IconRef) fyne.Resource {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.resources[ref.Name]; ok {
		return res
	}

	res, err := fyne.LoadResourceFromPath(ref.Path(c.dir))
	if err != nil {
		if !c.missing[ref.Name] {
			log.Printf("Warning: icon %s not loaded: %v", ref.Name, err)
			c.missing[ref.Name] = true
		}
		res = fallbackIcon(ref.Name)
	}
	c.resources[ref.Name] = res
	return res
}

// fallbackIcon picks a theme icon resembling the missing file
func fallbackIcon(name string) fyne.Resource {
	switch {
	case strings.HasPrefix(name, "battery"):
		return theme.StorageIcon()
	case strings.HasPrefix(name, "wifi"), strings.HasPrefix(name, "wired"):
		return theme.UploadIcon()
	case strings.HasPrefix(name, "no-network"):
		return theme.CancelIcon()
	case name == derive.IconCPU:
		return theme.ComputerIcon()
	case name == derive.IconClock:
		return theme.HistoryIcon()
	case name == derive.IconKeyboard:
		return theme.SettingsIcon()
	case name == derive.IconStartMenu:
		return theme.MenuIcon()
	default:
		return theme.FileApplicationIcon()
	}
}
