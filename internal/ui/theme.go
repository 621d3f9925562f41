package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/topbar/internal/model"
)

// BarTheme is a compact theme for the status bar. Raised severities are
// drawn with the primary, warning and error colours.
type BarTheme struct{}

// NewBarTheme creates a new bar theme
func NewBarTheme() fyne.Theme {
	return &BarTheme{}
}

// Color returns theme colors
func (t *BarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for medium severity
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 160, B: 0, A: 255} // Amber for high severity
	case theme.ColorNameError:
		return color.RGBA{R: 211, G: 47, B: 47, A: 255} // Red for extreme severity
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 230}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 230}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *BarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 4
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// SeverityImportance maps a severity onto the label importance whose colour
// the theme reserves for it. Low severity keeps the plain foreground.
func SeverityImportance(sev model.Severity) widget.Importance {
	switch sev {
	case model.SeverityMedium:
		return widget.HighImportance
	case model.SeverityHigh:
		return widget.WarningImportance
	case model.SeverityExtreme:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
