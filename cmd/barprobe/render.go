package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/model"
	"github.com/ytget/topbar/internal/provider"
)

var (
	styleName    = lipgloss.NewStyle().Bold(true).Width(10)
	styleIcon    = lipgloss.NewStyle().Faint(true).Width(28)
	styleTooltip = lipgloss.NewStyle().Faint(true)
	styleMedium  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	styleHigh    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleExtreme = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// row is one printed segment
type row struct {
	Name string
	View derive.View
}

// probeRows derives the segments from one reading per source, in bar order
func probeRows(readings map[provider.Kind]any, p derive.Policy, icons derive.IconLookup) []row {
	battery, _ := readings[provider.KindBattery].(*model.Battery)
	network, _ := readings[provider.KindNetwork].(*model.Network)
	cpu, _ := readings[provider.KindCPU].(*model.CPU)
	keyboard, _ := readings[provider.KindKeyboard].(*model.Keyboard)
	date, _ := readings[provider.KindClock].(*model.Date)
	workspace, _ := readings[provider.KindWorkspace].(*model.Workspace)

	rows := make([]row, 0, 6+workspace.Len())
	for i, view := range derive.AppViews(workspace, icons) {
		rows = append(rows, row{Name: fmt.Sprintf("app %d", i+1), View: view})
	}
	rows = append(rows,
		row{Name: "title", View: derive.TitleView(workspace)},
		row{Name: "cpu", View: derive.CPUView(cpu, p)},
		row{Name: "battery", View: derive.BatteryView(battery, p)},
		row{Name: "network", View: derive.NetworkView(network, p)},
		row{Name: "keyboard", View: derive.KeyboardView(keyboard, p)},
		row{Name: "clock", View: derive.ClockView(date, p)},
	)
	return rows
}

// severityStyle maps a severity to the style of its label
func severityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityMedium:
		return styleMedium
	case model.SeverityHigh:
		return styleHigh
	case model.SeverityExtreme:
		return styleExtreme
	default:
		return lipgloss.NewStyle()
	}
}

// renderRow prints name, icon, label and tooltip on one line
func renderRow(r row) string {
	icon := r.View.Icon.Name
	if r.View.Icon.Dimmed {
		icon += " (dimmed)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styleName.Render(r.Name),
		styleIcon.Render(icon),
		severityStyle(r.View.Severity).Render(r.View.Label),
		" ",
		styleTooltip.Render(r.View.Tooltip),
	)
}
