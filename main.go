package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/topbar/internal/catalog"
	"github.com/ytget/topbar/internal/command"
	"github.com/ytget/topbar/internal/config"
	"github.com/ytget/topbar/internal/platform"
	"github.com/ytget/topbar/internal/provider"
	"github.com/ytget/topbar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.topbar"
	AppName = "Top Bar"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply bar theme
	myApp.Settings().SetTheme(ui.NewBarTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetFixedSize(true)
	myWindow.SetPadded(false)

	// Initialize services
	settings := config.NewSettings(myApp)
	for _, dir := range []string{settings.GetIconDirectory(), settings.GetScriptsDirectory()} {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("Warning: failed to ensure %s: %v", dir, err)
		}
	}

	icons := catalog.LoadOrDefault(settings.GetCatalogPath())
	executor := command.NewExecutor(settings.GetCommandRateLimit(), command.DefaultBurst)

	clock := provider.NewClockSource(settings.GetDateFormat())
	workspace := provider.NewWorkspaceSource(icons)

	telemetry := provider.NewService()
	for _, src := range []provider.Source{
		provider.NewBatterySource(""),
		provider.NewNetworkSource(),
		provider.NewCPUSource(),
		provider.NewKeyboardSource(),
		clock,
		workspace,
	} {
		telemetry.Register(src, settings.GetInterval(src.Kind()))
	}

	// Create and setup UI
	bar := ui.NewBar(myWindow, settings, icons, executor)
	executor.SetUpdateCallback(bar.OnRunUpdate)
	telemetry.SetUpdateCallback(bar.OnTelemetry)
	bar.SetOnCatalogChanged(func(c *catalog.Catalog) {
		workspace.SetIcons(c)
	})
	bar.SetOnSettingsApplied(func() {
		clock.SetLayout(settings.GetDateFormat())
		executor.SetRateLimit(settings.GetCommandRateLimit())
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp.Lifecycle().SetOnStarted(func() {
		telemetry.Start(ctx)
	})
	myApp.Lifecycle().SetOnStopped(func() {
		telemetry.Stop()
	})

	myWindow.SetMaster()
	myWindow.CenterOnScreen()
	myWindow.Resize(fyne.NewSize(ui.BarMinWidth, ui.BarHeight))

	// Show and run
	myWindow.ShowAndRun()
}
