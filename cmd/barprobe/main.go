// Command barprobe samples every telemetry source once and prints the
// segments the bar would show, coloured by severity.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ytget/topbar/internal/catalog"
	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/platform"
	"github.com/ytget/topbar/internal/provider"
)

func main() {
	catalogPath := flag.String("catalog", platform.DefaultCatalogPath(), "icon catalog file")
	dateFormat := flag.String("date-format", provider.DefaultDateFormat, "clock layout")
	lower := flag.Bool("lower", false, "lowercase keyboard layout labels")
	fullClock := flag.Bool("full-clock", false, "show the full date instead of HH:MM")
	timeout := flag.Duration("timeout", 3*time.Second, "sampling timeout")
	flag.Parse()

	icons := catalog.LoadOrDefault(*catalogPath)

	policy := derive.DefaultPolicy()
	policy.CompactClock = !*fullClock
	if *lower {
		policy.LayoutCase = derive.LabelCaseLower
	}

	telemetry := provider.NewService()
	for _, src := range []provider.Source{
		provider.NewBatterySource(""),
		provider.NewNetworkSource(),
		provider.NewCPUSource(),
		provider.NewKeyboardSource(),
		provider.NewClockSource(*dateFormat),
		provider.NewWorkspaceSource(icons),
	} {
		telemetry.Register(src, provider.MinInterval)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	for _, r := range probeRows(telemetry.SampleAll(ctx), policy, icons) {
		fmt.Println(renderRow(r))
	}
}
