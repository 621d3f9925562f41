package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ytget/topbar/internal/model"
)

// DefaultPowerSupplyDir is where Linux exposes batteries
const DefaultPowerSupplyDir = "/sys/class/power_supply"

// sysfs status values
const (
	sysfsStatusCharging    = "Charging"
	sysfsStatusDischarging = "Discharging"
	sysfsStatusFull        = "Full"
	sysfsStatusNotCharging = "Not charging"
)

const millisPerHour = 3_600_000

// BatterySource reads the first battery below a power_supply directory
type BatterySource struct {
	dir string
}

// NewBatterySource creates a battery source reading dir, or the default
// sysfs location when dir is empty
func NewBatterySource(dir string) *BatterySource {
	if dir == "" {
		dir = DefaultPowerSupplyDir
	}
	return &BatterySource{dir: dir}
}

// Kind implements Source
func (b *BatterySource) Kind() Kind {
	return KindBattery
}

// Sample implements Source. A machine without a battery reports an absent
// reading and no error.
func (b *BatterySource) Sample(ctx context.Context) (any, error) {
	supply, err := b.findBattery()
	if err != nil {
		return &model.Battery{}, err
	}
	if supply == "" {
		return &model.Battery{}, nil
	}
	return readBattery(supply), nil
}

// findBattery returns the first supply whose type is Battery
func (b *BatterySource) findBattery() (string, error) {
	entries, err := os.ReadDir(b.dir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", b.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		supply := filepath.Join(b.dir, name)
		if readString(supply, "type") == "Battery" {
			return supply, nil
		}
	}
	return "", nil
}

// readBattery builds a reading from one supply directory. Missing files
// leave the matching field absent.
func readBattery(supply string) *model.Battery {
	battery := &model.Battery{}

	if capacity, ok := readFloat(supply, "capacity"); ok {
		battery.ChargePercent = model.Float(clampPercent(capacity))
	}

	switch readString(supply, "status") {
	case sysfsStatusCharging:
		battery.State = model.BatteryStateCharging
	case sysfsStatusDischarging:
		battery.State = model.BatteryStateDischarging
	case sysfsStatusFull, sysfsStatusNotCharging:
		battery.State = model.BatteryStateFull
	}

	now, full, rate, ok := readEnergy(supply)
	if !ok || rate <= 0 {
		return battery
	}
	switch battery.State {
	case model.BatteryStateCharging:
		if full > now {
			battery.TimeTillFull = model.Int64(int64((full - now) / rate * millisPerHour))
		}
	case model.BatteryStateDischarging:
		battery.TimeTillEmpty = model.Int64(int64(now / rate * millisPerHour))
	}
	return battery
}

// readEnergy returns the current and full energy and the draw, either as
// energy/power or charge/current pairs
func readEnergy(supply string) (now, full, rate float64, ok bool) {
	pairs := [][3]string{
		{"energy_now", "energy_full", "power_now"},
		{"charge_now", "charge_full", "current_now"},
	}
	for _, p := range pairs {
		n, okNow := readFloat(supply, p[0])
		f, okFull := readFloat(supply, p[1])
		r, okRate := readFloat(supply, p[2])
		if okNow && okFull && okRate {
			if r < 0 {
				r = -r
			}
			return n, f, r, true
		}
	}
	return 0, 0, 0, false
}

func readString(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readFloat(dir, name string) (float64, bool) {
	s := readString(dir, name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
