package provider

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/ytget/topbar/internal/model"
)

// Linux procfs tables
const (
	DefaultRouteFile    = "/proc/net/route"
	DefaultWirelessFile = "/proc/net/wireless"
)

// maxLinkQuality is the usual upper bound of the wireless link quality
const maxLinkQuality = 70.0

// Interface flags as reported by gopsutil
const (
	flagUp       = "up"
	flagLoopback = "loopback"
)

var (
	wifiPrefixes     = []string{"wl", "wifi", "wi-fi", "wireless", "ath"}
	ethernetPrefixes = []string{"en", "eth", "em"}
)

// NetworkSource reports the default interface, its gateway and transfer
// rates
type NetworkSource struct {
	interfaces   func(ctx context.Context) (net.InterfaceStatList, error)
	counters     func(ctx context.Context) ([]net.IOCountersStat, error)
	routeFile    string
	wirelessFile string
	now          func() time.Time

	mu     sync.Mutex
	last   map[string]net.IOCountersStat
	lastAt time.Time
}

// NewNetworkSource creates a network source backed by gopsutil and procfs
func NewNetworkSource() *NetworkSource {
	return &NetworkSource{
		interfaces: net.InterfacesWithContext,
		counters: func(ctx context.Context) ([]net.IOCountersStat, error) {
			return net.IOCountersWithContext(ctx, true)
		},
		routeFile:    DefaultRouteFile,
		wirelessFile: DefaultWirelessFile,
		now:          time.Now,
	}
}

// Kind implements Source
func (n *NetworkSource) Kind() Kind {
	return KindNetwork
}

// Sample implements Source
func (n *NetworkSource) Sample(ctx context.Context) (any, error) {
	ifaces, err := n.interfaces(ctx)
	if err != nil {
		return &model.Network{}, fmt.Errorf("failed to list interfaces: %w", err)
	}

	routeIface, routeKnown := readDefaultRoute(n.routeFile)
	chosen := chooseInterface(ifaces, routeIface)
	if chosen == nil {
		return &model.Network{}, nil
	}

	network := &model.Network{
		Interface: &model.NetInterface{Name: chosen.Name, Type: InterfaceType(chosen.Name)},
	}

	// without a route table an addressed interface is assumed routable
	if (routeKnown && routeIface == chosen.Name) || (!routeKnown && len(chosen.Addrs) > 0) {
		network.Gateway = &model.Gateway{}
		if network.Interface.Type.IsWireless() {
			network.Gateway.SignalStrength = readSignalStrength(n.wirelessFile, chosen.Name)
		}
	}

	traffic, err := n.traffic(ctx, chosen.Name)
	if err != nil {
		return network, err
	}
	network.Traffic = traffic
	return network, nil
}

// traffic returns rates since the previous sample, nil on the first one
func (n *NetworkSource) traffic(ctx context.Context, name string) (*model.Traffic, error) {
	counters, err := n.counters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network counters: %w", err)
	}

	now := n.now()
	current := make(map[string]net.IOCountersStat, len(counters))
	for _, c := range counters {
		current[c.Name] = c
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	prev, hadPrev := n.last[name]
	elapsed := now.Sub(n.lastAt).Seconds()
	n.last = current
	n.lastAt = now

	cur, ok := current[name]
	if !ok || !hadPrev || elapsed <= 0 {
		return nil, nil
	}
	return &model.Traffic{
		Received:    rate(prev.BytesRecv, cur.BytesRecv, elapsed),
		Transmitted: rate(prev.BytesSent, cur.BytesSent, elapsed),
	}, nil
}

// rate returns bytes per second, zero when a counter went backwards
func rate(prev, cur uint64, seconds float64) uint64 {
	if cur < prev {
		return 0
	}
	return uint64(float64(cur-prev) / seconds)
}

// InterfaceType guesses the link type from an interface name
func InterfaceType(name string) model.InterfaceType {
	lower := strings.ToLower(name)
	for _, p := range wifiPrefixes {
		if strings.HasPrefix(lower, p) {
			return model.InterfaceTypeWifi
		}
	}
	for _, p := range ethernetPrefixes {
		if strings.HasPrefix(lower, p) {
			return model.InterfaceTypeEthernet
		}
	}
	return model.InterfaceTypeOther
}

// chooseInterface prefers the default route interface, then the first
// interface that is up, not loopback and addressed
func chooseInterface(ifaces net.InterfaceStatList, routeIface string) *net.InterfaceStat {
	var fallback *net.InterfaceStat
	for i := range ifaces {
		iface := &ifaces[i]
		if !hasFlag(iface.Flags, flagUp) || hasFlag(iface.Flags, flagLoopback) {
			continue
		}
		if routeIface != "" && iface.Name == routeIface {
			return iface
		}
		if fallback == nil && len(iface.Addrs) > 0 {
			fallback = iface
		}
	}
	return fallback
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// readDefaultRoute returns the interface of the default route. known is
// false when the route table cannot be read.
func readDefaultRoute(path string) (iface string, known bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()
	return parseDefaultRoute(f), true
}

// parseDefaultRoute scans a /proc/net/route table for the lowest-metric
// route with a zero destination and mask
func parseDefaultRoute(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	best, bestMetric := "", -1

	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue // header
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 8 {
			continue
		}
		if fields[1] != "00000000" || fields[7] != "00000000" {
			continue
		}
		metric, err := strconv.Atoi(fields[6])
		if err != nil {
			continue
		}
		if bestMetric < 0 || metric < bestMetric {
			best, bestMetric = fields[0], metric
		}
	}
	return best
}

func readSignalStrength(path, iface string) *float64 {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return parseSignalStrength(f, iface)
}

// parseSignalStrength reads the link quality of iface from a
// /proc/net/wireless table as a percentage
func parseSignalStrength(r io.Reader, iface string) *float64 {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, rest, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(name) != iface {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			return nil
		}
		link, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "."), 64)
		if err != nil {
			return nil
		}
		return model.Float(clampPercent(link / maxLinkQuality * 100))
	}
	return nil
}
