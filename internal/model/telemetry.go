package model

import (
	"time"
)

// Battery represents a battery provider reading
type Battery struct {
	ChargePercent *float64     // 0 to 100
	State         BatteryState // empty if unknown
	TimeTillFull  *int64       // milliseconds, only while charging
	TimeTillEmpty *int64       // milliseconds, only while discharging
}

// NetInterface describes the default network interface
type NetInterface struct {
	Name string
	Type InterfaceType
}

// Gateway describes the default gateway. A nil gateway means no route out.
type Gateway struct {
	SSID           string
	SignalStrength *float64 // 0 to 100, wifi only
}

// Traffic holds transfer rates in bytes per second
type Traffic struct {
	Received    uint64
	Transmitted uint64
}

// Network represents a network provider reading
type Network struct {
	Interface *NetInterface
	Gateway   *Gateway
	Traffic   *Traffic
}

// InterfaceType returns the default interface type, or unknown when absent
func (n *Network) InterfaceType() InterfaceType {
	if n == nil || n.Interface == nil {
		return InterfaceTypeUnknown
	}
	return n.Interface.Type
}

// SignalStrength returns the gateway signal strength, nil when absent
func (n *Network) SignalStrength() *float64 {
	if n == nil || n.Gateway == nil {
		return nil
	}
	return n.Gateway.SignalStrength
}

// HasGateway returns true if a default gateway is present
func (n *Network) HasGateway() bool {
	return n != nil && n.Gateway != nil
}

// CPU represents a cpu provider reading
type CPU struct {
	Usage *float64 // 0 to 100
}

// Keyboard represents a keyboard provider reading
type Keyboard struct {
	Layout *string // locale tag such as "en-US"
}

// Date represents a clock provider reading
type Date struct {
	Now       time.Time
	Formatted string
}

// Float returns a present float reading
func Float(v float64) *float64 {
	return &v
}

// Int64 returns a present integer reading
func Int64(v int64) *int64 {
	return &v
}

// String returns a present string reading
func String(v string) *string {
	return &v
}
