package provider

import "context"

// Kind identifies a telemetry source
type Kind string

const (
	KindBattery   Kind = "battery"
	KindNetwork   Kind = "network"
	KindCPU       Kind = "cpu"
	KindKeyboard  Kind = "keyboard"
	KindClock     Kind = "clock"
	KindWorkspace Kind = "workspace"
)

// Source produces one reading per call. On failure it returns an absent
// reading of its type together with the error.
type Source interface {
	Kind() Kind
	Sample(ctx context.Context) (any, error)
}
