package provider

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/ytget/topbar/internal/model"
)

// CPUSource reports total cpu usage since the previous sample
type CPUSource struct {
	percent func(ctx context.Context) ([]float64, error)
}

// NewCPUSource creates a cpu source backed by gopsutil
func NewCPUSource() *CPUSource {
	return &CPUSource{
		percent: func(ctx context.Context) ([]float64, error) {
			return cpu.PercentWithContext(ctx, 0, false)
		},
	}
}

// Kind implements Source
func (c *CPUSource) Kind() Kind {
	return KindCPU
}

// Sample implements Source
func (c *CPUSource) Sample(ctx context.Context) (any, error) {
	percentage, err := c.percent(ctx)
	if err != nil {
		return &model.CPU{}, fmt.Errorf("failed to get cpu usage: %w", err)
	}
	if len(percentage) == 0 {
		return &model.CPU{}, fmt.Errorf("no cpu usage reported")
	}
	return &model.CPU{Usage: model.Float(percentage[0])}, nil
}
