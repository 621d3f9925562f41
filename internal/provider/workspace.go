package provider

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/ytget/topbar/internal/derive"
	"github.com/ytget/topbar/internal/model"
)

// Workspace defaults
const (
	DefaultWorkspaceName = "1"
	MaxApps              = 16
)

// ProcessInfo is the part of a running process the workspace source needs
type ProcessInfo struct {
	PID  int32
	Name string
}

// WorkspaceSource lists running applications the icon catalog knows about,
// one window per application. The process id stands in for the window
// handle.
type WorkspaceSource struct {
	mu        sync.RWMutex
	icons     derive.IconLookup
	processes func(ctx context.Context) ([]ProcessInfo, error)
}

// NewWorkspaceSource creates a workspace source filtered by icons
func NewWorkspaceSource(icons derive.IconLookup) *WorkspaceSource {
	return &WorkspaceSource{icons: icons, processes: listProcesses}
}

// SetIcons swaps the catalog used for filtering
func (w *WorkspaceSource) SetIcons(icons derive.IconLookup) {
	w.mu.Lock()
	w.icons = icons
	w.mu.Unlock()
}

// Kind implements Source
func (w *WorkspaceSource) Kind() Kind {
	return KindWorkspace
}

// Sample implements Source
func (w *WorkspaceSource) Sample(ctx context.Context) (any, error) {
	procs, err := w.processes(ctx)
	if err != nil {
		return model.NewWorkspace(DefaultWorkspaceName), fmt.Errorf("failed to list processes: %w", err)
	}

	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })

	w.mu.RLock()
	icons := w.icons
	w.mu.RUnlock()

	ws := model.NewWorkspace(DefaultWorkspaceName)
	seen := make(map[string]bool)
	for _, p := range procs {
		key := derive.Normalize(p.Name)
		if key == "" || seen[key] {
			continue
		}
		if icons == nil {
			continue
		}
		if _, ok := icons.Lookup(key); !ok {
			continue
		}
		seen[key] = true
		ws.AddWindow(&model.Window{
			Handle:      strconv.Itoa(int(p.PID)),
			ProcessName: p.Name,
			Title:       p.Name,
		})
		if ws.Len() >= MaxApps {
			break
		}
	}
	return ws, nil
}

// listProcesses collects process names using gopsutil
func listProcesses(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		infos = append(infos, ProcessInfo{PID: p.Pid, Name: name})
	}
	return infos, nil
}
