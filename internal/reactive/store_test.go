package reactive

import (
	"testing"
)

const (
	keyCPU     Key = "cpu"
	keyBattery Key = "battery"
	keyClock   Key = "clock"
)

func TestStore_SetVersions(t *testing.T) {
	s := NewStore()

	if v := s.Version(keyCPU); v != 0 {
		t.Errorf("Version() = %d, expected 0 for an unset key", v)
	}

	s.Set(keyCPU, 10.0)
	s.Set(keyCPU, 10.0)
	if v := s.Version(keyCPU); v != 1 {
		t.Errorf("Version() = %d, expected 1 after an identical set", v)
	}

	s.Set(keyCPU, 11.0)
	if v := s.Version(keyCPU); v != 2 {
		t.Errorf("Version() = %d, expected 2", v)
	}
	if got := s.Value(keyCPU); got != 11.0 {
		t.Errorf("Value() = %v, expected 11", got)
	}
}

func TestStore_SetDeepEqual(t *testing.T) {
	type reading struct{ Usage *float64 }
	a, b := 5.0, 5.0

	s := NewStore()
	s.Set(keyCPU, &reading{Usage: &a})
	s.Set(keyCPU, &reading{Usage: &b})
	if v := s.Version(keyCPU); v != 1 {
		t.Errorf("Version() = %d, expected deeply equal pointers to keep version 1", v)
	}
}

func TestMemo_RecomputesOnlyOnChange(t *testing.T) {
	s := NewStore()
	s.Set(keyCPU, 10)

	m := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyCPU)
		return v * 2
	}, keyCPU)

	for i := 0; i < 3; i++ {
		if got := m.Get(); got != 20 {
			t.Errorf("Get() = %d, expected 20", got)
		}
	}
	if runs := m.Computations(); runs != 1 {
		t.Errorf("Computations() = %d, expected 1", runs)
	}

	s.Set(keyCPU, 10)
	m.Get()
	if runs := m.Computations(); runs != 1 {
		t.Errorf("Computations() = %d after identical set, expected 1", runs)
	}

	s.Set(keyCPU, 21)
	if got := m.Get(); got != 42 {
		t.Errorf("Get() = %d, expected 42", got)
	}
	if runs := m.Computations(); runs != 2 {
		t.Errorf("Computations() = %d, expected 2", runs)
	}
}

func TestMemo_IgnoresUnrelatedSources(t *testing.T) {
	s := NewStore()
	m := NewMemo(s, func(snap Snapshot) string {
		v, _ := Lookup[string](snap, keyClock)
		return v
	}, keyClock)

	m.Get()
	s.Set(keyBattery, 50)
	s.Set(keyCPU, 12)
	m.Get()
	if runs := m.Computations(); runs != 1 {
		t.Errorf("Computations() = %d, expected 1", runs)
	}
}

func TestSnapshot_HidesUndeclaredKeys(t *testing.T) {
	s := NewStore()
	s.Set(keyBattery, 50)
	s.Set(keyCPU, 12)

	m := NewMemo(s, func(snap Snapshot) any {
		return snap.Value(keyBattery)
	}, keyCPU)

	if got := m.Get(); got != nil {
		t.Errorf("Get() = %v, expected nil for an undeclared source", got)
	}
}

func TestStore_FlushNotifiesChangedMemos(t *testing.T) {
	s := NewStore()
	cpu := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyCPU)
		return v
	}, keyCPU)
	battery := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyBattery)
		return v
	}, keyBattery)

	var cpuSeen, batterySeen []int
	cpu.OnChange(func(v int) { cpuSeen = append(cpuSeen, v) })
	battery.OnChange(func(v int) { batterySeen = append(batterySeen, v) })

	s.Flush()
	if len(cpuSeen) != 1 || len(batterySeen) != 1 {
		t.Fatalf("first flush should publish every memo, got cpu=%v battery=%v", cpuSeen, batterySeen)
	}

	s.Update(keyCPU, 30)
	if len(cpuSeen) != 2 || cpuSeen[1] != 30 {
		t.Errorf("cpu listener saw %v, expected [0 30]", cpuSeen)
	}
	if len(batterySeen) != 1 {
		t.Errorf("battery listener saw %v, expected no new value", batterySeen)
	}

	s.Flush()
	if len(cpuSeen) != 2 {
		t.Errorf("idle flush notified cpu listener: %v", cpuSeen)
	}
}

func TestStore_FlushPublishesPulledValue(t *testing.T) {
	s := NewStore()
	m := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyCPU)
		return v
	}, keyCPU)

	var seen []int
	m.OnChange(func(v int) { seen = append(seen, v) })

	s.Set(keyCPU, 7)
	if got := m.Get(); got != 7 {
		t.Fatalf("Get() = %d, expected 7", got)
	}
	s.Flush()
	if len(seen) != 1 || seen[0] != 7 {
		t.Errorf("listener saw %v, expected [7]", seen)
	}
	if runs := m.Computations(); runs != 1 {
		t.Errorf("Computations() = %d, expected 1", runs)
	}
}

func TestStore_SetDuringFlushIsQueued(t *testing.T) {
	s := NewStore()
	var during []int

	m := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyCPU)
		return v
	}, keyCPU)
	m.OnChange(func(v int) {
		during = append(during, v)
		if v < 3 {
			s.Set(keyCPU, v+1)
			if got := s.Value(keyCPU); got != v {
				t.Errorf("Set() during flush applied immediately: %v", got)
			}
		}
	})

	s.Update(keyCPU, 1)
	if len(during) != 3 || during[0] != 1 || during[2] != 3 {
		t.Errorf("listener saw %v, expected [1 2 3]", during)
	}
	if got := s.Value(keyCPU); got != 3 {
		t.Errorf("Value() = %v, expected 3", got)
	}
}

func TestStore_FlushSettlesRunaway(t *testing.T) {
	s := NewStore()
	m := NewMemo(s, func(snap Snapshot) int {
		v, _ := Lookup[int](snap, keyCPU)
		return v
	}, keyCPU)
	m.OnChange(func(v int) { s.Set(keyCPU, v+1) })

	s.Update(keyCPU, 0)
	if runs := m.Computations(); runs != maxFlushPasses {
		t.Errorf("Computations() = %d, expected %d", runs, maxFlushPasses)
	}
}
