package provider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	kind  Kind
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSource) Kind() Kind {
	return f.kind
}

func (f *fakeSource) Sample(ctx context.Context) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.calls, f.err
}

func TestService_SampleAll(t *testing.T) {
	s := NewService()
	s.Register(&fakeSource{kind: KindCPU}, time.Second)
	s.Register(&fakeSource{kind: KindClock, err: errors.New("boom")}, time.Second)

	readings := s.SampleAll(context.Background())
	if len(readings) != 2 {
		t.Fatalf("SampleAll() returned %d readings, expected 2", len(readings))
	}
	if readings[KindCPU] != 1 {
		t.Errorf("readings[cpu] = %v, expected 1", readings[KindCPU])
	}
	// failing sources still publish their absent reading
	if readings[KindClock] != 1 {
		t.Errorf("readings[clock] = %v, expected 1", readings[KindClock])
	}
}

func TestService_StartPublishesImmediately(t *testing.T) {
	s := NewService()
	s.Register(&fakeSource{kind: KindBattery}, time.Hour)

	got := make(chan any, 4)
	s.SetUpdateCallback(func(kind Kind, value any) {
		if kind == KindBattery {
			got <- value
		}
	})

	s.Start(context.Background())
	defer s.Stop()

	select {
	case v := <-got:
		if v != 1 {
			t.Errorf("first reading = %v, expected 1", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reading published on start")
	}
}

func TestService_PollsOnInterval(t *testing.T) {
	src := &fakeSource{kind: KindCPU}
	s := NewService()
	s.Register(src, MinInterval)

	got := make(chan any, 16)
	s.SetUpdateCallback(func(kind Kind, value any) { got <- value })

	s.Start(context.Background())
	for i := 1; i <= 3; i++ {
		select {
		case v := <-got:
			if v != i {
				t.Errorf("reading %d = %v", i, v)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for reading %d", i)
		}
	}
	s.Stop()

	src.mu.Lock()
	calls := src.calls
	src.mu.Unlock()
	time.Sleep(3 * MinInterval)
	src.mu.Lock()
	defer src.mu.Unlock()
	if src.calls != calls {
		t.Errorf("source sampled after Stop(): %d calls, expected %d", src.calls, calls)
	}
}

func TestService_StartTwiceAndStopIdle(t *testing.T) {
	s := NewService()
	s.Stop()

	src := &fakeSource{kind: KindCPU}
	s.Register(src, time.Hour)
	s.Start(context.Background())
	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	src.mu.Lock()
	defer src.mu.Unlock()
	if src.calls != 1 {
		t.Errorf("calls = %d, expected 1 from a single poller", src.calls)
	}
}

func TestService_RegisterClampsInterval(t *testing.T) {
	s := NewService()
	s.Register(&fakeSource{kind: KindCPU}, 0)
	if s.sources[0].interval != MinInterval {
		t.Errorf("interval = %v, expected %v", s.sources[0].interval, MinInterval)
	}
}
