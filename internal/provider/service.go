package provider

import (
	"context"
	"log"
	"sync"
	"time"
)

// MinInterval is the shortest polling interval accepted
const MinInterval = 100 * time.Millisecond

type registration struct {
	source   Source
	interval time.Duration
	lastErr  string
}

// Service polls registered sources and publishes their readings
type Service struct {
	sources  []*registration
	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	running  bool
	onUpdate func(Kind, any) // callback for UI updates
}

// NewService creates a service with no sources
func NewService() *Service {
	return &Service{}
}

// Register adds a source polled every interval. Sources registered after
// Start are picked up on the next Start.
func (s *Service) Register(src Source, interval time.Duration) {
	if interval < MinInterval {
		interval = MinInterval
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append(s.sources, &registration{source: src, interval: interval})
}

// SetUpdateCallback sets the callback receiving every reading. It is called
// from polling goroutines.
func (s *Service) SetUpdateCallback(callback func(Kind, any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Start begins polling. Each source is sampled immediately and then on its
// own ticker until ctx is done or Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return // Already running
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	sources := append([]*registration(nil), s.sources...)
	s.mu.Unlock()

	for _, reg := range sources {
		s.wg.Add(1)
		go s.poll(ctx, reg)
	}
	log.Printf("Telemetry polling started (%d sources)", len(sources))
}

// Stop cancels polling and waits for the pollers to exit
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	log.Println("Telemetry polling stopped")
}

// SampleAll samples every source once, synchronously
func (s *Service) SampleAll(ctx context.Context) map[Kind]any {
	s.mu.Lock()
	sources := append([]*registration(nil), s.sources...)
	s.mu.Unlock()

	readings := make(map[Kind]any, len(sources))
	for _, reg := range sources {
		readings[reg.source.Kind()] = s.sample(ctx, reg)
	}
	return readings
}

func (s *Service) poll(ctx context.Context, reg *registration) {
	defer s.wg.Done()

	ticker := time.NewTicker(reg.interval)
	defer ticker.Stop()

	for {
		value := s.sample(ctx, reg)
		if ctx.Err() != nil {
			return
		}
		s.notifyUpdate(reg.source.Kind(), value)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// sample reads a source, logging an error once until it changes
func (s *Service) sample(ctx context.Context, reg *registration) any {
	value, err := reg.source.Sample(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if msg := err.Error(); msg != reg.lastErr {
			log.Printf("Warning: %s telemetry unavailable: %v", reg.source.Kind(), err)
			reg.lastErr = msg
		}
	} else {
		reg.lastErr = ""
	}
	return value
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(kind Kind, value any) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(kind, value)
	}
}
