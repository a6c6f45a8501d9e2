package numerator

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Mock generates predictable sequential numbers for tests.
type Mock struct {
	mu       sync.Mutex
	counters map[string]int64
}

var _ Generator = (*Mock)(nil)

// NewMock creates a mock generator.
func NewMock() *Mock {
	return &Mock{counters: make(map[string]int64)}
}

// GetNextNumber implements Generator with in-memory counters.
func (m *Mock) GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s_%d", cfg.Prefix, period.Year())
	m.counters[key]++

	pad := cfg.PadWidth
	if pad <= 0 {
		pad = 5
	}
	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%d-%0*d", cfg.Prefix, period.Year(), pad, m.counters[key]), nil
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, pad, m.counters[key]), nil
}
