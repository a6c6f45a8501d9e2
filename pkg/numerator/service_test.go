package numerator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the sys_sequences UPSERT: every call advances
// the counter by the increment passed in args (1 for strict).
type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64
	calls        int
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	var increment int64 = 1
	if len(args) == 2 {
		if val, ok := args[1].(int64); ok {
			increment = val
		}
	}

	m.currentValue += increment
	m.calls++

	return &mockRow{val: m.currentValue}
}

var testPeriod = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestGetNextNumber_Strict(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("MS")

	num, err := svc.GetNextNumber(ctx, cfg, nil, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "MS-2025-00001" {
		t.Errorf("expected MS-2025-00001, got %s", num)
	}

	num, err = svc.GetNextNumber(ctx, cfg, nil, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "MS-2025-00002" {
		t.Errorf("expected MS-2025-00002, got %s", num)
	}

	if q.calls != 2 {
		t.Errorf("strict strategy should hit the DB every call, got %d calls", q.calls)
	}
}

func TestGetNextNumber_Cached(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("EX")
	opts := &Options{Strategy: StrategyCached, RangeSize: 10}

	for i := 1; i <= 15; i++ {
		num, err := svc.GetNextNumber(ctx, cfg, opts, testPeriod)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		want := fmt.Sprintf("EX-2025-%05d", i)
		if num != want {
			t.Errorf("call %d: expected %s, got %s", i, want, num)
		}
	}

	// 15 numbers from a range of 10 means exactly two refills
	if q.calls != 2 {
		t.Errorf("expected 2 range reservations, got %d", q.calls)
	}
}

func TestGetNextNumber_NoYear(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)

	cfg := Config{Prefix: "CT", IncludeYear: false, PadWidth: 3, ResetPeriod: "never"}
	num, err := svc.GetNextNumber(context.Background(), cfg, nil, testPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "CT-001" {
		t.Errorf("expected CT-001, got %s", num)
	}
}

func TestGetNextNumber_NilService(t *testing.T) {
	var svc *Service
	_, err := svc.GetNextNumber(context.Background(), DefaultConfig("MS"), nil, testPeriod)
	if err == nil {
		t.Fatal("expected error from nil service")
	}
}
