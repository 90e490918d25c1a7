package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingProcessor struct {
	calls atomic.Int32
	delay time.Duration
}

func (p *countingProcessor) ProcessBatch(ctx context.Context) error {
	p.calls.Add(1)
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	p := &countingProcessor{}
	s := New(p, 10*time.Millisecond, time.Second)

	if s.IsRunning() {
		t.Fatalf("scheduler must start idle")
	}
	if p.calls.Load() != 0 {
		t.Fatalf("idle scheduler fired %d batches", p.calls.Load())
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("IsRunning() = false after Start")
	}

	deadline := time.After(2 * time.Second)
	for p.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("scheduler never ticked, calls = %d", p.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if s.IsRunning() {
		t.Fatalf("IsRunning() = true after Stop")
	}

	n := p.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if p.calls.Load() != n {
		t.Fatalf("ticks continued after Stop: %d -> %d", n, p.calls.Load())
	}
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	s := New(&countingProcessor{}, 10*time.Millisecond, time.Second)

	if err := s.Start(); err != nil {
		t.Fatalf("first Start() error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("second Start() error: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("double Start left scheduler idle")
	}
}

func TestScheduler_StopWaitsForBatch(t *testing.T) {
	t.Parallel()

	p := &countingProcessor{delay: 80 * time.Millisecond}
	s := New(p, 10*time.Millisecond, time.Second)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// Let a batch begin before asking for Stop.
	for p.calls.Load() == 0 {
		time.Sleep(5 * time.Millisecond)
	}

	begin := time.Now()
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	// Stop either caught the loop between batches or had to wait for
	// the running one; it must never return while a batch is active.
	if s.IsRunning() {
		t.Fatalf("scheduler still running after Stop (waited %s)", time.Since(begin))
	}
}

func TestScheduler_StopWhenIdle(t *testing.T) {
	t.Parallel()

	s := New(&countingProcessor{}, time.Hour, time.Second)

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() on idle scheduler: %v", err)
	}
}
