// Package scheduler drives the outbox dispatcher: it ticks on a fixed
// interval and hands each tick to the bridge service's batch processor.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// BatchProcessor is the tick target. One call delivers one batch of
// pending outbox items.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context) error
}

// Scheduler is the dispatcher control surface exposed over the API.
// Start/Stop are synchronous; IsRunning reports whether ticks are
// currently being accepted.
type Scheduler interface {
	Start() error
	Stop() error
	IsRunning() bool
}

// DefaultInterval between dispatch cycles. Short on purpose: the
// dashboard expects sends to leave within a few seconds.
const DefaultInterval = 5 * time.Second

// DefaultBatchTimeout bounds one whole batch before its context is
// cancelled.
const DefaultBatchTimeout = 30 * time.Second

// controlTimeout is how long Start/Stop wait for the control loop to
// pick up a command, so callers never hang on a dead loop.
const controlTimeout = 2 * time.Second

type controlOp int

const (
	opStart controlOp = iota
	opStop
	opStatus
)

type controlMsg struct {
	op   controlOp
	resp chan bool
}

// scheduler owns the control loop. All mutable state lives inside the
// loop goroutine, so there are no locks.
type scheduler struct {
	processor    BatchProcessor
	interval     time.Duration
	batchTimeout time.Duration
	ctrl         chan controlMsg
}

// New creates a dispatcher scheduler around the given processor.
// Non-positive durations fall back to the defaults. The control loop
// starts immediately in idle state and lives for the process lifetime;
// ticks are only processed after Start.
func New(processor BatchProcessor, interval, batchTimeout time.Duration) Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	s := &scheduler{
		processor:    processor,
		interval:     interval,
		batchTimeout: batchTimeout,
		ctrl:         make(chan controlMsg),
	}

	go s.loop()

	return s
}

// Start switches the scheduler into running mode. It blocks until the
// loop acknowledges, or errors when the loop does not respond.
func (s *scheduler) Start() error {
	return s.send(opStart, "Start")
}

// Stop switches the scheduler back to idle. If a batch is mid-flight
// the acknowledgement is deferred until that batch finishes, bounded by
// the batch timeout.
func (s *scheduler) Stop() error {
	return s.send(opStop, "Stop")
}

func (s *scheduler) send(op controlOp, name string) error {
	resp := make(chan bool)

	select {
	case s.ctrl <- controlMsg{op: op, resp: resp}:
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Dispatcher] %s: control loop not responding", name)
	}

	select {
	case <-resp:
		return nil
	case <-time.After(controlTimeout + DefaultBatchTimeout):
		return fmt.Errorf("[Dispatcher] %s: acknowledgement timeout", name)
	}
}

// IsRunning reports running mode, not whether a batch is executing
// right now.
func (s *scheduler) IsRunning() bool {
	resp := make(chan bool)
	s.ctrl <- controlMsg{op: opStatus, resp: resp}
	return <-resp
}

func (s *scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	running := false
	inBatch := false

	// Completed once the in-flight batch finishes, when Stop arrived
	// mid-batch.
	var pendingStop chan bool

	for {
		select {
		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					log.Printf("[Dispatcher] Started (interval=%s, batchTimeout=%s)", s.interval, s.batchTimeout)
				}
				running = true
				msg.resp <- true

			case opStop:
				if !running && !inBatch {
					log.Println("[Dispatcher] Stop requested, already idle")
					msg.resp <- true
					continue
				}

				running = false

				if inBatch {
					log.Println("[Dispatcher] Stop requested, waiting for current batch")
					pendingStop = msg.resp
				} else {
					log.Println("[Dispatcher] Stopped")
					msg.resp <- true
				}

			case opStatus:
				msg.resp <- running
			}

		case <-ticker.C:
			if !running || inBatch {
				continue
			}

			inBatch = true

			ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
			err := s.processor.ProcessBatch(ctx)
			cancel()

			if err != nil {
				log.Printf("[Dispatcher] Batch failed: %v", err)
			}

			inBatch = false

			if pendingStop != nil {
				pendingStop <- true
				pendingStop = nil
				log.Println("[Dispatcher] Stopped")
			}
		}
	}
}
