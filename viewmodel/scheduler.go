package viewmodel

import (
	"context"
	"time"
)

// Timer is a scheduled task that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// loadToken scopes cancellation to one load attempt. Starting a new attempt
// cancels the previous one and makes its result stale. Callers hold their own lock.
type loadToken struct {
	id     uint64
	cancel context.CancelFunc
}

func (t *loadToken) begin(parent context.Context) (context.Context, uint64) {
	t.stop()
	ctx, cancel := context.WithCancel(parent)
	t.id++
	t.cancel = cancel
	return ctx, t.id
}

func (t *loadToken) current(id uint64) bool {
	return id == t.id
}

func (t *loadToken) finish(id uint64) {
	if id == t.id && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *loadToken) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
