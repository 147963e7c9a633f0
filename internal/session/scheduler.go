package session

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs f once after d unless the returned cancel func is called
// first. Callbacks must run on the goroutine that drives the Session.
type Scheduler interface {
	Schedule(d time.Duration, f func()) (cancel func())
}

// QueueScheduler delivers due callbacks on a channel so the host can run
// them from its own loop:
//
//	for f := range sched.C() {
//		f()
//	}
type QueueScheduler struct {
	ch chan func()
}

// NewQueueScheduler returns a QueueScheduler with a buffered delivery channel.
func NewQueueScheduler(buffer int) *QueueScheduler {
	return &QueueScheduler{ch: make(chan func(), buffer)}
}

// C returns the channel due callbacks are sent on.
func (q *QueueScheduler) C() <-chan func() {
	return q.ch
}

// Schedule arms a timer that queues f when it fires. A callback cancelled
// after it was queued does not run.
func (q *QueueScheduler) Schedule(d time.Duration, f func()) func() {
	var (
		mu        sync.Mutex
		cancelled bool
	)
	guarded := func() {
		mu.Lock()
		skip := cancelled
		mu.Unlock()
		if !skip {
			f()
		}
	}
	t := time.AfterFunc(d, func() { q.ch <- guarded })
	return func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		t.Stop()
	}
}

// ManualScheduler is a Scheduler with an explicit clock. Nothing fires until
// Advance moves the clock past a callback's deadline.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule registers f to run once the clock reaches now+d.
func (m *ManualScheduler) Schedule(d time.Duration, f func()) func() {
	m.seq++
	t := &manualTimer{at: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return func() { m.remove(t) }
}

func (m *ManualScheduler) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d and runs every callback that became
// due, earliest first. Callbacks scheduled while advancing run too if they
// fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.remove(next)
		m.now = next.at
		next.f()
	}
	m.now = target
}

func (m *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	if m.pending[0].at > limit {
		return nil
	}
	return m.pending[0]
}

// Pending returns the number of callbacks waiting to fire.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Now returns the scheduler's clock.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}
