package jrt

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
)

// ---------------------------------------------------------------------------
// Monitor: reentrant lock + wait/notify, one per object
// ---------------------------------------------------------------------------

// Monitor implements intrinsic-lock semantics: a reentrant mutex plus a
// wait set. Its lifecycle is bound 1:1 to the owning object; it is
// created unlocked with no waiters at allocation time.
type Monitor struct {
	mu      sync.Mutex
	free    *sync.Cond // signaled when the monitor becomes unowned
	owner   int64      // goroutine id of the holder, 0 when unowned
	depth   uint32     // reentry count of the holder
	waiters []chan struct{}
}

func newMonitor() *Monitor {
	m := &Monitor{}
	m.free = sync.NewCond(&m.mu)
	return m
}

// Enter acquires the monitor, blocking until it is free. A thread that
// already holds the monitor re-enters without deadlock.
func (m *Monitor) Enter() {
	self := goid.Get()
	m.mu.Lock()
	if m.owner == self {
		m.depth++
		m.mu.Unlock()
		return
	}
	for m.owner != 0 {
		m.free.Wait()
	}
	m.owner = self
	m.depth = 1
	m.mu.Unlock()
}

// Exit releases one level of reentry. Releasing a monitor not held by
// the calling thread is a broken invariant and aborts the process.
func (m *Monitor) Exit() {
	self := goid.Get()
	m.mu.Lock()
	if m.owner != self {
		m.mu.Unlock()
		fatalf("Monitor exited by a thread that does not hold it. Aborting.")
	}
	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.free.Signal()
	}
	m.mu.Unlock()
}

// Wait releases the monitor fully, blocks until notified or until
// timeoutMillis elapses, then re-acquires at the prior reentry depth
// before returning. A zero timeout waits indefinitely. The deadline is
// fixed once on entry, so the wait length does not drift with later
// notifications or clock reads. A wake with no notification returns
// the same way a timeout does; callers loop on their guard condition.
func (m *Monitor) Wait(timeoutMillis uint64) {
	self := goid.Get()
	var deadline time.Time
	if timeoutMillis > 0 {
		deadline = time.Now().Add(time.Duration(timeoutMillis) * time.Millisecond)
	}

	m.mu.Lock()
	if m.owner != self {
		m.mu.Unlock()
		fatalf("Monitor waited on by a thread that does not hold it. Aborting.")
	}
	depth := m.depth
	wake := make(chan struct{}, 1)
	m.waiters = append(m.waiters, wake)
	m.owner = 0
	m.depth = 0
	m.free.Signal()
	m.mu.Unlock()

	if deadline.IsZero() {
		<-wake
	} else {
		timer := time.NewTimer(time.Until(deadline))
		select {
		case <-wake:
			timer.Stop()
		case <-timer.C:
		}
	}

	m.mu.Lock()
	m.removeWaiter(wake)
	for m.owner != 0 {
		m.free.Wait()
	}
	m.owner = self
	m.depth = depth
	m.mu.Unlock()
}

// removeWaiter drops a wake channel that timed out before a
// notification claimed it. Caller holds m.mu.
func (m *Monitor) removeWaiter(wake chan struct{}) {
	for i, w := range m.waiters {
		if w == wake {
			m.waiters = append(m.waiters[:i], m.waiters[i+1:]...)
			return
		}
	}
}

// NotifyOne wakes at most one waiter. Which waiter wakes is up to the
// platform; no fairness order is promised.
func (m *Monitor) NotifyOne() {
	m.mu.Lock()
	if len(m.waiters) > 0 {
		w := m.waiters[0]
		m.waiters = m.waiters[1:]
		w <- struct{}{}
	}
	m.mu.Unlock()
}

// NotifyAll wakes every current waiter. Each must still re-acquire the
// monitor before its Wait returns.
func (m *Monitor) NotifyAll() {
	m.mu.Lock()
	for _, w := range m.waiters {
		w <- struct{}{}
	}
	m.waiters = nil
	m.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Monitor registry
// ---------------------------------------------------------------------------

// Object headers store monitor handles rather than pointers; the
// registry resolves them. Entries are never removed: monitor lifetime
// matches object lifetime, and objects are never reclaimed.

var monitorRegistry = make(map[uint64]*Monitor)
var monitorRegistryMu sync.RWMutex
var nextMonitorID atomic.Uint64

func registerMonitor(m *Monitor) uint64 {
	id := nextMonitorID.Add(1)

	monitorRegistryMu.Lock()
	monitorRegistry[id] = m
	monitorRegistryMu.Unlock()

	return id
}

func monitorByID(id uint64) *Monitor {
	monitorRegistryMu.RLock()
	defer monitorRegistryMu.RUnlock()
	return monitorRegistry[id]
}

// ---------------------------------------------------------------------------
// Compiled-code entry points
// ---------------------------------------------------------------------------

// MonitorEnter acquires the monitor embedded in ref's header.
func MonitorEnter(ref Ref) {
	monitorOf(ref).Enter()
}

// MonitorExit releases the monitor embedded in ref's header.
func MonitorExit(ref Ref) {
	monitorOf(ref).Exit()
}

// MonitorWait blocks on ref's monitor until notified or until
// timeoutMillis elapses; zero waits indefinitely.
func MonitorWait(ref Ref, timeoutMillis uint64) {
	monitorOf(ref).Wait(timeoutMillis)
}

// MonitorNotify wakes at most one thread waiting on ref's monitor.
func MonitorNotify(ref Ref) {
	monitorOf(ref).NotifyOne()
}

// MonitorNotifyAll wakes every thread waiting on ref's monitor.
func MonitorNotifyAll(ref Ref) {
	monitorOf(ref).NotifyAll()
}
