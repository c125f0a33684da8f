package jrt

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMonitorReentrancy(t *testing.T) {
	ref := New(8, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		MonitorEnter(ref)
		MonitorEnter(ref)
		MonitorExit(ref)
		MonitorExit(ref)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reentrant enter/exit deadlocked")
	}

	// The monitor must be unheld afterwards: another thread can take it.
	acquired := make(chan struct{})
	go func() {
		MonitorEnter(ref)
		MonitorExit(ref)
		close(acquired)
	}()
	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor left held after balanced exits")
	}
}

func TestMonitorWaitNotify(t *testing.T) {
	ref := New(8, nil)

	var reacquired atomic.Bool
	waiting := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		MonitorEnter(ref)
		close(waiting)
		MonitorWait(ref, 0)
		// Wait returned holding the monitor; exercise it directly.
		reacquired.Store(true)
		MonitorExit(ref)
	}()

	<-waiting
	// Give the waiter time to release the monitor inside Wait.
	for {
		time.Sleep(time.Millisecond)
		m := monitorOf(ref)
		m.mu.Lock()
		idle := m.owner == 0 && len(m.waiters) == 1
		m.mu.Unlock()
		if idle {
			break
		}
	}

	MonitorEnter(ref)
	MonitorNotify(ref)
	MonitorExit(ref)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("notified waiter never returned from Wait")
	}
	if !reacquired.Load() {
		t.Error("waiter did not re-acquire the monitor")
	}
}

func TestMonitorWaitTimeout(t *testing.T) {
	ref := New(8, nil)

	MonitorEnter(ref)
	start := time.Now()
	MonitorWait(ref, 50)
	elapsed := time.Since(start)
	MonitorExit(ref)

	if elapsed < 50*time.Millisecond {
		t.Errorf("Wait(50) returned after %v, want >= 50ms", elapsed)
	}
	if elapsed > 5*time.Second {
		t.Errorf("Wait(50) returned after %v, want a bounded margin", elapsed)
	}
}

func TestMonitorNotifyAll(t *testing.T) {
	ref := New(8, nil)
	const waiters = 4

	var wg sync.WaitGroup
	var woke atomic.Int32
	ready := make(chan struct{}, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			MonitorEnter(ref)
			ready <- struct{}{}
			MonitorWait(ref, 0)
			woke.Add(1)
			MonitorExit(ref)
		}()
	}

	for i := 0; i < waiters; i++ {
		<-ready
	}
	// Wait until all waiters have parked in the wait set.
	m := monitorOf(ref)
	for {
		m.mu.Lock()
		parked := len(m.waiters)
		m.mu.Unlock()
		if parked == waiters {
			break
		}
		time.Sleep(time.Millisecond)
	}

	MonitorEnter(ref)
	MonitorNotifyAll(ref)
	MonitorExit(ref)

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatalf("only %d of %d waiters woke", woke.Load(), waiters)
	}
	if woke.Load() != waiters {
		t.Errorf("woke = %d, want %d", woke.Load(), waiters)
	}
}

func TestMonitorNotifyWithNoWaiters(t *testing.T) {
	ref := New(8, nil)
	// Must not block or misbehave with an empty wait set.
	MonitorNotify(ref)
	MonitorNotifyAll(ref)
}

func TestMonitorContendedEnter(t *testing.T) {
	ref := New(8, nil)
	const goroutines = 8
	const rounds = 100

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				MonitorEnter(ref)
				counter++
				MonitorExit(ref)
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*rounds {
		t.Errorf("counter = %d, want %d", counter, goroutines*rounds)
	}
}
