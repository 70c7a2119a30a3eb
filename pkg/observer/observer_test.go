package observer

import (
	"context"
	"sync"
	"testing"
	"time"
)

// countingObserver records how many events it saw.
type countingObserver struct {
	mu    sync.Mutex
	count int
	done  chan struct{}
}

func (c *countingObserver) OnEvent(ctx context.Context, event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

// panickyObserver always panics.
type panickyObserver struct{}

func (p *panickyObserver) OnEvent(ctx context.Context, event Event) {
	panic("observer blew up")
}

func TestManager_Register(t *testing.T) {
	m := NewManager()
	if m.HasObservers() {
		t.Error("fresh manager claims observers")
	}

	m.Register(&NoOpObserver{})
	m.Register(nil) // ignored

	if !m.HasObservers() {
		t.Error("manager lost registered observer")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestManager_NotifyReachesObservers(t *testing.T) {
	obs := &countingObserver{done: make(chan struct{})}
	m := NewManagerWithObservers(obs)

	m.Notify(context.Background(), Event{
		Type:      EventAnalysisStart,
		Status:    StatusStarted,
		Timestamp: time.Now(),
	})

	select {
	case <-obs.done:
	case <-time.After(time.Second):
		t.Fatal("observer never notified")
	}
}

func TestManager_PanickingObserverIsIsolated(t *testing.T) {
	good := &countingObserver{done: make(chan struct{})}
	m := NewManagerWithObservers(&panickyObserver{}, good)

	m.Notify(context.Background(), Event{Type: EventStageEnd, Status: StatusSuccess})

	select {
	case <-good.done:
	case <-time.After(time.Second):
		t.Fatal("panicking observer starved the healthy one")
	}
}

func TestConsoleObserver_DoesNotPanic(t *testing.T) {
	obs := NewConsoleObserverWithLogger(&NoOpLogger{})

	events := []Event{
		{Type: EventAnalysisStart, Status: StatusStarted, AnalysisID: "an-1"},
		{Type: EventStageStart, Status: StatusStarted, Stage: StageForward},
		{Type: EventStageEnd, Status: StatusSuccess, Stage: StageForward, ElapsedTime: time.Millisecond},
		{Type: EventPathFound, Status: StatusSuccess, Metadata: map[string]interface{}{"delay": 0.08}},
		{Type: EventAnalysisEnd, Status: StatusFailure, Error: context.Canceled},
	}
	for _, e := range events {
		obs.OnEvent(context.Background(), e)
	}
}
