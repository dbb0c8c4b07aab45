package obs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/vlvec"
)

// Monitor broadcasts storage-transition events to subscribers.
//
// The monitor's hook publishes without blocking the mutating operation:
// events are dropped for subscribers which cannot keep up. A monitor may be
// attached to more than one vector; subscribers then see the merged event
// stream.
type Monitor struct {
	cast *caster.Caster // broadcaster for transition events
}

// NewMonitor creates a monitor with no subscribers.
func NewMonitor() *Monitor {
	return &Monitor{
		cast: caster.New(nil), // we will broadcast transition events
	}
}

// Hook returns a callback suitable for Vec.SetTransitionHook. The callback
// never blocks the calling mutation.
func (m *Monitor) Hook() func(vlvec.Event) {
	return func(e vlvec.Event) {
		if !m.cast.TryPub(e) {
			tracer().Debugf("vlvec monitor: dropped %s event", e.Kind)
		}
	}
}

// Attach installs the monitor's hook on a vector. It replaces any previously
// installed transition hook.
func Attach[T any](m *Monitor, v *vlvec.Vec[T]) {
	v.SetTransitionHook(m.Hook())
}

// Subscribe registers a new subscriber and returns its event channel. The
// channel is closed when ctx is done or the monitor is closed. capacity
// bounds the number of undelivered events buffered for this subscriber;
// events arriving while the buffer is full are dropped.
//
// The second return value is false if the monitor has already been closed.
func (m *Monitor) Subscribe(ctx context.Context, capacity uint) (<-chan vlvec.Event, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select { // caster.Sub reports ok even on a closed caster
	case <-m.cast.Done():
		return nil, false
	default:
	}
	src, ok := m.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	events := make(chan vlvec.Event, capacity)
	go func() {
		defer close(events)
		for msg := range src {
			e, isEvent := msg.(vlvec.Event)
			if !isEvent {
				continue
			}
			select {
			case events <- e:
			default: // subscriber not keeping up
				tracer().Debugf("vlvec monitor: dropped %s event for slow subscriber", e.Kind)
			}
		}
	}()
	return events, true
}

// Close shuts the monitor down and closes all subscriber channels. Hooks
// obtained from the monitor become no-ops.
func (m *Monitor) Close() {
	m.cast.Close()
}
