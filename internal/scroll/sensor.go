// Package scroll detects when a scrolled view reaches the bottom of its
// content so the next page can be requested.
package scroll

import "sync"

// DefaultThreshold is how close to the end, in rows, counts as the bottom.
const DefaultThreshold = 5

// Sensor reports reaching the bottom of the content. After it fires it stays
// quiet until Rearm is called, so a burst of scroll events near the bottom
// advances the page only once per completed fetch.
type Sensor struct {
	mu        sync.Mutex
	threshold int
	attached  bool
	armed     bool
}

// NewSensor returns a detached sensor. A threshold below zero uses DefaultThreshold.
func NewSensor(threshold int) *Sensor {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Sensor{threshold: threshold}
}

// Attach starts observing. It is idempotent and arms the sensor on the first call.
func (s *Sensor) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return
	}
	s.attached = true
	s.armed = true
}

// Detach stops observing. A detached sensor never fires.
func (s *Sensor) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	s.armed = false
}

// Attached reports whether the sensor is observing.
func (s *Sensor) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Rearm allows the sensor to fire again once the advanced page has loaded or failed.
func (s *Sensor) Rearm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		s.armed = true
	}
}

// Observe checks a scroll position. It fires when viewportHeight+offset is
// within the threshold of contentHeight and the sensor is armed.
func (s *Sensor) Observe(viewportHeight, offset, contentHeight int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached || !s.armed {
		return false
	}
	if viewportHeight+offset < contentHeight-s.threshold {
		return false
	}
	s.armed = false
	return true
}
