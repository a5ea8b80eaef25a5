package scroll

import "testing"

func TestSensor_FiresWithinThreshold(t *testing.T) {
	tests := []struct {
		name     string
		viewport int
		offset   int
		content  int
		want     bool
	}{
		{"far from bottom", 20, 0, 100, false},
		{"just outside threshold", 20, 74, 100, false},
		{"at threshold", 20, 75, 100, true},
		{"at bottom", 20, 80, 100, true},
		{"content shorter than viewport", 20, 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSensor(DefaultThreshold)
			s.Attach()
			if got := s.Observe(tt.viewport, tt.offset, tt.content); got != tt.want {
				t.Fatalf("Observe(%d, %d, %d) = %v, want %v", tt.viewport, tt.offset, tt.content, got, tt.want)
			}
		})
	}
}

func TestSensor_GuardsUntilRearmed(t *testing.T) {
	s := NewSensor(DefaultThreshold)
	s.Attach()

	if !s.Observe(20, 80, 100) {
		t.Fatalf("first Observe at bottom = false, want true")
	}
	for i := 0; i < 5; i++ {
		if s.Observe(20, 80, 100) {
			t.Fatalf("Observe #%d before Rearm = true, want false", i+2)
		}
	}

	s.Rearm()
	if !s.Observe(20, 80, 100) {
		t.Fatalf("Observe after Rearm = false, want true")
	}
}

func TestSensor_DetachedNeverFires(t *testing.T) {
	s := NewSensor(DefaultThreshold)
	if s.Observe(20, 80, 100) {
		t.Fatalf("Observe before Attach = true, want false")
	}

	s.Attach()
	s.Detach()
	s.Rearm()
	if s.Attached() {
		t.Fatalf("Attached() = true after Detach, want false")
	}
	if s.Observe(20, 80, 100) {
		t.Fatalf("Observe after Detach = true, want false")
	}
}

func TestSensor_AttachIsIdempotent(t *testing.T) {
	s := NewSensor(0)
	s.Attach()
	if !s.Observe(10, 90, 100) {
		t.Fatalf("Observe = false, want true")
	}
	s.Attach()
	if s.Observe(10, 90, 100) {
		t.Fatalf("second Attach re-armed the sensor")
	}
}

func TestNewSensor_NegativeThresholdUsesDefault(t *testing.T) {
	s := NewSensor(-1)
	if s.threshold != DefaultThreshold {
		t.Fatalf("threshold = %d, want %d", s.threshold, DefaultThreshold)
	}
}
