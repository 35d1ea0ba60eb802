package processor

import "time"

// FrameMeter counts frames and publishes the count once per second.
type FrameMeter struct {
	now   func() time.Time
	start time.Time
	count int
	rate  int
}

// NewFrameMeter returns a meter reading now, or time.Now when nil.
func NewFrameMeter(now func() time.Time) *FrameMeter {
	if now == nil {
		now = time.Now
	}

	return &FrameMeter{now: now}
}

// Tick counts one frame and returns the last published rate.
func (m *FrameMeter) Tick() int {
	t := m.now()
	if m.start.IsZero() {
		m.start = t
	}

	m.count++

	if t.Sub(m.start) >= time.Second {
		m.rate = m.count
		m.count = 0
		m.start = t
	}

	return m.rate
}

// Rate returns the last published rate.
func (m *FrameMeter) Rate() int {
	return m.rate
}
