package core

import "time"

// Lap is one named, measured phase.
type Lap struct {
	Name     string
	Duration time.Duration
}

// Stopwatch measures consecutive phases of a pipeline.
type Stopwatch struct {
	now  func() time.Time
	last time.Time
	laps []Lap
}

// NewStopwatch starts a stopwatch at the current time.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now, last: now()}
}

// Lap closes the current phase under name and starts the next one.
func (s *Stopwatch) Lap(name string) time.Duration {
	t := s.now()
	d := t.Sub(s.last)
	s.last = t
	s.laps = append(s.laps, Lap{Name: name, Duration: d})
	return d
}

// Laps returns the recorded phases in order.
func (s *Stopwatch) Laps() []Lap { return s.laps }

// Total sums all recorded phases.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, l := range s.laps {
		total += l.Duration
	}
	return total
}
