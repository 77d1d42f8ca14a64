package dodger

import "sync"

// Stats summarizes the runs of one process.
type Stats struct {
	Runs int
	Best float64 // Longest survival time in seconds
	Last float64
}

// Session tracks survival times in memory. It is never persisted.
type Session struct {
	mu    sync.Mutex
	stats Stats
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Record adds a finished run and reports whether it set a new best.
func (s *Session) Record(elapsed float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Runs++
	s.stats.Last = elapsed
	if elapsed > s.stats.Best {
		s.stats.Best = elapsed
		return true
	}
	return false
}

// Stats returns a copy of the current statistics.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
