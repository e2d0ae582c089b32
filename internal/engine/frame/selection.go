package frame

// Selection tracks dwell-to-select: an item is selected after the cursor
// holds it at full highlight for the configured duration. After a
// selection the cursor must back off before the next one can start.
type Selection struct {
	elapsed  float32
	progress float32
	waiting  bool
}

// Update advances the dwell timer by dt seconds. full reports whether the
// item is at full highlight and nearest for some cursor. It returns true on
// the frame the selection completes.
func (s *Selection) Update(dt, duration float32, full bool) bool {
	if !full {
		s.Reset()
		return false
	}
	if s.waiting {
		return false
	}

	s.elapsed += dt
	if duration <= 0 {
		s.progress = 1
	} else {
		s.progress = min(1, s.elapsed/duration)
	}
	if s.progress < 1 {
		return false
	}

	s.elapsed = 0
	s.progress = 0
	s.waiting = true
	return true
}

// Reset clears the timer and the wait-for-release latch.
func (s *Selection) Reset() {
	*s = Selection{}
}

// Progress returns dwell progress in [0, 1].
func (s *Selection) Progress() float32 {
	return s.progress
}
