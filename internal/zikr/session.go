package zikr

// Session walks a sequence phrase by phrase. Each Advance is one
// recitation; a phrase can be skipped without counting it as done.
type Session struct {
	sequence Sequence
	phrase   int
	count    int
	skipped  int
}

func NewSession(seq Sequence) *Session {
	return &Session{sequence: seq}
}

// Phrase returns the current phrase. Calling it after the session is
// done returns the last phrase.
func (s *Session) Phrase() Phrase {
	if len(s.sequence) == 0 {
		return Phrase{}
	}
	i := s.phrase
	if i >= len(s.sequence) {
		i = len(s.sequence) - 1
	}
	return s.sequence[i]
}

// Count reports recitations completed within the current phrase.
func (s *Session) Count() int { return s.count }

// Position reports the current phrase index and the sequence length.
func (s *Session) Position() (int, int) {
	return s.phrase, len(s.sequence)
}

// Done reports whether every phrase has been completed or skipped.
func (s *Session) Done() bool {
	return s.phrase >= len(s.sequence)
}

// Skipped reports how many phrases were skipped.
func (s *Session) Skipped() int { return s.skipped }

// Advance counts one recitation. It reports whether that recitation
// completed the current phrase and moved the session to the next one.
func (s *Session) Advance() (phraseDone bool) {
	if s.Done() {
		return false
	}
	s.count++
	if s.count >= s.sequence[s.phrase].Count {
		s.phrase++
		s.count = 0
		return true
	}
	return false
}

// Skip abandons the current phrase and moves on.
func (s *Session) Skip() {
	if s.Done() {
		return
	}
	s.phrase++
	s.count = 0
	s.skipped++
}
