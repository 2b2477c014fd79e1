package session

import (
	"fmt"
	"time"
)

// Snapshot is the persisted form of a session: the starting position and the
// moves played from it, in labels only.
type Snapshot struct {
	Start   string    `json:"start"`
	Moves   []string  `json:"moves"`
	SavedAt time.Time `json:"saved_at"`
}

// Snapshot captures the session.
func (s *Session) Snapshot() Snapshot {
	moves := make([]string, len(s.history))
	for i, m := range s.history {
		moves[i] = m.String()
	}
	return Snapshot{
		Start:   s.start,
		Moves:   moves,
		SavedAt: time.Now(),
	}
}

// Restore rebuilds a session by replaying a snapshot.
func Restore(snap Snapshot) (*Session, error) {
	start := snap.Start
	if start == "" {
		return nil, fmt.Errorf("restore: empty start position")
	}
	s, err := FromFEN(start)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	for i, mv := range snap.Moves {
		if len(mv) != 4 {
			return nil, fmt.Errorf("restore: move %d %q: %w", i+1, mv, ErrIllegalMove)
		}
		if _, err := s.Play(mv[:2], mv[2:]); err != nil {
			return nil, fmt.Errorf("restore: move %d %q: %w", i+1, mv, err)
		}
	}
	return s, nil
}
