package edit

// Change is one touched position of a finished batch: the block seen before
// the session's first write there and the latest requested block.
type Change struct {
	Pos    [3]int `json:"pos"`
	Before uint16 `json:"before"`
	After  uint16 `json:"after"`
}

// Changes returns the session's changeset in sorted (X, Y, Z) position
// order, suitable for journaling. Positions written back to their original
// block are included; the caller can filter on Before != After.
func (s *Session) Changes() []Change {
	out := make([]Change, 0, len(s.original))
	for _, p := range sortedKeys(s.original) {
		after, ok := s.current[p]
		if !ok {
			// The write that recorded this position hit the change limit
			// before its requested block was tracked.
			after = s.original[p]
		}
		out = append(out, Change{
			Pos:    [3]int{p.X, p.Y, p.Z},
			Before: uint16(s.original[p]),
			After:  uint16(after),
		})
	}
	return out
}
