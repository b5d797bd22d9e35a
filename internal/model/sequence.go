package model

// Sequence hands out store-unique ids. It is a plain value so it can be
// serialized next to the lists it numbers; a session reloaded from a shared
// backend continues where it left off instead of reusing ids.
type Sequence struct {
	Last int64 `json:"last"`
}

// Next advances the sequence and returns the new id.
func (s *Sequence) Next() int64 {
	s.Last++
	return s.Last
}

// Observe moves the sequence past id if needed.
func (s *Sequence) Observe(id int64) {
	if id > s.Last {
		s.Last = id
	}
}
