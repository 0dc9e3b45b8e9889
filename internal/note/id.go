package note

import "time"

// IDGenerator hands out note identifiers.
type IDGenerator interface {
	NextID() int64
}

// Sequence is a monotonic counter. The zero value starts at 1.
type Sequence struct {
	last int64
}

func NewSequence(start int64) *Sequence {
	return &Sequence{last: start - 1}
}

func (s *Sequence) NextID() int64 {
	s.last++
	return s.last
}

// Observe records an id already in use so later ids are greater than it.
func (s *Sequence) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// ClockIDs derives ids from wall-clock milliseconds, bumping by one when two
// calls land in the same millisecond.
type ClockIDs struct {
	Now  func() time.Time
	last int64
}

func (c *ClockIDs) NextID() int64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	id := now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

func (c *ClockIDs) Observe(id int64) {
	if id > c.last {
		c.last = id
	}
}
