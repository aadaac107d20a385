package drain

import (
	"sync/atomic"

	"github.com/driftlog/drift/core"
)

// OverflowPolicy defines producer behavior when the async queue is full
type OverflowPolicy int

const (
	// Block waits until space is available. The default: no record
	// accepted by the drain is ever silently lost.
	Block OverflowPolicy = iota
	// DropOldest evicts the oldest queued record to make room
	DropOldest
	// DropNewest drops the incoming record
	DropNewest
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case Block:
		return "Block"
	case DropOldest:
		return "DropOldest"
	case DropNewest:
		return "DropNewest"
	default:
		return "Unknown"
	}
}

// Stats tracks async drain statistics with per-level drop counters.
type Stats struct {
	dropped   [core.NumLevels]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) incrementDropped(level core.Level) {
	if level >= 0 && int(level) < core.NumLevels {
		s.dropped[level].Add(1)
	}
}

func (s *Stats) incrementBlocked() {
	s.blocked.Add(1)
}

func (s *Stats) incrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a level
func (s *Stats) Dropped(level core.Level) uint64 {
	if level < 0 || int(level) >= core.NumLevels {
		return 0
	}
	return s.dropped[level].Load()
}

// TotalDropped returns the total dropped across all levels
func (s *Stats) TotalDropped() uint64 {
	var n uint64
	for i := range s.dropped {
		n += s.dropped[i].Load()
	}
	return n
}

// Blocked returns how many times a producer had to wait for space
func (s *Stats) Blocked() uint64 {
	return s.blocked.Load()
}

// Processed returns how many records the worker has handed to the
// inner drain successfully
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Blocked   uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, core.NumLevels)
	for i := range s.dropped {
		dropped[core.Level(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		Dropped:   dropped,
		Blocked:   s.blocked.Load(),
		Processed: s.processed.Load(),
	}
}
