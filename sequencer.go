package rowindex

import (
	"runtime"
	"sync/atomic"
)

// sequencer lets chunk i claim its output offset only after chunks
// 0..i-1 have already claimed theirs, while letting the (expensive)
// filter evaluation and copy-back for chunk i run fully concurrently
// with other chunks' claims and copies. It is a pair of atomics: a
// per-chunk ticket and a global cursor.
type sequencer struct {
	next   atomic.Int64 // ticket number allowed to claim next
	cursor atomic.Int64 // total output length claimed so far
}

// claim blocks (busy-spinning, yielding the processor to other
// goroutines between checks)
// until it is ticket's turn, then atomically reserves count output
// slots starting at the returned offset and hands the ticket to the
// next chunk. This is the entire "ordered" critical section: short by
// construction, since it does no work besides the two atomic updates.
func (s *sequencer) claim(ticket, count int64) int64 {
	for s.next.Load() != ticket {
		runtime.Gosched()
	}
	offset := s.cursor.Add(count) - count
	s.next.Store(ticket + 1)
	return offset
}

func (s *sequencer) total() int64 {
	return s.cursor.Load()
}
