package engine

import "sync"

// frame is one pending decision of the search: where phrases[idx] may
// place its literal inside tail.
type frame struct {
	idx  int    // phrase index
	tail string // unconsumed subject suffix
	rem  int    // character length of tail
	next int    // smallest gap still to try
	open bool   // next has been initialized
}

// searchState holds per-search mutable state. Engines share a pool of them
// so one compiled pattern can be matched from many goroutines.
type searchState struct {
	stack []frame

	// memo marks (phrase, remaining) pairs already explored without
	// success. Bit index: idx * (inputLen + 1) + rem.
	memo     []uint64
	inputLen int
	useMemo  bool

	candidates uint64
	memoHits   uint64
}

var statePool = sync.Pool{
	New: func() any {
		return &searchState{stack: make([]frame, 0, 8)}
	},
}

func getState() *searchState {
	return statePool.Get().(*searchState)
}

func putState(s *searchState) {
	s.stack = s.stack[:0]
	statePool.Put(s)
}

// reset prepares the state for a subject of inputLen characters against
// a program of phrases phrases.
func (s *searchState) reset(phrases, inputLen, maxMemoBits int) {
	s.stack = s.stack[:0]
	s.inputLen = inputLen
	s.candidates = 0
	s.memoHits = 0

	bits := phrases * (inputLen + 1)
	s.useMemo = bits <= maxMemoBits
	if !s.useMemo {
		return
	}

	words := (bits + 63) / 64
	if cap(s.memo) >= words {
		s.memo = s.memo[:words]
		clear(s.memo)
	} else {
		s.memo = make([]uint64, words)
	}
}

// shouldVisit reports whether (idx, rem) is unexplored and marks it.
func (s *searchState) shouldVisit(idx, rem int) bool {
	if !s.useMemo {
		return true
	}

	i := idx*(s.inputLen+1) + rem
	word := i / 64
	bit := uint64(1) << (i % 64)

	if s.memo[word]&bit != 0 {
		s.memoHits++
		return false
	}
	s.memo[word] |= bit
	return true
}
