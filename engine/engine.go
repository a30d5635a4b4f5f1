// Package engine matches subjects against compiled wildcard programs.
//
// The engine walks the phrase table left to right. For each phrase it tries
// every placement of the literal whose preceding gap lies within the
// phrase's bounds, smallest gap first, and backtracks when the rest of the
// table cannot be matched. Three things keep this fast in practice:
//
//   - subjects shorter than the program's minimum length are rejected
//     immediately;
//   - a substring prefilter rejects subjects missing the longest literal;
//   - a bit vector memoizes failed (phrase, remaining length) pairs, so no
//     suffix is explored twice and the search is polynomial.
//
// The search uses an explicit stack, so pattern length never limits
// recursion depth.
package engine

import (
	"sync/atomic"

	"github.com/coregx/wildcard/prefilter"
	"github.com/coregx/wildcard/strops"
	"github.com/coregx/wildcard/syntax"
)

// Engine matches subjects against one compiled program. It is immutable
// after construction and safe for concurrent use.
type Engine struct {
	prog    *syntax.Program
	ops     strops.Ops
	phrases []syntax.Phrase
	config  Config
	pf      prefilter.Prefilter
	stats   Stats
}

// Stats tracks engine execution counters.
type Stats struct {
	// Searches counts calls to Match.
	Searches uint64

	// LengthRejects counts subjects shorter than the program's minimum.
	LengthRejects uint64

	// PrefilterRejects counts subjects missing the prefilter literal.
	PrefilterRejects uint64

	// Candidates counts literal placements tried by the backtracker.
	Candidates uint64

	// MemoHits counts search branches pruned by the failure memo.
	MemoHits uint64
}

// New returns an engine for prog with the default configuration.
func New(prog *syntax.Program) *Engine {
	e, _ := NewWithConfig(prog, DefaultConfig())
	return e
}

// NewWithConfig returns an engine for prog.
func NewWithConfig(prog *syntax.Program, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		prog:    prog,
		ops:     prog.Ops(),
		phrases: prog.Phrases(),
		config:  config,
	}
	if config.EnablePrefilter && !prog.IsExact() {
		e.pf = prefilter.New(prog.Literals())
	}

	return e, nil
}

// Program returns the compiled program the engine executes.
func (e *Engine) Program() *syntax.Program {
	return e.prog
}

// Prefilter returns the prefilter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.pf
}

// Stats returns a snapshot of the execution counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:         atomic.LoadUint64(&e.stats.Searches),
		LengthRejects:    atomic.LoadUint64(&e.stats.LengthRejects),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		Candidates:       atomic.LoadUint64(&e.stats.Candidates),
		MemoHits:         atomic.LoadUint64(&e.stats.MemoHits),
	}
}

// ResetStats resets execution counters to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.LengthRejects, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.Candidates, 0)
	atomic.StoreUint64(&e.stats.MemoHits, 0)
}

// Match reports whether the whole subject matches the program.
func (e *Engine) Match(subject string) bool {
	atomic.AddUint64(&e.stats.Searches, 1)

	n := e.ops.Len(subject)
	if n < e.prog.MinLen() {
		atomic.AddUint64(&e.stats.LengthRejects, 1)
		return false
	}

	switch len(e.phrases) {
	case 0:
		return n == 0
	case 1:
		if e.prog.IsExact() {
			return subject == e.phrases[0].Literal
		}
	}

	if e.pf != nil && !e.pf.IsMatch(subject) {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		return false
	}

	st := getState()
	defer putState(st)

	matched := e.search(st, subject, n)

	atomic.AddUint64(&e.stats.Candidates, st.candidates)
	if st.memoHits > 0 {
		atomic.AddUint64(&e.stats.MemoHits, st.memoHits)
	}
	return matched
}

// search runs the backtracking walk over the phrase table.
func (e *Engine) search(st *searchState, subject string, n int) bool {
	last := len(e.phrases) - 1
	st.reset(len(e.phrases), n, e.config.MaxMemoBits)
	st.stack = append(st.stack, frame{tail: subject, rem: n})

	for len(st.stack) > 0 {
		top := len(st.stack) - 1
		f := &st.stack[top]

		if f.idx == len(e.phrases) {
			if f.rem == 0 {
				return true
			}
			st.stack = st.stack[:top]
			continue
		}

		ph := e.phrases[f.idx]
		if !f.open {
			f.open = true
			if f.rem < e.prog.MinLenFrom(f.idx) || !st.shouldVisit(f.idx, f.rem) {
				st.stack = st.stack[:top]
				continue
			}
			f.next = ph.MinGap
		}

		// A trailing wildcard run consumes whatever is left.
		if ph.Literal == "" {
			if f.rem >= ph.MinGap && (ph.IsUnbounded() || f.rem <= ph.MaxGap) {
				return true
			}
			st.stack = st.stack[:top]
			continue
		}

		litLen := e.prog.LiteralLen(f.idx)
		hi := f.rem - litLen
		if !ph.IsUnbounded() && ph.MaxGap < hi {
			hi = ph.MaxGap
		}

		p := e.place(f, ph.Literal, litLen, hi, f.idx == last)
		if p < 0 {
			st.stack = st.stack[:top]
			continue
		}
		st.candidates++

		st.stack = append(st.stack, frame{
			idx:  f.idx + 1,
			tail: e.ops.Slice(f.tail, p+litLen, -1),
			rem:  f.rem - p - litLen,
		})
	}

	return false
}

// place returns the next gap in [f.next, hi] at which lit occurs in f.tail
// and advances f.next past it, or returns -1 when no placement is left.
func (e *Engine) place(f *frame, lit string, litLen, hi int, last bool) int {
	if f.next > hi {
		return -1
	}

	// The final literal must end the subject, and a fixed gap has one
	// placement; both are verified in place instead of searched for.
	if last || e.phrases[f.idx].IsFixed() {
		lo, p := f.next, f.next
		if last {
			p = f.rem - litLen
		}
		f.next = hi + 1
		if p < lo || p > hi || e.ops.Slice(f.tail, p, litLen) != lit {
			return -1
		}
		return p
	}

	p := e.ops.Index(f.tail, lit, f.next)
	if p < 0 || p > hi {
		f.next = hi + 1
		return -1
	}
	f.next = p + 1
	return p
}
