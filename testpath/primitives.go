package testpath

import "github.com/cptgraph/cpt/sut"

// Contains reports whether p witnesses c = (a, b): some a occurs, and some
// later occurrence of b follows it. Implemented with two latches in a
// single left-to-right pass.
//
// Contains is monotone, not a substring matcher: once fromSeen is set, it
// is never re-armed by a later a. A path a,b,a without a further b still
// satisfies Contains for (a,b), which is the intended semantics here.
func Contains(p Path, c sut.Constraint) bool {
	var fromSeen, toSeen bool
	for _, v := range p {
		if fromSeen && v == c.To {
			toSeen = true
		}
		if !fromSeen && v == c.From {
			fromSeen = true
		}
	}

	return fromSeen && toSeen
}

// Occurrences counts matched ordered (from, to) pairs in p under greedy
// left-to-right matching: each occurrence of c.From can open at most one
// pending match, and the next occurrence of c.To closes the oldest open
// match. Used only for multi-occurrence detection (Repeats).
func Occurrences(p Path, c sut.Constraint) int {
	var fromCnt, toCnt int
	for _, v := range p {
		if v == c.From {
			fromCnt++
		}
		if v == c.To && fromCnt > toCnt {
			toCnt++
		}
	}

	return toCnt
}

// Repeats reports whether c is matched at least twice in p: both the from
// and to counts from the same scan Occurrences performs exceed one.
func Repeats(p Path, c sut.Constraint) bool {
	var fromCnt, toCnt int
	for _, v := range p {
		if v == c.From {
			fromCnt++
		}
		if v == c.To && fromCnt > toCnt {
			toCnt++
		}
	}

	return fromCnt > 1 && toCnt > 1
}

// EdgeOccurrences counts how many times e appears as a consecutive pair in
// p.
func EdgeOccurrences(p Path, e sut.Edge) int {
	var n int
	for i := 0; i+1 < len(p); i++ {
		if p[i] == e.From && p[i+1] == e.To {
			n++
		}
	}

	return n
}
