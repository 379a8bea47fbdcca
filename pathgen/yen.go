package pathgen

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/layoutembed/embedding"
)

// KShortest enumerates feasible paths for layout edge le in ascending order.
//
// Generation stops after k paths (k <= 0: no limit) or as soon as the next
// path would have Length >= ceiling (pass +Inf for no ceiling). When it stops
// at k, one further round is run to fill NextLength and Truncated.
func KShortest(em *embedding.Embedding, le, k int, ceiling float64) Candidates {
	return KShortestUntil(em, le, k, ceiling, nil)
}

// KShortestUntil is KShortest with an abort hook. stop is polled before every
// spur search; once it returns true the paths accepted so far are returned
// with Stopped and Truncated set, and NextLength is the length of the last
// accepted path, which no remaining path undercuts. A nil stop never fires.
func KShortestUntil(em *embedding.Embedding, le, k int, ceiling float64, stop func() bool) Candidates {
	c := Candidates{LayoutEdge: le, NextLength: math.Inf(1)}
	first, ok := Shortest(em, le)
	if !ok || !(first.Length < ceiling) {
		return c
	}

	y := newYen(em, le, stop)
	y.accept(first)
	for k <= 0 || len(y.found) < k {
		next, ok := y.next()
		if y.stopped {
			break
		}
		if !ok || !(next.Length < ceiling) {
			break
		}
		y.accept(next)
	}
	if !y.stopped && k > 0 && len(y.found) == k {
		if next, ok := y.next(); ok && !y.stopped {
			c.NextLength = next.Length
			c.Truncated = next.Length < ceiling
		}
	}
	if y.stopped {
		c.Stopped = true
		c.Truncated = true
		c.NextLength = y.found[len(y.found)-1].Length
	}
	c.Paths = y.found
	SortPaths(c.Paths)

	return c
}

var inf = math.Inf(1)

// yen holds the accepted list A and the candidate pool B of Yen's algorithm.
type yen struct {
	em       *embedding.Embedding
	le       int
	dst      int
	found    []embedding.Path
	pool     []embedding.Path
	seen     map[string]struct{}
	expanded int // prefix of found whose spur paths are already in pool
	stop     func() bool
	stopped  bool
}

func newYen(em *embedding.Embedding, le int, stop func() bool) *yen {
	_, dst := em.Endpoints(le)

	return &yen{em: em, le: le, dst: dst, seen: make(map[string]struct{}), stop: stop}
}

// halted polls the stop hook and latches its answer.
func (y *yen) halted() bool {
	if !y.stopped && y.stop != nil && y.stop() {
		y.stopped = true
	}

	return y.stopped
}

func (y *yen) accept(p embedding.Path) {
	y.found = append(y.found, p)
	y.seen[pathKey(p)] = struct{}{}
}

// next spurs off every accepted path not yet spurred and pops the best pool
// entry. It reports false without popping once the stop hook fires.
func (y *yen) next() (embedding.Path, bool) {
	for ; y.expanded < len(y.found); y.expanded++ {
		y.spur(y.found[y.expanded])
		if y.stopped {
			return embedding.Path{}, false
		}
	}
	if len(y.pool) == 0 {
		return embedding.Path{}, false
	}
	best := 0
	for i := 1; i < len(y.pool); i++ {
		if less(y.pool[i], y.pool[best]) {
			best = i
		}
	}
	p := y.pool[best]
	y.pool[best] = y.pool[len(y.pool)-1]
	y.pool = y.pool[:len(y.pool)-1]

	return p, true
}

// spur adds to the pool every deviation of last that leaves it at vertex i
// through an edge no accepted path with the same root takes.
func (y *yen) spur(last embedding.Path) {
	m := y.em.Target()
	for i := 0; i < len(last.Vertices)-1; i++ {
		if y.halted() {
			return
		}
		root := last.Vertices[:i+1]
		rootEdges := last.Edges[:i]

		cut := make(map[int]struct{})
		for _, p := range y.found {
			if len(p.Vertices) > i+1 && equalInts(p.Vertices[:i+1], root) {
				cut[p.Edges[i]] = struct{}{}
			}
		}
		onRoot := make(map[int]struct{}, i)
		for _, v := range root[:i] {
			onRoot[v] = struct{}{}
		}

		tail, ok := search(m, root[i], y.dst,
			func(v int) bool {
				if _, in := onRoot[v]; in {
					return true
				}

				return y.em.IsBlockedVertex(y.le, v)
			},
			func(e int) bool {
				if _, in := cut[e]; in {
					return true
				}

				return y.em.IsBlockedEdge(e)
			},
		)
		if !ok {
			continue
		}

		vs := make([]int, 0, len(root)+len(tail.Vertices)-1)
		vs = append(vs, root...)
		vs = append(vs, tail.Vertices[1:]...)
		es := make([]int, 0, len(rootEdges)+len(tail.Edges))
		es = append(es, rootEdges...)
		es = append(es, tail.Edges...)
		cand := embedding.Path{Vertices: vs, Edges: es, Length: pathLength(m, es)}

		key := pathKey(cand)
		if _, dup := y.seen[key]; dup {
			continue
		}
		y.seen[key] = struct{}{}
		y.pool = append(y.pool, cand)
	}
}

// less orders by length, then lexicographically by vertex sequence.
func less(a, b embedding.Path) bool {
	if a.Length != b.Length {
		return a.Length < b.Length
	}
	n := len(a.Vertices)
	if len(b.Vertices) < n {
		n = len(b.Vertices)
	}
	for i := 0; i < n; i++ {
		if a.Vertices[i] != b.Vertices[i] {
			return a.Vertices[i] < b.Vertices[i]
		}
	}

	return len(a.Vertices) < len(b.Vertices)
}

// SortPaths orders ps by (Length, vertex sequence) in place.
func SortPaths(ps []embedding.Path) {
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func pathKey(p embedding.Path) string {
	var b strings.Builder
	for _, e := range p.Edges {
		b.WriteString(strconv.Itoa(e))
		b.WriteByte(',')
	}

	return b.String()
}
