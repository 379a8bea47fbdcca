package bnb

import (
	"container/heap"
	"math"
)

// priorityRule maps a node's bound data to its frontier key.
type priorityRule func(lb float64, nonConflicting int) float64

func lowerBoundRule(lb float64, _ int) float64 { return lb }

func nonConflictingRule(lb float64, nonConflicting int) float64 {
	return lb * float64(nonConflicting)
}

// ruleFor resolves the rule once per run.
func ruleFor(p Priority) priorityRule {
	if p == LowerBound {
		return lowerBoundRule
	}

	return nonConflictingRule
}

// frontier is an arena of node slots plus two heaps over slot indices: the
// pop order by (priority, seqNo) and a lazy min-heap of lower bounds.
type frontier struct {
	slots  []node
	live   []bool
	free   []int
	order  orderHeap
	bounds boundHeap
	next   uint64
	bytes  int64
}

func newFrontier() *frontier {
	f := &frontier{}
	f.order.f = f

	return f
}

// Len returns the number of open nodes.
func (f *frontier) Len() int { return len(f.order.ids) }

// Bytes returns the summed footprint of the open nodes.
func (f *frontier) Bytes() int64 { return f.bytes }

// push stores n, stamping its discovery number.
func (f *frontier) push(n node) {
	n.seqNo = f.next
	f.next++
	n.state = Open
	n.bytes = n.footprint()

	var slot int
	if k := len(f.free); k > 0 {
		slot = f.free[k-1]
		f.free = f.free[:k-1]
		f.slots[slot] = n
		f.live[slot] = true
	} else {
		slot = len(f.slots)
		f.slots = append(f.slots, n)
		f.live = append(f.live, true)
	}
	f.bytes += n.bytes
	heap.Push(&f.order, slot)
	heap.Push(&f.bounds, boundEntry{lb: n.lb, slot: slot, seqNo: n.seqNo})
}

// pop removes and returns the node with the lowest (priority, seqNo).
func (f *frontier) pop() (node, bool) {
	if f.Len() == 0 {
		return node{}, false
	}
	slot := heap.Pop(&f.order).(int)
	n := f.slots[slot]
	f.slots[slot] = node{}
	f.live[slot] = false
	f.free = append(f.free, slot)
	f.bytes -= n.bytes

	return n, true
}

// minBound returns the smallest lower bound among open nodes, +Inf if none.
func (f *frontier) minBound() float64 {
	for f.bounds.Len() > 0 {
		top := f.bounds.entries[0]
		if f.live[top.slot] && f.slots[top.slot].seqNo == top.seqNo {
			return top.lb
		}
		heap.Pop(&f.bounds)
	}

	return math.Inf(1)
}

// orderHeap is a container/heap of slot indices.
type orderHeap struct {
	ids []int
	f   *frontier
}

func (h orderHeap) Len() int { return len(h.ids) }

func (h orderHeap) Less(i, j int) bool {
	a, b := &h.f.slots[h.ids[i]], &h.f.slots[h.ids[j]]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seqNo < b.seqNo
}

func (h orderHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *orderHeap) Push(x interface{}) { h.ids = append(h.ids, x.(int)) }

func (h *orderHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	x := old[n-1]
	h.ids = old[:n-1]

	return x
}

// boundEntry goes stale once its slot is popped or reused.
type boundEntry struct {
	lb    float64
	slot  int
	seqNo uint64
}

type boundHeap struct{ entries []boundEntry }

func (h boundHeap) Len() int { return len(h.entries) }

func (h boundHeap) Less(i, j int) bool {
	if h.entries[i].lb != h.entries[j].lb {
		return h.entries[i].lb < h.entries[j].lb
	}

	return h.entries[i].seqNo < h.entries[j].seqNo
}

func (h boundHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *boundHeap) Push(x interface{}) { h.entries = append(h.entries, x.(boundEntry)) }

func (h *boundHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	x := old[n-1]
	h.entries = old[:n-1]

	return x
}
