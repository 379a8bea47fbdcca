package bnb

import (
	"fmt"

	"github.com/katalvlaran/layoutembed/embedding"
)

// NodeState is the lifecycle stage of a search node. Open is initial;
// Pruned and Complete are terminal; Expanded yields zero or more Open children.
type NodeState uint8

const (
	Open NodeState = iota
	Expanded
	Pruned
	Complete
)

// String returns the state name.
func (s NodeState) String() string {
	switch s {
	case Open:
		return "open"
	case Expanded:
		return "expanded"
	case Pruned:
		return "pruned"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}

// node exclusively owns its Embedding and InsertionSequence.
type node struct {
	em       *embedding.Embedding
	seq      embedding.InsertionSequence
	lb       float64
	priority float64
	seqNo    uint64 // discovery order
	bytes    int64
	state    NodeState
}

// nodeOverhead approximates the fixed per-node bytes outside the Embedding.
const nodeOverhead = 96

func (n *node) footprint() int64 {
	b := int64(nodeOverhead) + n.em.FootprintBytes()
	b += int64(len(n.seq)) * 64

	return b
}
