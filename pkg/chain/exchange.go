package chain

import (
	"fmt"

	"github.com/mesh-intelligence/lamps/pkg/types"
)

// OperateExchange applies action to start and then ripples outward: the lamp
// one step left, one step right, two steps left, two steps right, and so on.
// A side that runs out stops receiving the action while the other side
// continues; the ripple ends once both sides are exhausted. The action on a
// lamp completes before its further neighbor is read.
//
// Broken links are a programming error: if the ripple runs for more levels
// than the chain has lamps, OperateExchange panics with types.ErrBrokenLink.
func OperateExchange(start *Node, action Action) {
	start.Apply(action)

	limit := start.chain.Len()
	left, right := start.Prev(), start.Next()
	for level := 1; left != nil || right != nil; level++ {
		if level > limit {
			panic(fmt.Errorf("ripple from %q passed %d levels: %w", start.name, limit, types.ErrBrokenLink))
		}
		if left != nil {
			left.Apply(action)
			left = left.Prev()
		}
		if right != nil {
			right.Apply(action)
			right = right.Next()
		}
	}
}

// Ripple returns the lamps OperateExchange would visit from start, grouped by
// distance. Level 0 holds start; each later level holds the left lamp before
// the right one when both exist. No action is applied.
func Ripple(start *Node) [][]*Node {
	var levels [][]*Node
	OperateExchange(start, func(n *Node) {
		d := n.index - start.index
		if d < 0 {
			d = -d
		}
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], n)
	})
	return levels
}
