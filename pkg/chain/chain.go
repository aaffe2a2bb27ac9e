package chain

import (
	"fmt"

	"github.com/mesh-intelligence/lamps/pkg/types"
)

// Chain is an arena of lamps linked pairwise in construction order. The
// first lamp has no Prev and the last has no Next.
type Chain struct {
	nodes []Node
}

// New creates one lamp per name, links each to its predecessor, and returns
// the chain. It returns types.ErrEmptyChain when names is empty.
func New(names []string) (*Chain, error) {
	if len(names) == 0 {
		return nil, types.ErrEmptyChain
	}

	c := &Chain{nodes: make([]Node, len(names))}
	for i, name := range names {
		c.nodes[i] = Node{chain: c, index: i, name: name, prev: none, next: none}
		if i > 0 {
			c.link(i-1, i)
		}
	}
	return c, nil
}

// Build creates a chain from names and returns its last lamp as the entry
// point. It panics when names is empty.
func Build(names ...string) *Node {
	c, err := New(names)
	if err != nil {
		panic(err)
	}
	return c.Last()
}

// link sets the symmetric pair a.next = b, b.prev = a.
func (c *Chain) link(a, b int) {
	c.nodes[a].next = b
	c.nodes[b].prev = a
}

func (c *Chain) at(i int) *Node {
	if i == none {
		return nil
	}
	return &c.nodes[i]
}

// Len returns the number of lamps.
func (c *Chain) Len() int { return len(c.nodes) }

// Node returns the lamp at position i in construction order.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// First returns the first lamp.
func (c *Chain) First() *Node { return &c.nodes[0] }

// Last returns the last lamp.
func (c *Chain) Last() *Node { return &c.nodes[len(c.nodes)-1] }

// Nodes returns the lamps in construction order.
func (c *Chain) Nodes() []*Node {
	out := make([]*Node, len(c.nodes))
	for i := range c.nodes {
		out[i] = &c.nodes[i]
	}
	return out
}

// Lookup returns the first lamp with the given name, or
// types.ErrLampNotFound.
func (c *Chain) Lookup(name string) (*Node, error) {
	for i := range c.nodes {
		if c.nodes[i].name == name {
			return &c.nodes[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, types.ErrLampNotFound)
}

// States returns a snapshot of every lamp state keyed by name.
func (c *Chain) States() map[string]bool {
	out := make(map[string]bool, len(c.nodes))
	for i := range c.nodes {
		out[c.nodes[i].name] = c.nodes[i].on
	}
	return out
}

// Validate checks the link structure: neighbors are symmetric, the ends carry
// terminal markers, and every lamp is reachable walking forward from the
// first. It returns an error wrapping types.ErrBrokenLink.
func (c *Chain) Validate() error {
	n := len(c.nodes)
	if n == 0 {
		return types.ErrEmptyChain
	}
	if c.nodes[0].prev != none {
		return fmt.Errorf("first lamp %q has a prev: %w", c.nodes[0].name, types.ErrBrokenLink)
	}
	if c.nodes[n-1].next != none {
		return fmt.Errorf("last lamp %q has a next: %w", c.nodes[n-1].name, types.ErrBrokenLink)
	}

	for i := range c.nodes {
		node := &c.nodes[i]
		if node.next != none {
			if node.next < 0 || node.next >= n || c.nodes[node.next].prev != i {
				return fmt.Errorf("lamp %q next is not linked back: %w", node.name, types.ErrBrokenLink)
			}
		}
		if node.prev != none {
			if node.prev < 0 || node.prev >= n || c.nodes[node.prev].next != i {
				return fmt.Errorf("lamp %q prev is not linked back: %w", node.name, types.ErrBrokenLink)
			}
		}
	}

	steps := 0
	for cur := c.First(); cur != nil; cur = cur.Next() {
		steps++
		if steps > n {
			return fmt.Errorf("forward walk does not terminate: %w", types.ErrBrokenLink)
		}
	}
	if steps != n {
		return fmt.Errorf("forward walk reached %d of %d lamps: %w", steps, n, types.ErrBrokenLink)
	}
	return nil
}
