package chain

// none marks an absent neighbor.
const none = -1

// Action mutates a lamp. It may have side effects such as narration; an
// Action that must be safe to repeat has to be idempotent itself.
type Action func(n *Node)

// Node is a single lamp in a Chain.
type Node struct {
	chain *Chain
	index int
	name  string
	on    bool
	prev  int
	next  int
}

// Name returns the lamp name.
func (n *Node) Name() string { return n.name }

// On reports whether the lamp is on.
func (n *Node) On() bool { return n.on }

// SetOn sets the lamp state.
func (n *Node) SetOn(on bool) { n.on = on }

// Index returns the position of the lamp in construction order.
func (n *Node) Index() int { return n.index }

// Chain returns the chain the lamp belongs to.
func (n *Node) Chain() *Chain { return n.chain }

// Prev returns the left neighbor, or nil at the first lamp.
func (n *Node) Prev() *Node { return n.chain.at(n.prev) }

// Next returns the right neighbor, or nil at the last lamp.
func (n *Node) Next() *Node { return n.chain.at(n.next) }

// Apply invokes action on the lamp exactly once.
func (n *Node) Apply(action Action) {
	action(n)
}
