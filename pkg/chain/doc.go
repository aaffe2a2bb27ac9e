// Package chain models a linear, doubly linked chain of lamps and the
// symmetric ripple traversal over it.
//
// Lamps live in an arena owned by their Chain and refer to neighbors by
// index, so a single *Node handle keeps the whole chain reachable. The chain
// is built once and never relinked.
package chain
