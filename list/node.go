package list

// node is a list cell. Its links do not own their targets, the List owns every node.
type node[V any] struct {
	next, prev *node[V]
	value      V
}

// newNode allocates a detached node holding v.
func newNode[V any](v V) *node[V] {
	return &node[V]{value: v}
}

// release detaches n and moves its value out.
// n must already be unreachable from its list.
func (n *node[V]) release() V {
	v := n.value
	var zero V
	n.value = zero
	n.next = nil
	n.prev = nil
	return v
}
