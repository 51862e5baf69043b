package shortcut

// edgeKey packs a (tail, head) pair into one uint64 map key.
func edgeKey(tail, head uint32) uint64 {
	return uint64(tail)<<32 | uint64(head)
}

// Table is the append-only middle-vertex map built during contraction:
// middle[(tail, head)] = the vertex contracted to introduce that
// shortcut. It is immutable once contraction finishes.
type Table struct {
	middle map[uint64]uint32
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{middle: make(map[uint64]uint32)}
}

// Record stores that the shortcut (tail, head) was introduced with
// middle vertex m. Recording the same (tail, head) twice overwrites the
// middle — callers only record a shortcut once it has actually been
// installed into the live graph, which already enforces the "keep
// minimum on reinstall" contract (digraph.InstallShortcut), so by the
// time Record is called the weight decision is already final.
func (t *Table) Record(tail, head, middle uint32) {
	t.middle[edgeKey(tail, head)] = middle
}

// Middle reports the middle vertex for shortcut (tail, head), if any.
func (t *Table) Middle(tail, head uint32) (middle uint32, isShortcut bool) {
	m, ok := t.middle[edgeKey(tail, head)]

	return m, ok
}

// Len reports how many shortcuts the table holds.
func (t *Table) Len() int { return len(t.middle) }
