package search

import "container/heap"

// pushItem and popItem wrap container/heap so State's methods stay free
// of the heap.Interface ceremony; the lazy-deletion discipline (ignore
// already-expanded vertices at pop time) lives in State.Pop/PeekKey, not
// here. This mirrors the teacher's container/heap + "push duplicates,
// skip stale entries on pop" pattern used by dijkstra.nodePQ.
func pushItem(h *heapSlice, it item) {
	heap.Push(h, it)
}

func popItem(h *heapSlice) item {
	return heap.Pop(h).(item)
}
