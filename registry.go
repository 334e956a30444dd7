package pmt

// registry maps global node ids to their hashes. Ids are contiguous and known
// before construction, so the whole tree is backed by a single slice.
type registry[H any] struct {
	nodes []H
}

func newRegistry[H any](size int) *registry[H] {
	return &registry[H]{nodes: make([]H, size)}
}

func (r *registry[H]) put(id int, h H) {
	r.nodes[id] = h
}

func (r *registry[H]) get(id int) H {
	return r.nodes[id]
}

// span returns the backing sub-slice for the ids [start, end).
// Callers must not retain it past construction.
func (r *registry[H]) span(start, end int) []H {
	return r.nodes[start:end:end]
}

func (r *registry[H]) count() int {
	return len(r.nodes)
}
