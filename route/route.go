package route

import (
	"container/heap"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/spatial"
)

// ShortestPath returns a minimum-length route from one member node to
// another along the graph's edges, weighted by its Distance metric. A route
// from a node to itself is that single node with length zero.
func ShortestPath[N comparable](g spatial.Graph[N], from, to N, opts ...Option) (Path[N], error) {
	var zero Path[N]
	cfg := DefaultOptions()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return zero, err
		}
	}
	if g == nil {
		return zero, ErrNilGraph
	}
	if !g.Contains(from) || !g.Contains(to) {
		return zero, ErrUnknownNode
	}

	r := &runner[N]{
		g:       g,
		limit:   cfg.MaxDistance,
		dist:    map[N]float64{from: 0},
		prev:    make(map[N]N),
		settled: make(map[N]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem[N]{node: from})

	if !r.run(to) {
		return zero, ErrNoRoute
	}
	return Path[N]{Nodes: r.unwind(from, to), Length: r.dist[to]}, nil
}

// NearestRoute snaps two world positions to their nearest nodes and routes
// between them.
func NearestRoute[N comparable](g spatial.Graph[N], from, to geom.Point, opts ...Option) (Path[N], error) {
	var zero Path[N]
	if g == nil {
		return zero, ErrNilGraph
	}
	a, ok := g.FindNearestNode(from)
	if !ok {
		return zero, ErrUnknownNode
	}
	b, ok := g.FindNearestNode(to)
	if !ok {
		return zero, ErrUnknownNode
	}
	return ShortestPath(g, a, b, opts...)
}

// runner holds the mutable state of one search.
type runner[N comparable] struct {
	g       spatial.Graph[N]
	limit   float64
	dist    map[N]float64
	prev    map[N]N
	settled map[N]bool
	pq      pqueue[N]
}

// run executes the main loop, returning whether the destination was
// finalized within the limit.
func (r *runner[N]) run(to N) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem[N])
		u := item.node
		if r.settled[u] {
			// Stale entry from a lazy decrease-key.
			continue
		}
		if item.dist > r.limit {
			break
		}
		r.settled[u] = true
		if u == to {
			return true
		}
		r.relax(u)
	}
	return false
}

// relax offers u's finalized distance to each of its neighbors.
func (r *runner[N]) relax(u N) {
	base := r.dist[u]
	for _, v := range r.g.Neighbors(u) {
		if r.settled[v] {
			continue
		}
		nd := base + r.g.Distance(u, v)
		if nd > r.limit {
			continue
		}
		if best, seen := r.dist[v]; seen && nd >= best {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &pqItem[N]{node: v, dist: nd})
	}
}

// unwind reconstructs the node sequence from the predecessor chain.
func (r *runner[N]) unwind(from, to N) []N {
	var rev []N
	for at := to; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == from {
			break
		}
	}
	out := make([]N, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

// pqItem is one heap entry: a node and the tentative distance it was pushed
// with.
type pqItem[N comparable] struct {
	node N
	dist float64
}

// pqueue is a min-heap of entries ordered by distance ascending.
type pqueue[N comparable] []*pqItem[N]

func (q pqueue[N]) Len() int            { return len(q) }
func (q pqueue[N]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pqueue[N]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pqueue[N]) Push(x interface{}) { *q = append(*q, x.(*pqItem[N])) }
func (q *pqueue[N]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
