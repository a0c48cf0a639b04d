package network

import (
	"container/heap"
	"math"
)

// ShortestPath returns the minimum-distance path from `from` to `to`
// using Dijkstra's algorithm with a binary heap, O((V + E) log V).
//
// The result starts with from, ends with to, has at least two nodes and
// every consecutive pair is an edge of g. It is nil when either endpoint is
// not in g, when from == to, or when to is unreachable.
//
// Among equally short candidates the node inserted into g first is settled
// first, which makes results reproducible.
func ShortestPath(g *Graph, from, to Code) []Code {
	if g == nil || from == to || !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	r := &runner{
		g:       g,
		dist:    make(map[Code]float64, g.Len()),
		prev:    make(map[Code]Code, g.Len()),
		visited: make(map[Code]bool, g.Len()),
	}
	if !r.run(from, to) {
		return nil
	}
	return r.path(from, to)
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *Graph
	dist    map[Code]float64
	prev    map[Code]Code
	visited map[Code]bool
	pq      nodePQ
}

// run settles nodes in distance order until `to` is settled.
// It reports whether `to` was reached.
func (r *runner) run(from, to Code) bool {
	for _, v := range r.g.order {
		r.dist[v] = math.Inf(1)
	}
	r.dist[from] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: from, dist: 0, order: r.g.index[from]})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == to {
			return true
		}

		for _, v := range r.g.Neighbors(u) {
			if r.visited[v] {
				continue
			}
			alt := r.dist[u] + r.g.adj[u][v]
			if alt < r.dist[v] {
				r.dist[v] = alt
				r.prev[v] = u
				heap.Push(&r.pq, &nodeItem{id: v, dist: alt, order: r.g.index[v]})
			}
		}
	}

	return false
}

// path walks predecessor links back from `to` and reverses them.
func (r *runner) path(from, to Code) []Code {
	var rev []Code
	for at := to; at != from; at = r.prev[at] {
		rev = append(rev, at)
	}
	rev = append(rev, from)

	out := make([]Code, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id    Code
	dist  float64
	order int // insertion index, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].order < pq[j].order
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
