package network

// Prune returns a new graph restricted to the given nodes.
//
// Nodes absent from g are ignored. An edge is kept only when both of its
// endpoints are kept; weights are copied unchanged. g is not modified.
// Nodes keep g's insertion order regardless of the order of keep.
func Prune(g *Graph, keep []Code) *Graph {
	out := NewGraph()
	if g == nil || len(keep) == 0 {
		return out
	}

	retained := make(map[Code]bool, len(keep))
	for _, c := range keep {
		if g.HasNode(c) {
			retained[c] = true
		}
	}

	for _, c := range g.order {
		if retained[c] {
			out.AddNode(c)
		}
	}
	for _, a := range out.order {
		for b, w := range g.adj[a] {
			if retained[b] {
				out.adj[a][b] = w
			}
		}
	}

	return out
}
