package subgraph

import (
	"strconv"

	"github.com/sghartke/fchoosability/bfs"
	"github.com/sghartke/fchoosability/bitset"
	"github.com/sghartke/fchoosability/core"
)

// VerifyConnected reports whether sub, interpreted as an induced subgraph of
// the graph described by neighbors, is connected when rooted at root. It
// exists to check the Generator's central invariant (every subgraph it
// yields is a connected induced subgraph) against an independent
// implementation, rather than trusting the generator's own bookkeeping.
func VerifyConnected(neighbors []bitset.Set, sub bitset.Set, root int) (bool, error) {
	if !sub.Has(root) {
		return false, nil
	}

	g := core.NewGraph()
	for v := 0; v < len(neighbors); v++ {
		if !sub.Has(v) {
			continue
		}
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return false, err
		}
	}
	for v := 0; v < len(neighbors); v++ {
		if !sub.Has(v) {
			continue
		}
		for u := v + 1; u < len(neighbors); u++ {
			if sub.Has(u) && neighbors[v].Has(u) {
				if _, err := g.AddEdge(strconv.Itoa(v), strconv.Itoa(u), 0); err != nil {
					return false, err
				}
			}
		}
	}

	res, err := bfs.BFS(g, strconv.Itoa(root))
	if err != nil {
		return false, err
	}
	return len(res.Order) == sub.Len(), nil
}
