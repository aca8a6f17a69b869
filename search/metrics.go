package search

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes prometheus counters for search progress. A nil *Metrics
// is valid everywhere it's accepted; every method is a no-op in that case,
// so instrumentation costs nothing beyond one nil check per event.
type Metrics struct {
	GraphsChecked    prometheus.Counter
	BadAssignments   prometheus.Counter
	NodesVisited     prometheus.Counter
	FeasibleColorings prometheus.Counter
}

// NewMetrics builds a Metrics registered against reg under the given
// namespace, e.g. "fchoosability".
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		GraphsChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_checked_total",
			Help:      "Number of graphs whose f-choosability has been decided.",
		}),
		BadAssignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bad_assignments_total",
			Help:      "Number of graphs found NOT f-choosable.",
		}),
		NodesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_nodes_total",
			Help:      "Number of search-tree nodes (candidate subgraphs) visited.",
		}),
		FeasibleColorings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feasible_colorings_total",
			Help:      "Number of partial list assignments found to admit a feasible coloring.",
		}),
	}
	reg.MustRegister(m.GraphsChecked, m.BadAssignments, m.NodesVisited, m.FeasibleColorings)
	return m
}

func (m *Metrics) incNodesVisited() {
	if m != nil {
		m.NodesVisited.Inc()
	}
}

func (m *Metrics) incFeasibleColorings() {
	if m != nil {
		m.FeasibleColorings.Inc()
	}
}

func (m *Metrics) incGraphsChecked() {
	if m != nil {
		m.GraphsChecked.Inc()
	}
}

func (m *Metrics) incBadAssignments() {
	if m != nil {
		m.BadAssignments.Inc()
	}
}
