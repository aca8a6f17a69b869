// Package search implements the feasible-coloring checker and the outer
// bad-list-assignment search driver: the algorithmic core of deciding
// f-choosability.
package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/sghartke/fchoosability/bitset"
	"github.com/sghartke/fchoosability/colorclass"
	"github.com/sghartke/fchoosability/fgraph"
)

// Witness describes a full bad list assignment: one connected-subgraph
// colorability class per color, and the final per-vertex list-fill counts
// at the moment the assignment was discovered to have no feasible
// coloring.
type Witness struct {
	Classes []bitset.Set
	L       []int
}

// Result is the outcome of running a Driver to completion.
type Result struct {
	// Choosable is true iff no bad list assignment was found.
	Choosable bool

	// Witness is set iff !Choosable: the offending list assignment.
	Witness *Witness

	// Count is the number of search-tree nodes (candidate subgraphs)
	// visited.
	Count uint64

	// NumFeasible is the number of partial assignments found to admit a
	// feasible coloring.
	NumFeasible uint64
}

// Driver is the outer bad-list-assignment search loop: SearchDriver in
// spec.md. It maintains a stack of colorclass.Frames, extends the list
// assignment by one color at a time, and calls the feasible-coloring
// checker after each extension.
type Driver struct {
	g   *fgraph.Graph
	cfg *config

	frames   []*colorclass.Frame
	curColor int

	assignedColor []int
	colorClass    []bitset.Set
}

// NewDriver builds a Driver for g, preallocating a stack of
// Σ f[v] + 1 colorclass.Frames (one slot of headroom beyond the maximum
// depth the Small Pot Lemma permits).
func NewDriver(g *fgraph.Graph, opts ...Option) (*Driver, error) {
	if g.N == 0 {
		return nil, fmt.Errorf("search.NewDriver: %w", ErrInvalidGraph)
	}

	sum := 0
	for _, fv := range g.F {
		sum += fv
	}

	d := &Driver{
		g:             g,
		cfg:           newConfig(opts...),
		frames:        make([]*colorclass.Frame, sum+1),
		assignedColor: make([]int, g.N),
		colorClass:    make([]bitset.Set, sum+1),
	}
	for i := range d.frames {
		d.frames[i] = colorclass.New(g.Neighbors)
	}
	d.frames[0].InitializeRoot(g.F)

	return d, nil
}

// hasFeasibleColoring decides whether a map c: V -> [0, curColor] exists
// such that v is in frame c(v)'s colorability class for every v, and no
// edge is monochromatic. Chronological backtracking over vertices in index
// order, per spec.md §4.4.
func (d *Driver) hasFeasibleColoring() bool {
	for i := 0; i <= d.curColor; i++ {
		d.colorClass[i] = 0
	}

	v := 0
	d.assignedColor[0] = 0

	for {
		if d.assignedColor[v] <= d.curColor {
			k := d.assignedColor[v]
			if d.frames[k].ColorabilityClass.Has(v) && (d.colorClass[k]&d.g.PrevNeighbors[v]) == 0 {
				d.colorClass[k] = d.colorClass[k].With(v)
				v++
				if v >= d.g.N {
					return true
				}
				d.assignedColor[v] = 0
			} else {
				d.assignedColor[v]++
			}
		} else {
			v--
			if v < 0 {
				return false
			}
			d.colorClass[d.assignedColor[v]] = d.colorClass[d.assignedColor[v]].Without(v)
			d.assignedColor[v]++
		}
	}
}

// Run executes the search to completion and returns its verdict. It
// respects ctx cancellation between search-tree nodes (spec.md's
// cancellation model only supports cancellation at stream boundaries, which
// this exposes via ctx).
func (d *Driver) Run(ctx context.Context) (Result, error) {
	n := d.g.N
	odometer := d.cfg.modulus
	sharding := d.cfg.modulus > 0

	var count, numFeasible uint64

	for d.curColor >= 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		count++
		d.cfg.metrics.incNodesVisited()

		if count&0xFFFFF == 0 {
			d.cfg.logger.Debug().
				Uint64("count", count).
				Uint64("num_feasible", numFeasible).
				Int("cur_color", d.curColor).
				Msg("search progress")
		}

		cur := d.frames[d.curColor]

		if !cur.GenerateSubgraph() {
			d.curColor--
			continue
		}
		if !cur.ColorabilityClass.SubsetOf(cur.EligibleVertices) {
			return Result{}, fmt.Errorf("search: generated colorability class %x not contained in eligible set %x: %w",
				cur.ColorabilityClass, cur.EligibleVertices, ErrInternalInvariant)
		}

		if d.hasFeasibleColoring() {
			numFeasible++
			d.cfg.metrics.incFeasibleColorings()
			continue
		}

		multiplicity := bits.OnesCount64(uint64(cur.ColorabilityClass))
		for ; multiplicity > 0; multiplicity-- {
			if sharding && d.curColor == d.cfg.splitlevel {
				odometer--
				if odometer < 0 {
					odometer = d.cfg.modulus - 1
				}
				if odometer != d.cfg.residue {
					break
				}
				d.cfg.logger.Debug().
					Int("cur_color", d.curColor).
					Int("odometer", odometer).
					Msg("odometer tick")
			}

			d.frames[d.curColor+1].SetupNextFrom(d.frames[d.curColor], d.g.F)
			d.curColor++

			for v := 0; v < n; v++ {
				if d.frames[d.curColor].L[v] > d.g.F[v] {
					return Result{}, fmt.Errorf("search: list-fill count L[%d]=%d exceeds f[%d]=%d: %w",
						v, d.frames[d.curColor].L[v], v, d.g.F[v], ErrInternalInvariant)
				}
			}

			if d.frames[d.curColor].EligibleVertices == 0 {
				badFrame := d.curColor
				d.curColor--
				w := d.buildWitness(badFrame)

				d.cfg.logger.Info().
					Int("colors", len(w.Classes)).
					Msg("bad list assignment found")
				d.cfg.metrics.incBadAssignments()
				d.cfg.metrics.incGraphsChecked()

				return Result{Choosable: false, Witness: w, Count: count, NumFeasible: numFeasible}, nil
			}

			// Small Pot Lemma: cur_color colors already placed leave at
			// most n-cur_color vertices to color; once cur_color >= n-1
			// no further colorability class is needed.
			if d.curColor >= n-1 {
				d.curColor--
				break
			}

			nextFrame := d.frames[d.curColor]
			if nextFrame.ColorabilityClass.SubsetOf(nextFrame.EligibleVertices) {
				if d.hasFeasibleColoring() {
					break
				}
				// else: fall through, raising this class's multiplicity
				// again on the next iteration.
			} else {
				break
			}
		}

		if multiplicity == 0 {
			// The class has been added up to its size in multiplicity;
			// its vertices can always be colored, so they need no further
			// colors in their lists.
			final := d.frames[d.curColor]
			final.EligibleVertices &^= final.ColorabilityClass
		}
	}

	d.cfg.metrics.incGraphsChecked()
	return Result{Choosable: true, Count: count, NumFeasible: numFeasible}, nil
}

// buildWitness snapshots the fully-decided colorability classes
// frames[0..d.curColor] (d.curColor must already be backed off from
// badFrame) plus the per-vertex list-fill counts at badFrame, the frame
// whose EligibleVertices went empty and so triggered the bad assignment.
func (d *Driver) buildWitness(badFrame int) *Witness {
	classes := make([]bitset.Set, d.curColor+1)
	for i := 0; i <= d.curColor; i++ {
		classes[i] = d.frames[i].ColorabilityClass
	}
	l := append([]int(nil), d.frames[badFrame].L...)
	return &Witness{Classes: classes, L: l}
}
