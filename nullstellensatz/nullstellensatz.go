// Package nullstellensatz declares the interface of the Combinatorial
// Nullstellensatz variant of f-choosability checking, without implementing
// it: computing the leading coefficient of a graph polynomial is an exact
// cover problem, delegated to an external exact-cover solver collaborator
// (the upstream project used libexact). This package exists so other
// packages can depend on the interface shape without depending on that
// collaborator's implementation.
package nullstellensatz

import (
	"context"
	"errors"

	"github.com/sghartke/fchoosability/fgraph"
)

// ErrNotImplemented is returned by every LeadingCoefficient implementation
// in this package: the exact-cover solving itself is out of scope.
var ErrNotImplemented = errors.New("nullstellensatz: not implemented, requires an external exact-cover solver")

// Monomial is one term of the graph polynomial sum(e=uv) (x_u - x_v),
// expanded and reduced modulo x_i^{f[i]}: a choice of, for each edge,
// whether the degree was contributed by its first or second endpoint.
type Monomial struct {
	// Degree[v] is v's exponent in this monomial.
	Degree []int

	// Sign is +1 or -1, the parity of how many edges contributed -x_v.
	Sign int
}

// Solver computes the leading coefficient of the graph polynomial of g: the
// sum, over monomials of maximal total degree sum(f[v]-1), of Sign for each
// monomial whose Degree equals f[v]-1 at every vertex. A nonzero leading
// coefficient, together with G.F[v] >= deg(v)+1 for every v, implies g is
// f-choosable by the Combinatorial Nullstellensatz.
//
// Implementations are expected to reduce this to an exact cover instance
// (two columns per edge, one row per vertex with required count f[v]-1,
// one row per edge with required count 1) and hand it to an external
// solver; this package supplies no such solver.
type Solver interface {
	LeadingCoefficient(ctx context.Context, g *fgraph.Graph) (int, error)
}

// Unimplemented is a Solver that always reports ErrNotImplemented. It lets
// callers wire a nullstellensatz.Solver dependency today and swap in a real
// exact-cover-backed implementation later without changing call sites.
type Unimplemented struct{}

func (Unimplemented) LeadingCoefficient(ctx context.Context, g *fgraph.Graph) (int, error) {
	return 0, ErrNotImplemented
}
