package search

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/fiftymoves/lookahead/game"
)

// firstChooser is a deterministic stand-in for a random chooser.
func firstChooser(moves []game.Move) game.Move {
	return moves[0]
}

func TestStochasticBreadthOne(t *testing.T) {
	is := is.New(t)
	r := buildUniform(3, 3)
	s := NewSolver(r)

	// With breadth 1 and a deterministic chooser, each first move's average
	// is exactly the value of its single sampled path: always descending
	// through the first edge.
	walkFirst := func(node, depth int) float64 {
		for depth > 0 && len(r.edges[node]) > 0 {
			node = r.edges[node][0].child
			depth--
		}
		return r.vals[node]
	}

	depth := 3
	want := walkFirst(r.edges[0][0].child, depth-1)
	wantMove := r.edges[0][0].mv
	for i := 1; i < 3; i++ {
		v := walkFirst(r.edges[0][i].child, depth-1)
		if v < want {
			want = v
			wantMove = r.edges[0][i].mv
		}
	}

	v, err := s.Stochastic(game.White, 0, nil, depth, 1, firstChooser)
	is.NoErr(err)
	is.Equal(v.Value, want)
	is.Equal(len(v.Moves), depth)
	is.Equal(v.Moves[0], wantMove)
}

func TestStochasticAlwaysMinimizes(t *testing.T) {
	is := is.New(t)
	// The maximizer would pick the 10; the stochastic estimator's top level
	// minimizes no matter whose turn it is.
	r := &scripted{
		edges: map[int][]scriptMove{
			0: {
				{mv: mv(0, 0), child: 1},
				{mv: mv(1, 1), child: 2},
			},
		},
		vals: map[int]float64{1: 10, 2: 2},
	}
	s := NewSolver(r)

	for _, side := range []game.Side{game.White, game.Black} {
		v, err := s.Stochastic(side, 0, nil, 1, 5, RandomChooser())
		is.NoErr(err)
		is.Equal(v.Value, 2.0)
		is.Equal(v.Moves, []game.Move{mv(1, 1)})
	}
}

func TestStochasticAuditChains(t *testing.T) {
	is := is.New(t)
	r := buildUniform(2, 3)
	s := NewSolver(r)

	v, err := s.Stochastic(game.White, 0, nil, 3, 4, firstChooser)
	is.NoErr(err)

	// Every first move is fully enumerated, and each carries the sampled
	// continuation chain: one key per level since the chooser is fixed.
	is.Equal(len(v.Explored), 2)
	for _, e := range r.edges[0] {
		chain, ok := v.Explored[e.mv.Key()]
		is.True(ok)
		for depth := 2; depth > 0; depth-- {
			is.Equal(len(chain), 1)
			for _, sub := range chain {
				chain = sub
			}
		}
		is.Equal(len(chain), 0)
	}
}

func TestStochasticSampleLog(t *testing.T) {
	is := is.New(t)
	s := NewSolver(buildUniform(2, 2))

	var buf bytes.Buffer
	s.SetLogStream(&buf)
	_, err := s.Stochastic(game.White, 0, nil, 2, 3, firstChooser)
	is.NoErr(err)

	out := buf.String()
	// One record per candidate first move.
	is.Equal(strings.Count(out, "play:"), 2)
	is.True(strings.Contains(out, "mean:"))
	is.True(strings.Contains(out, "values:"))
}

func TestStochasticPathDepthZero(t *testing.T) {
	is := is.New(t)
	r := buildUniform(2, 1)
	s := NewSolver(r)

	v := s.stochasticPath(game.White, 0, nil, 0, 1, firstChooser)
	is.Equal(v.Value, r.vals[0])
	is.Equal(len(v.Moves), 0)
	is.Equal(len(v.Explored), 0)
}

func TestStochasticPathSingleChain(t *testing.T) {
	is := is.New(t)
	r := buildUniform(3, 2)
	s := NewSolver(r)

	v := s.stochasticPath(game.White, 0, nil, 2, 1, firstChooser)
	is.Equal(len(v.Moves), 2)
	is.Equal(v.Moves[0], r.edges[0][0].mv)
	// The audit contribution is a single chain, not a subtree.
	is.Equal(v.Explored.Size(), 2)
	is.Equal(v.Value, r.vals[r.edges[r.edges[0][0].child][0].child])
}
