package search

import (
	"math"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/fiftymoves/lookahead/game"
	"github.com/fiftymoves/lookahead/stats"
)

// logSample is one candidate first move's sampling record, for the optional
// log stream.
type logSample struct {
	Play   string    `json:"play" yaml:"play"`
	Values []float64 `json:"values" yaml:"values,flow"`
	Mean   float64   `json:"mean" yaml:"mean"`
	Stdev  float64   `json:"stdev" yaml:"stdev"`
}

// Stochastic estimates each legal first move by averaging breadth
// randomly-sampled continuations of bounded depth, and returns the first
// move with the lowest average. The top level always minimizes regardless of
// side; that is a fixed policy of this estimator, not a function of whose
// turn it is. With a deterministic chooser the whole search is
// deterministic.
func (s *Solver) Stochastic(side game.Side, board game.Board, flags game.Flags, depth, breadth int, chooser Chooser) (Variation, error) {
	if err := checkSearchArgs(side, depth); err != nil {
		return Variation{}, err
	}
	if breadth <= 0 {
		return Variation{}, ErrInvalidBreadth
	}
	if chooser == nil {
		return Variation{}, ErrNilChooser
	}
	s.totalNodes = 0
	if depth == 0 {
		return s.leaf(board), nil
	}
	moves := s.GenerateMoves(side, board, flags)
	if len(moves) == 0 {
		return s.leaf(board), nil
	}
	s.totalNodes++

	bestAvg := math.Inf(1)
	var bestSeq []game.Move
	explored := MoveTree{}

	for _, m := range moves {
		nextSide, nextBoard, nextFlags := s.rules.Apply(side, board, m.From, m.To, flags, m.Promotion)
		subtree := MoveTree{}
		explored[m.Key()] = subtree

		var st stats.Statistic
		var values []float64
		var lastPath []game.Move
		for i := 0; i < breadth; i++ {
			sample := s.stochasticPath(nextSide, nextBoard, nextFlags, depth-1, breadth, chooser)
			// Sampled continuations need not be distinct; colliding keys
			// overwrite.
			for k, sub := range sample.Explored {
				subtree[k] = sub
			}
			st.Push(sample.Value)
			lastPath = sample.Moves
			if s.logStream != nil {
				values = append(values, sample.Value)
			}
		}
		if s.logStream != nil {
			s.writeSampleLog(logSample{
				Play:   m.String(),
				Values: values,
				Mean:   st.Mean(),
				Stdev:  st.Stdev(),
			})
		}
		if st.Mean() < bestAvg {
			bestAvg = st.Mean()
			bestSeq = append([]game.Move{m}, lastPath...)
		}
	}
	log.Debug().
		Int("depth", depth).
		Int("breadth", breadth).
		Int("nodes", s.totalNodes).
		Float64("value", bestAvg).
		Str("pv", Variation{Moves: bestSeq}.String()).
		Msg("stochastic-done")
	return Variation{Value: bestAvg, Moves: bestSeq, Explored: explored}, nil
}

// stochasticPath performs one random descent of at most depth moves. Each
// call explores exactly one chain, not a subtree; the chooser picks the move
// at every level.
func (s *Solver) stochasticPath(side game.Side, board game.Board, flags game.Flags, depth, breadth int, chooser Chooser) Variation {
	s.totalNodes++
	if depth == 0 {
		return s.leaf(board)
	}
	moves := s.GenerateMoves(side, board, flags)
	if len(moves) == 0 {
		return s.leaf(board)
	}
	m := chooser(moves)
	nextSide, nextBoard, nextFlags := s.rules.Apply(side, board, m.From, m.To, flags, m.Promotion)
	child := s.stochasticPath(nextSide, nextBoard, nextFlags, depth-1, breadth, chooser)
	return Variation{
		Value:    child.Value,
		Moves:    append([]game.Move{m}, child.Moves...),
		Explored: MoveTree{m.Key(): child.Explored},
	}
}

func (s *Solver) writeSampleLog(entry logSample) {
	out, err := yaml.Marshal([]logSample{entry})
	if err != nil {
		log.Err(err).Msg("could not marshal sample log")
		return
	}
	if _, err := s.logStream.Write(out); err != nil {
		log.Err(err).Msg("could not write sample log")
	}
}
