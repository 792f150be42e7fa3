package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		values []float64
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]float64{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]float64{-3.5}, -3.5, 0},
		{[]float64{}, 0, 0},
		{[]float64{2, 2}, 2, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, v := range c.values {
			s.Push(v)
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Iterations(), len(c.values))
	}
}

func TestLast(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	s.Push(4)
	s.Push(-7)
	is.Equal(s.Last(), -7.0)
	is.True(FuzzyEqual(s.Mean(), -1.5))
}
