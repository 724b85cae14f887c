// Package axis computes axis ranges and tick marks for plot boxes.
package axis

import (
	"math"
	"strconv"
)

// DefaultTicks is the number of major ticks aimed for on a linear axis.
const DefaultTicks = 5

// Range is an axis interval. Start may be greater than End for reversed
// axes.
type Range struct {
	Start, End float64
}

// Reversed reports whether the range runs from high to low.
func (r Range) Reversed() bool {
	return r.Start > r.End
}

func (r Range) sorted() Range {
	if r.Reversed() {
		return Range{r.End, r.Start}
	}
	return r
}

func (r Range) orient(like Range) Range {
	if like.Reversed() {
		return Range{r.End, r.Start}
	}
	return r
}

// Adjust returns the range a plot box uses for r. Log ranges with a
// non-positive end become [1,10]; a non-positive start becomes end*1e-12.
// Unless exact is set, linear ranges widen to whole tick intervals and log
// ranges to whole decades.
func Adjust(r Range, log, exact bool) Range {
	s := r.sorted()
	if log {
		if s.End <= 0 {
			return Range{1, 10}.orient(r)
		}
		if s.Start <= 0 {
			s.Start = s.End * 1e-12
		}
		if exact {
			return s.orient(r)
		}
		lo := math.Floor(math.Log10(s.Start))
		hi := math.Ceil(math.Log10(s.End))
		if hi <= lo {
			hi = lo + 1
		}
		return Range{math.Pow(10, lo), math.Pow(10, hi)}.orient(r)
	}

	if exact {
		return r
	}
	if s.Start == s.End {
		s = Range{s.Start - 1, s.End + 1}
	}
	d := Interval(s, DefaultTicks)
	s.Start = math.Floor(s.Start/d) * d
	s.End = math.Ceil(s.End/d) * d
	return s.orient(r)
}

// Interval returns a "nice" spacing for about n ticks across r.
func Interval(r Range, n int) float64 {
	s := r.sorted()
	span := niceNum(s.End-s.Start, false)
	if span == 0 || n < 2 {
		return 1
	}
	return niceNum(span/float64(n-1), true)
}

// niceNum finds a number of the form {1,2,5}*10^k close to x.
func niceNum(x float64, round bool) float64 {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// Ticks returns the major tick positions inside r. For a log axis r is
// given in log10 space and ticks fall on whole decades.
func Ticks(r Range, log bool) []float64 {
	s := r.sorted()
	if !isFinite(s.Start) || !isFinite(s.End) || s.Start == s.End {
		return nil
	}

	var ticks []float64
	if log {
		for k := math.Ceil(s.Start - 1e-9); k <= s.End+1e-9; k++ {
			ticks = append(ticks, k)
		}
		return ticks
	}

	d := Interval(s, DefaultTicks)
	first := math.Ceil(s.Start/d - 1e-9)
	for i := first; i*d <= s.End+d*1e-9; i++ {
		ticks = append(ticks, i*d)
	}
	return ticks
}

// Label formats a tick value. Log ticks are given as their exponent.
func Label(v float64, log bool) string {
	if log {
		v = math.Pow(10, v)
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
