package contour

import "github.com/paulmach/orb"

// Level is the iso value traced between empty (0) and occupied (1) cells.
const Level = 0.5

// Corner bits of one marching-squares cell, with (x, y) the upper-left
// sample:
//
//	ul (x, y)     ur (x, y+1)
//	ll (x+1, y)   lr (x+1, y+1)
const (
	ul = 1 << iota
	ur
	lr
	ll
)

type edge int

const (
	top    edge = iota // ul-ur
	right              // ur-lr
	bottom             // ll-lr
	left               // ul-ll
)

// cases lists the segments of every corner configuration. The saddles (5
// and 10) keep the occupied corners apart: each occupied corner is cut off
// by its own segment and the empty corners connect through the middle.
var cases = [16][][2]edge{
	0:            nil,
	ul:           {{top, left}},
	ur:           {{top, right}},
	ul | ur:      {{left, right}},
	lr:           {{right, bottom}},
	ul | lr:      {{top, left}, {right, bottom}},
	ur | lr:      {{top, bottom}},
	ul | ur | lr: {{left, bottom}},
	ll:           {{left, bottom}},
	ul | ll:      {{top, bottom}},
	ur | ll:      {{top, right}, {left, bottom}},
	ul | ur | ll: {{right, bottom}},
	lr | ll:      {{left, right}},
	ul | lr | ll: {{top, right}},
	ur | lr | ll: {{top, left}},
	15:           nil,
}

type segment struct {
	a, b orb.Point
}

// field is the grid surrounded by one empty cell on every side, so every
// boundary closes into a loop.
type field struct {
	g *Grid
}

func (f field) value(x, y int) float64 {
	if f.g.At(x-1, y-1) {
		return 1
	}
	return 0
}

// crossing interpolates the Level crossing between samples p (value a) and
// q (value b).
func crossing(p, q orb.Point, a, b float64) orb.Point {
	t := (Level - a) / (b - a)
	return orb.Point{p[0] + t*(q[0]-p[0]), p[1] + t*(q[1]-p[1])}
}

// segments runs marching squares over the padded grid and returns the
// crossing segments in row-major cell order, in unpadded coordinates.
func (f field) segments() []segment {
	n := f.g.Size + 2
	var segs []segment

	for x := 0; x < n-1; x++ {
		for y := 0; y < n-1; y++ {
			vul, vur := f.value(x, y), f.value(x, y+1)
			vll, vlr := f.value(x+1, y), f.value(x+1, y+1)

			idx := 0
			if vul > Level {
				idx |= ul
			}
			if vur > Level {
				idx |= ur
			}
			if vlr > Level {
				idx |= lr
			}
			if vll > Level {
				idx |= ll
			}
			if cases[idx] == nil {
				continue
			}

			// Sample positions shifted back into the unpadded frame.
			fx, fy := float64(x-1), float64(y-1)
			pul, pur := orb.Point{fx, fy}, orb.Point{fx, fy + 1}
			pll, plr := orb.Point{fx + 1, fy}, orb.Point{fx + 1, fy + 1}

			point := func(e edge) orb.Point {
				switch e {
				case top:
					return crossing(pul, pur, vul, vur)
				case right:
					return crossing(pur, plr, vur, vlr)
				case bottom:
					return crossing(pll, plr, vll, vlr)
				default:
					return crossing(pul, pll, vul, vll)
				}
			}

			for _, s := range cases[idx] {
				segs = append(segs, segment{a: point(s[0]), b: point(s[1])})
			}
		}
	}
	return segs
}

// stitch joins segments that share endpoints into polylines. Closed loops
// end with a repeat of their first point. Loops are emitted in the order of
// their first segment.
func stitch(segs []segment) [][]orb.Point {
	at := make(map[orb.Point][]int, len(segs)*2)
	for i, s := range segs {
		at[s.a] = append(at[s.a], i)
		at[s.b] = append(at[s.b], i)
	}

	used := make([]bool, len(segs))
	next := func(p orb.Point) (int, bool) {
		for _, i := range at[p] {
			if !used[i] {
				return i, true
			}
		}
		return 0, false
	}

	var lines [][]orb.Point
	for i, s := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		line := []orb.Point{s.a, s.b}
		start, cur := s.a, s.b

		for !cur.Equal(start) {
			j, ok := next(cur)
			if !ok {
				break
			}
			used[j] = true
			if segs[j].a.Equal(cur) {
				cur = segs[j].b
			} else {
				cur = segs[j].a
			}
			line = append(line, cur)
		}
		lines = append(lines, line)
	}
	return lines
}

// Trace returns the iso-lines of g at Level in grid coordinates.
func Trace(g *Grid) [][]orb.Point {
	if g == nil {
		return nil
	}
	return stitch(field{g: g}.segments())
}
