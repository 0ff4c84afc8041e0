// Package hypervolume implements the WFG-style incremental hypervolume
// engine: a reference point, a running value, and an internal nondominated
// set kept consistent under Insert/Remove, supporting arbitrary dimension.
package hypervolume

import "math"

// Engine maintains the hypervolume of a set of objective vectors w.r.t. a
// fixed reference point, under incremental Insert/Remove.
type Engine struct {
	ref   []float64
	value float64
	// set holds the internal objective-vector set, kept in descending
	// order of coordinate 0 by insertNondominated.
	set [][]float64
}

// New returns an empty Engine against reference point ref.
func New(ref []float64) *Engine {
	r := make([]float64, len(ref))
	copy(r, ref)
	return &Engine{ref: r}
}

// Ref returns the engine's reference point.
func (e *Engine) Ref() []float64 {
	return e.ref
}

// Value returns the current hypervolume.
func (e *Engine) Value() float64 {
	return e.value
}

// Len returns the number of points currently tracked.
func (e *Engine) Len() int {
	return len(e.set)
}

// Contribution returns the exclusive hypervolume p would add if inserted,
// without mutating the engine.
func (e *Engine) Contribution(p []float64) float64 {
	return pointHV(p, e.ref) - setHV(limitSet(e.set, p), e.ref, 1)
}

// Insert adds p to the tracked set if its contribution is nonzero and
// returns that contribution.
func (e *Engine) Insert(p []float64) float64 {
	c := e.Contribution(p)
	if c != 0 {
		v := make([]float64, len(p))
		copy(v, p)
		e.set = insertNondominated(v, e.set)
		e.value += c
	}
	return c
}

// Remove deletes p from the tracked set if present and returns the
// contribution that is lost (and subtracted from value). Returns -1 if p
// was not found.
func (e *Engine) Remove(p []float64) float64 {
	idx := -1
	for i, q := range e.set {
		if equalVec(q, p) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1.0
	}
	e.set = append(e.set[:idx], e.set[idx+1:]...)
	c := e.Contribution(p)
	e.value -= c
	return c
}

func equalVec(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pointHV returns the box volume of p against reference r, product over
// all dimensions of (p[i]-r[i]).
func pointHV(p, r []float64) float64 {
	res := p[0] - r[0]
	for i := 1; i < len(p); i++ {
		res *= p[i] - r[i]
	}
	return res
}

// weaklyDominatesTail reports whether a[1:] >= b[1:] componentwise. Index 0
// is excluded deliberately: within the internal nondominated set, index 0
// is the ordering key and the remaining components determine dominance.
func weaklyDominatesTail(a, b []float64) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

// insertNondominated inserts v into set, which is kept sorted descending by
// coordinate 0, pruning any member weakly dominated (on the tail) by v, and
// dropping v itself if it is weakly dominated by an existing member.
func insertNondominated(v []float64, set [][]float64) [][]float64 {
	n := len(set)
	i := 0
	for i < n && set[i][0] > v[0] {
		if weaklyDominatesTail(set[i], v) {
			return set
		}
		i++
	}
	for i < n && set[i][0] == v[0] {
		if weaklyDominatesTail(set[i], v) {
			return set
		}
		if weaklyDominatesTail(v, set[i]) {
			set[i] = v
			kept := set[:i+1]
			for j := i + 1; j < n; j++ {
				if !weaklyDominatesTail(set[i], set[j]) {
					kept = append(kept, set[j])
				}
			}
			return kept
		}
		i++
	}
	if i == n {
		return append(set, v)
	}

	aux := set[i]
	set[i] = v
	for j := i + 1; j < n; j++ {
		if weaklyDominatesTail(set[i], aux) {
			kept := set[:j]
			for k := j; k < n; k++ {
				if !weaklyDominatesTail(set[i], set[k]) {
					kept = append(kept, set[k])
				}
			}
			return kept
		}
		aux, set[j] = set[j], aux
	}
	if !weaklyDominatesTail(set[i], aux) {
		set = append(set, aux)
	}
	return set
}

// limitSet returns a fresh nondominated set built by clamping every point
// of s componentwise to be no better than v, used to compute the overlap
// volume subtracted when calculating v's contribution.
func limitSet(s [][]float64, v []float64) [][]float64 {
	var res [][]float64
	for _, p := range s {
		aux := make([]float64, len(p))
		for i := range aux {
			if p[i] < v[i] {
				aux[i] = p[i]
			} else {
				aux[i] = v[i]
			}
		}
		res = insertNondominated(aux, res)
	}
	return res
}

// setHV computes the hypervolume of s (assumed sorted descending by
// coordinate 0) against reference r, scaled by carry factor c, dispatching
// by dimension: a direct 1D reduction (an addition to the base algorithm,
// needed for the M=1 boundary case), a 2D sweep, a 3D staircase sweep, or
// an N-D recursive projection for M>3.
func setHV(s [][]float64, r []float64, c float64) float64 {
	if len(s) == 0 {
		return 0
	}
	switch len(s[0]) {
	case 1:
		best := math.Inf(-1)
		for _, p := range s {
			if p[0] > best {
				best = p[0]
			}
		}
		return c * (best - r[0])
	case 2:
		v := 0.0
		r1 := r[1]
		for _, p := range s {
			v += (p[1] - r1) * (p[0] - r[0])
			r1 = p[1]
		}
		return v * c
	case 3:
		return c * setHV3D(s, r)
	default:
		newr := r[1:]
		var newl [][]float64
		v := 0.0
		for _, p := range s {
			newc := c * (p[0] - r[0])
			newp := append([]float64{}, p[1:]...)
			v += newc*pointHV(newp, newr) - setHV(limitSet(newl, newp), newr, newc)
			newl = insertNondominated(newp, newl)
		}
		return v
	}
}

// setHV3D computes a 3D set hypervolume via a staircase sweep over the
// (coord1, coord2) plane as coord0 decreases.
func setHV3D(s [][]float64, r []float64) float64 {
	sentinel := math.MaxFloat64
	aux := [][2]float64{{r[1], sentinel}, {sentinel, r[2]}}

	v, a, z := 0.0, 0.0, 0.0
	lessThan := func(x, y [2]float64) bool { return x[1] > y[1] }

	for _, p := range s {
		v += a * (z - p[0])
		z = p[0]

		tmp := [2]float64{p[1], p[2]}
		it := 0
		for it < len(aux) && lessThan(aux[it], tmp) {
			it++
		}
		jt := it

		r0 := aux[it-1][0]
		r1 := tmp[1]
		for aux[it][0] <= tmp[0] {
			a += (tmp[0] - r0) * (r1 - aux[it][1])
			r0 = aux[it][0]
			r1 = aux[it][1]
			it++
		}
		a += (tmp[0] - r0) * (r1 - aux[it][1])

		if jt != it {
			aux[jt] = tmp
			aux = append(aux[:jt+1], aux[it:]...)
		} else {
			aux = append(aux, [2]float64{})
			copy(aux[it+1:], aux[it:])
			aux[it] = tmp
		}
	}
	v += a * (z - r[0])
	return v
}
