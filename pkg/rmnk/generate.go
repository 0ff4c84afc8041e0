package rmnk

import "github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"

// Generate builds a small random instance directly (bypassing the file
// format) for use in tests. Links for each (m,i) are K+1 distinct indices
// in [0,n) including i itself as the first linked bit, matching the shape
// produced by the instance generator this project does not implement.
func Generate(src *rng.Source, m, n, k int, rho float64) *Instance {
	links := make([][][]int, m)
	tables := make([][][]float64, m)
	numCombos := 1 << uint(k+1)
	for mi := 0; mi < m; mi++ {
		links[mi] = make([][]int, n)
		tables[mi] = make([][]float64, n)
		for i := 0; i < n; i++ {
			seen := map[int]bool{i: true}
			l := []int{i}
			for len(l) < k+1 {
				cand := src.IntN(n)
				if !seen[cand] {
					seen[cand] = true
					l = append(l, cand)
				}
			}
			links[mi][i] = l
			tbl := make([]float64, numCombos)
			for c := 0; c < numCombos; c++ {
				tbl[c] = src.Float64()
			}
			tables[mi][i] = tbl
		}
	}
	return &Instance{Rho: rho, M: m, N: n, K: k, links: links, tables: tables}
}
