// Package rmnk loads and evaluates ρMNK-landscape instances: M correlated
// NK fitness landscapes sharing a common bitstring decision space.
package rmnk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
)

// ErrMalformedInstance is wrapped with context and returned whenever the
// instance file is missing a header, carries a non-numeric token, or has
// the wrong number of tokens for its declared dimensions.
var ErrMalformedInstance = errors.New("rmnk: malformed instance")

// Instance is an immutable, loaded ρMNK-landscape: M objectives over N
// bits with epistasis degree K and inter-objective correlation Rho.
type Instance struct {
	Rho float64
	M   int
	N   int
	K   int

	// links[m][i] holds the K+1 distinct bit indices feeding position i of
	// objective m.
	links [][][]int
	// tables[m][i] holds the 2^(K+1) contribution values for position i of
	// objective m, indexed by the packed value of the linked bits.
	tables [][][]float64
}

// Load parses an instance file at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInstance, err)
	}
	defer f.Close()
	return parse(f)
}

// Parse parses an instance in the on-disk text format from an arbitrary
// reader, for callers (tests, in-memory pipelines) that do not have a file
// path.
func Parse(r io.Reader) (*Instance, error) {
	return parse(r)
}

// tokenizer scans the instance format line by line, so that an entire
// comment line (one whose first word is "c") can be discarded at once
// rather than just its first word.
type tokenizer struct {
	sc    *bufio.Scanner
	queue []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanLines)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for {
		if len(t.queue) > 0 {
			tok := t.queue[0]
			t.queue = t.queue[1:]
			return tok, true
		}
		if !t.sc.Scan() {
			return "", false
		}
		fields := strings.Fields(t.sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		t.queue = fields
	}
}

func parse(r io.Reader) (*Instance, error) {
	t := newTokenizer(r)

	if err := expectHeader(t, "p", "rMNK"); err != nil {
		return nil, err
	}
	rho, err := nextFloat(t, "rho")
	if err != nil {
		return nil, err
	}
	m, err := nextInt(t, "M")
	if err != nil {
		return nil, err
	}
	n, err := nextInt(t, "N")
	if err != nil {
		return nil, err
	}
	k, err := nextInt(t, "K")
	if err != nil {
		return nil, err
	}
	if m <= 0 || n <= 0 || k < 0 || k > n-1 {
		return nil, fmt.Errorf("%w: out-of-range dimensions M=%d N=%d K=%d", ErrMalformedInstance, m, n, k)
	}

	if err := expectHeader(t, "p", "links"); err != nil {
		return nil, err
	}
	links := make([][][]int, m)
	for mi := range links {
		links[mi] = make([][]int, n)
		for i := range links[mi] {
			links[mi][i] = make([]int, k+1)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k+1; j++ {
			for mi := 0; mi < m; mi++ {
				v, err := nextInt(t, "links")
				if err != nil {
					return nil, err
				}
				if v < 0 || v >= n {
					return nil, fmt.Errorf("%w: link index %d out of range [0,%d)", ErrMalformedInstance, v, n)
				}
				links[mi][i][j] = v
			}
		}
	}

	if err := expectHeader(t, "p", "tables"); err != nil {
		return nil, err
	}
	numCombos := 1 << uint(k+1)
	tables := make([][][]float64, m)
	for mi := range tables {
		tables[mi] = make([][]float64, n)
		for i := range tables[mi] {
			tables[mi][i] = make([]float64, numCombos)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < numCombos; j++ {
			for mi := 0; mi < m; mi++ {
				v, err := nextFloat(t, "tables")
				if err != nil {
					return nil, err
				}
				tables[mi][i][j] = v
			}
		}
	}

	return &Instance{Rho: rho, M: m, N: n, K: k, links: links, tables: tables}, nil
}

func expectHeader(t *tokenizer, want ...string) error {
	for _, w := range want {
		tok, ok := t.next()
		if !ok {
			return fmt.Errorf("%w: expected header %q, got EOF", ErrMalformedInstance, w)
		}
		if !strings.EqualFold(tok, w) {
			return fmt.Errorf("%w: expected header token %q, got %q", ErrMalformedInstance, w, tok)
		}
	}
	return nil
}

func nextInt(t *tokenizer, what string) (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("%w: expected %s value, got EOF", ErrMalformedInstance, what)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: expected %s integer, got %q", ErrMalformedInstance, what, tok)
	}
	return v, nil
}

func nextFloat(t *tokenizer, what string) (float64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("%w: expected %s value, got EOF", ErrMalformedInstance, what)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected %s float, got %q", ErrMalformedInstance, what, tok)
	}
	return v, nil
}

// sigma packs the K+1 linked bits of x feeding objective m's position i
// into an integer, with the j-th linked bit occupying bit j.
func (inst *Instance) sigma(m int, x bitstring.Bitstring, i int) int {
	v := 0
	for j, bit := range inst.links[m][i] {
		if x.Get(bit) {
			v |= 1 << uint(j)
		}
	}
	return v
}

// Evaluate returns the M-vector of objective values for decision vector x.
func (inst *Instance) Evaluate(x bitstring.Bitstring) []float64 {
	y := make([]float64, inst.M)
	for m := 0; m < inst.M; m++ {
		sum := 0.0
		for i := 0; i < inst.N; i++ {
			sum += inst.tables[m][i][inst.sigma(m, x, i)]
		}
		y[m] = sum / float64(inst.N)
	}
	return y
}

// Links returns the bit indices feeding objective m's position i. Exposed
// for tests exercising the σ round-trip property.
func (inst *Instance) Links(m, i int) []int {
	return inst.links[m][i]
}
