package milp

import (
	"bufio"
	"io"
	"strconv"
)

// FromStream parses a Problem from a whitespace-separated token stream
// (spec section 4.10 / 6): n, m, sense (0=min, 1=max), m doubles for c, n*m
// doubles for A (row-major), n doubles for b, then m integers in {0,1,2}
// for variable kind (Real, Integer, Binary). On success it normalizes the
// RHS and finds an initial basis (Phase-I if necessary) before returning.
func FromStream(r io.Reader) (*Problem, error) {
	sc := newTokenScanner(r)

	n, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	m, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > MaxN || m <= 0 || m > MaxM {
		return nil, newParseError("dimensions out of range: n=%d m=%d", n, m)
	}

	senseTok, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	var sense Sense
	switch senseTok {
	case 0:
		sense = Minimize
	case 1:
		sense = Maximize
	default:
		return nil, newParseError("invalid sense token: %d", senseTok)
	}

	p := NewProblem(n, m, sense)

	for j := 0; j < m; j++ {
		v, err := sc.nextFloat()
		if err != nil {
			return nil, err
		}
		p.C[j] = v
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v, err := sc.nextFloat()
			if err != nil {
				return nil, err
			}
			p.A.Set(i, j, v)
		}
	}

	for i := 0; i < n; i++ {
		v, err := sc.nextFloat()
		if err != nil {
			return nil, err
		}
		p.B[i] = v
	}

	for j := 0; j < m; j++ {
		k, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		v, err := variableFromKindToken(k)
		if err != nil {
			return nil, err
		}
		p.Vars.Push(v)
	}

	p.normalizeRHS()
	if err := p.ensureInitialBasis(); err != nil {
		return nil, err
	}

	return p, nil
}

func variableFromKindToken(k int) (Variable, error) {
	switch k {
	case 0:
		return NewRealPositive(0), nil
	case 1:
		return NewIntegerPositive(0), nil
	case 2:
		return NewBinary(), nil
	default:
		return Variable{}, newParseError("invalid variable kind token: %d", k)
	}
}

// tokenScanner pulls whitespace-separated numeric tokens off r using
// bufio.Scanner's word-splitting, converting ParseError on malformed or
// exhausted input.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", newParseError("read error: %v", err)
		}
		return "", newParseError("unexpected end of input")
	}
	return t.sc.Text(), nil
}

func (t *tokenScanner) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, newParseError("expected integer, got %q", tok)
	}
	return v, nil
}

func (t *tokenScanner) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, newParseError("expected number, got %q", tok)
	}
	return v, nil
}
