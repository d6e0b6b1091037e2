// Package coords reads polygon coordinate files. A coordinate file holds a
// single literal expression describing a list of (x, y) pairs, e.g.
//
//	[(0, 0), (10, 0), (10, 10), (0, 10)]
//
// The parser is a strict tokenizer over that grammar only; file contents are
// never evaluated as code.
package coords

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"polycheck/geom"
)

// Error categories, classified by callers with errors.Is.
var (
	// ErrParse marks content that is not a syntactically valid literal.
	ErrParse = errors.New("parse failure")

	// ErrShape marks content that parsed as a literal but is not a list of
	// 2-element numeric pairs.
	ErrShape = errors.New("not a list of (x, y) pairs")
)

// ReadFile reads the whole file at path and parses it as a coordinate list.
func ReadFile(path string) ([]geom.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open coordinate file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses a coordinate list literal. Pairs may be written with
// parentheses or brackets; whitespace is ignored between tokens and a
// trailing comma after the last pair is accepted.
func Parse(src string) ([]geom.Point, error) {
	p := &parser{src: src}
	p.skipSpace()

	switch {
	case p.eof():
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	case p.peek() == '[':
		// fall through to the list below
	case p.peek() == '(':
		return nil, fmt.Errorf("%w: top-level value is a tuple, not a list", ErrShape)
	case p.peek() == '"' || p.peek() == '\'':
		if err := p.scanString(); err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: top-level value is a string", ErrShape)
	case isNumberStart(p.peek()):
		if _, err := p.scanNumber(); err != nil {
			return nil, err
		}
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: top-level value is a bare number", ErrShape)
	default:
		return nil, p.syntaxError("expected '['")
	}

	pts, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return pts, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool  { return p.pos >= len(p.src) }
func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) syntaxError(msg string) error {
	rest := p.src[p.pos:]
	if rest == "" {
		return fmt.Errorf("%w: %s at end of input", ErrParse, msg)
	}
	return fmt.Errorf("%w: %s at offset %d (near %q)", ErrParse, msg, p.pos, truncate(rest, 20))
}

func (p *parser) expectEOF() error {
	p.skipSpace()
	if !p.eof() {
		return p.syntaxError("trailing data after literal")
	}
	return nil
}

// parseList consumes "[ pair (, pair)* ,? ]" with the cursor on '['.
func (p *parser) parseList() ([]geom.Point, error) {
	p.pos++ // '['
	var pts []geom.Point
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.syntaxError("unterminated list")
		}
		if p.peek() == ']' {
			p.pos++
			return pts, nil
		}

		pt, err := p.parsePair(len(pts))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)

		p.skipSpace()
		if p.eof() {
			return nil, p.syntaxError("unterminated list")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			// closed on the next loop iteration
		default:
			return nil, p.syntaxError("expected ',' or ']' after pair")
		}
	}
}

// parsePair consumes one "(x, y)" or "[x, y]" element of the list. Elements
// that are valid literals of the wrong shape (strings, nested lists, bare
// numbers, tuples of the wrong arity) report ErrShape rather than ErrParse.
func (p *parser) parsePair(index int) (geom.Point, error) {
	var zero geom.Point

	open := p.peek()
	var close byte
	switch open {
	case '(':
		close = ')'
	case '[':
		close = ']'
	case '"', '\'':
		if err := p.scanString(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w: element %d is a string", ErrShape, index)
	default:
		if isNumberStart(open) {
			if _, err := p.scanNumber(); err != nil {
				return zero, err
			}
			return zero, fmt.Errorf("%w: element %d is a bare number", ErrShape, index)
		}
		return zero, p.syntaxError("expected '(' or '[' to start a pair")
	}
	p.pos++ // open

	var coords []float64
	for {
		p.skipSpace()
		if p.eof() {
			return zero, p.syntaxError("unterminated pair")
		}
		if p.peek() == close {
			p.pos++
			break
		}
		if len(coords) > 0 {
			if p.peek() != ',' {
				return zero, p.syntaxError("expected ',' between coordinates")
			}
			p.pos++
			p.skipSpace()
			if !p.eof() && p.peek() == close {
				// trailing comma inside the pair
				p.pos++
				break
			}
		}
		if p.eof() || !isNumberStart(p.peek()) {
			return zero, p.syntaxError("expected a number")
		}
		v, err := p.scanNumber()
		if err != nil {
			return zero, err
		}
		coords = append(coords, v)
	}

	if len(coords) != 2 {
		return zero, fmt.Errorf("%w: element %d has %d values, want 2", ErrShape, index, len(coords))
	}
	return geom.Point{X: coords[0], Y: coords[1]}, nil
}

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

// scanNumber consumes a float in plain or exponent notation. The character
// set is restricted so that words like "inf" never reach ParseFloat.
func (p *parser) scanNumber() (float64, error) {
	start := p.pos
	if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
		p.pos++
	}
	digits := func() {
		for !p.eof() && (p.peek() >= '0' && p.peek() <= '9') {
			p.pos++
		}
	}
	digits()
	if !p.eof() && p.peek() == '.' {
		p.pos++
		digits()
	}
	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		p.pos++
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		digits()
	}

	lit := p.src[start:p.pos]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.pos = start
		return 0, p.syntaxError(fmt.Sprintf("invalid number %q", lit))
	}
	return v, nil
}

// scanString consumes a quoted string, honoring backslash escapes enough to
// find the closing quote. The value itself is discarded; strings only occur
// on shape-error paths.
func (p *parser) scanString() error {
	quote := p.peek()
	p.pos++
	for !p.eof() {
		switch p.peek() {
		case '\\':
			p.pos += 2
		case quote:
			p.pos++
			return nil
		default:
			p.pos++
		}
	}
	return p.syntaxError("unterminated string")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
