// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package lambda

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse reads a lambda term.
//
// Syntax: `\x y. body` (abstraction), `exists x. body`, `f x` (application, left
// associative), `p(x, y)` (predicate, no space before the parenthesis), `a & b`,
// `a | b`, `a + b` (left associative, looser than application), and parentheses.
func Parse(text string) (Term, error) {
	p := &termParser{src: text}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return t, nil
}

// MustParse is like Parse but panics if text is not a valid term.
func MustParse(text string) Term {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

type termParser struct {
	src string
	pos int
}

func (p *termParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "invalid lambda term %q at offset %d", p.src, p.pos)
}

func (p *termParser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *termParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func isIdentRune(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

func (p *termParser) atIdent() bool {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return isIdentRune(r)
}

func (p *termParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentRune(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func (p *termParser) term() (Term, error) {
	left, err := p.app()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '&' && op != '|' && op != '+' {
			return left, nil
		}
		p.pos++
		right, err := p.app()
		if err != nil {
			return nil, err
		}
		left = &Binop{Op: string(op), Left: left, Right: right}
	}
}

func (p *termParser) startsAtom() bool {
	switch p.peek() {
	case '\\', '(':
		return true
	}
	return p.atIdent()
}

func (p *termParser) app() (Term, error) {
	fun, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		fun = &App{Fun: fun, Arg: arg}
	}
	return fun, nil
}

func (p *termParser) binders() ([]string, error) {
	var vars []string
	for {
		name := p.ident()
		if name == "" {
			break
		}
		vars = append(vars, name)
		if p.peek() == ',' {
			p.pos++
		}
	}
	if len(vars) == 0 {
		return nil, p.errorf("expected bound variable")
	}
	if p.peek() != '.' {
		return nil, p.errorf("expected '.'")
	}
	p.pos++
	return vars, nil
}

func (p *termParser) atom() (Term, error) {
	switch p.peek() {
	case '\\':
		p.pos++
		vars, err := p.binders()
		if err != nil {
			return nil, err
		}
		body, err := p.term()
		if err != nil {
			return nil, err
		}
		return Lambda(vars, body), nil

	case '(':
		p.pos++
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return t, nil

	case 0:
		return nil, p.errorf("unexpected end of input")
	}

	name := p.ident()
	if name == "" {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	if name == "exists" {
		vars, err := p.binders()
		if err != nil {
			return nil, err
		}
		body, err := p.term()
		if err != nil {
			return nil, err
		}
		for i := len(vars) - 1; i >= 0; i-- {
			body = &Exists{Var: vars[i], Body: body}
		}
		return body, nil
	}
	// a predicate's argument list follows its name without spaces
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		p.pos++
		var args []Term
		if p.peek() != ')' {
			for {
				arg, err := p.term()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peek() != ',' {
					break
				}
				p.pos++
			}
		}
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return &Pred{Fun: &Var{Name: name}, Args: args}, nil
	}
	return &Var{Name: name}, nil
}
