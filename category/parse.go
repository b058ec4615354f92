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

package category

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse reads a category written in the usual slash notation.
//
// Slashes associate to the left, so `S\NP/NP` is `(S\NP)/NP`. Variables are written
// `$X`, atomic variables `@X`, and features are attached with a postfix `[feat]`.
func Parse(text string) (Category, error) {
	p := &catParser{src: text}
	c, err := p.category()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return c, nil
}

// MustParse is like Parse but panics if text is not a valid category.
func MustParse(text string) Category {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

type catParser struct {
	src string
	pos int
}

func (p *catParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "invalid category %q at offset %d", p.src, p.pos)
}

func (p *catParser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *catParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *catParser) category() (Category, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var dir Direction
		switch p.peek() {
		case '/':
			dir = Forward
		case '\\':
			dir = Backward
		default:
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &Composite{Dir: dir, Left: left, Right: right}
	}
}

func (p *catParser) unary() (Category, error) {
	c, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.peek() == '[' {
		p.pos++
		feature := p.ident()
		if feature == "" {
			return nil, p.errorf("expected feature name")
		}
		if p.peek() != ']' {
			return nil, p.errorf("expected ']'")
		}
		p.pos++
		c = &Annotated{Inner: c, Feature: feature}
	}
	return c, nil
}

func (p *catParser) primary() (Category, error) {
	switch p.peek() {
	case '(':
		p.pos++
		c, err := p.category()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return c, nil
	case '$':
		p.pos++
		name := p.ident()
		if name == "" {
			return nil, p.errorf("expected variable name")
		}
		return &Var{Name: name}, nil
	case '@':
		p.pos++
		name := p.ident()
		if name == "" {
			return nil, p.errorf("expected variable name")
		}
		return &AtomicVar{Name: name}, nil
	case 0:
		return nil, p.errorf("unexpected end of input")
	}
	name := p.ident()
	if name == "" {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return &Atomic{Name: name}, nil
}

func (p *catParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}
