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

// expr models the surface strings yielded by constituents, as they appear in combinator
// patterns and in chart judgements.
package expr

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Expr is the base for all surface expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Concat)(nil)
)

// Pattern variable: `a`
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Surface token: `"John"`
type Literal struct {
	Text string
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

// Concatenation of two expressions: `"John sleeps"`. Concatenations are only built by
// combinators; they never appear as patterns.
type Concat struct {
	Left  Expr
	Right Expr
}

// "Concat"
func (e *Concat) ExprName() string { return "Concat" }

// ConcatMatchError is raised (as a panic) when a concatenation is used as a pattern.
type ConcatMatchError struct {
	Pattern *Concat
	Data    Expr
}

func (e *ConcatMatchError) Error() string {
	return fmt.Sprintf("Can't match a concatenation expression: %s against %s", ExprString(e.Pattern), ExprString(e.Data))
}

type nameComparer struct{}

func (nameComparer) Compare(a, b interface{}) int { return strings.Compare(a.(string), b.(string)) }

var emptyBindings = immutable.NewSortedMap(nameComparer{})

// Bindings is an immutable mapping from pattern variables to expressions. The zero value
// is empty; copying a Bindings takes a snapshot.
type Bindings struct {
	m *immutable.SortedMap
}

// Create empty bindings.
func NewBindings() Bindings { return Bindings{emptyBindings} }

// Get the number of bound variables.
func (b Bindings) Len() int {
	if b.m == nil {
		return 0
	}
	return b.m.Len()
}

// Get the expression bound to name.
func (b Bindings) Get(name string) (Expr, bool) {
	if b.m == nil {
		return nil, false
	}
	e, ok := b.m.Get(name)
	if !ok {
		return nil, false
	}
	return e.(Expr), true
}

// Bind name to e, replacing any existing binding.
func (b *Bindings) Bind(name string, e Expr) {
	if b.m == nil {
		b.m = emptyBindings
	}
	b.m = b.m.Set(name, e)
}

// Iterate over bindings, sorted by name.
// If f returns false, iteration will be stopped.
func (b Bindings) Range(f func(string, Expr) bool) {
	if b.m == nil {
		return
	}
	iter := b.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Expr)) {
			return
		}
	}
}

// Match matches pattern against data, extending b with variable bindings.
//
// A variable binds on its first occurrence; later occurrences match the bound expression
// against data. A literal matches an equal literal. Matching against a concatenation
// panics with a *ConcatMatchError.
func Match(pattern, data Expr, b *Bindings) bool {
	switch p := pattern.(type) {
	case *Var:
		bound, ok := b.Get(p.Name)
		if !ok {
			b.Bind(p.Name, data)
			return true
		}
		return Match(bound, data, b)

	case *Literal:
		d, ok := data.(*Literal)
		return ok && d.Text == p.Text

	case *Concat:
		panic(&ConcatMatchError{Pattern: p, Data: data})
	}
	panic("unknown expression type: " + pattern.ExprName())
}

// Replace substitutes bound variables within e.
func Replace(e Expr, b Bindings) Expr {
	if b.Len() == 0 {
		return e
	}
	switch e := e.(type) {
	case *Var:
		if bound, ok := b.Get(e.Name); ok {
			return bound
		}
		return e
	case *Literal:
		return e
	case *Concat:
		left, right := Replace(e.Left, b), Replace(e.Right, b)
		if left == e.Left && right == e.Right {
			return e
		}
		return &Concat{Left: left, Right: right}
	}
	return e
}

// Leaves calls f for each variable or literal within e, in surface order.
func Leaves(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Concat:
		Leaves(e.Left, f)
		Leaves(e.Right, f)
	case nil:
	default:
		f(e)
	}
}
