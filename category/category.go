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

// Category is the base interface for all categories.
type Category interface {
	// Name of the syntax-type of the category.
	CategoryName() string
}

var (
	_ Category = (*Var)(nil)
	_ Category = (*AtomicVar)(nil)
	_ Category = (*Atomic)(nil)
	_ Category = (*Composite)(nil)
	_ Category = (*Annotated)(nil)
)

func (c *Var) CategoryName() string       { return "Var" }
func (c *AtomicVar) CategoryName() string { return "AtomicVar" }
func (c *Atomic) CategoryName() string    { return "Atomic" }
func (c *Composite) CategoryName() string { return "Composite" }
func (c *Annotated) CategoryName() string { return "Annotated" }

// Category variable: `$X`. A variable unifies with any category.
type Var struct {
	Name string
}

// Atomic category variable: `@X`. An atomic variable unifies only with atomic
// (possibly annotated) categories.
type AtomicVar struct {
	Name string
}

// Atomic category: `NP`
type Atomic struct {
	Name string
}

// Slash direction of a composite category.
type Direction uint8

const (
	// Backward slash: `X\Y` seeks its argument to the left.
	Backward Direction = iota
	// Forward slash: `X/Y` seeks its argument to the right.
	Forward
)

// Slash returns the slash character for the direction.
func (d Direction) Slash() byte {
	if d == Forward {
		return '/'
	}
	return '\\'
}

func (d Direction) String() string { return string(d.Slash()) }

// Composite (functor) category: `X/Y` or `X\Y`
type Composite struct {
	Dir   Direction
	Left  Category
	Right Category
}

// Annotated category: `NP[masc]`
type Annotated struct {
	Inner   Category
	Feature string
}

// Create a forward composite category `left/right`.
func Fwd(left, right Category) *Composite {
	return &Composite{Dir: Forward, Left: left, Right: right}
}

// Create a backward composite category `left\right`.
func Bwd(left, right Category) *Composite {
	return &Composite{Dir: Backward, Left: left, Right: right}
}

// Replace applies the substitution s to c. Bound variables are resolved transitively;
// a variable which is (indirectly) bound to itself is left in place.
func Replace(c Category, s Subst) Category {
	if s.Len() == 0 {
		return c
	}
	return replace(c, s, nil)
}

func replace(c Category, s Subst, resolving []string) Category {
	switch c := c.(type) {
	case *Var:
		return resolve(c, c.Name, s, resolving)
	case *AtomicVar:
		return resolve(c, c.Name, s, resolving)
	case *Atomic:
		return c
	case *Composite:
		left, right := replace(c.Left, s, resolving), replace(c.Right, s, resolving)
		if left == c.Left && right == c.Right {
			return c
		}
		return &Composite{Dir: c.Dir, Left: left, Right: right}
	case *Annotated:
		inner := replace(c.Inner, s, resolving)
		if inner == c.Inner {
			return c
		}
		return &Annotated{Inner: inner, Feature: c.Feature}
	case nil:
		return nil
	}
	panic("unknown category type: " + c.CategoryName())
}

func resolve(v Category, name string, s Subst, resolving []string) Category {
	bound, ok := s.Get(name)
	if !ok {
		return v
	}
	for _, r := range resolving {
		if r == name {
			return v
		}
	}
	return replace(bound, s, append(resolving, name))
}

// Expand replaces every atomic category or variable named name within c by repl.
// Expansion is used to substitute aliases declared by a grammar.
func Expand(c Category, name string, repl Category) Category {
	switch c := c.(type) {
	case *Var:
		if c.Name == name {
			return repl
		}
		return c
	case *AtomicVar:
		if c.Name == name {
			return repl
		}
		return c
	case *Atomic:
		if c.Name == name {
			return repl
		}
		return c
	case *Composite:
		return &Composite{Dir: c.Dir, Left: Expand(c.Left, name, repl), Right: Expand(c.Right, name, repl)}
	case *Annotated:
		return &Annotated{Inner: Expand(c.Inner, name, repl), Feature: c.Feature}
	}
	return c
}

// StripAnnotations returns c with every feature annotation removed.
func StripAnnotations(c Category) Category {
	switch c := c.(type) {
	case *Annotated:
		return StripAnnotations(c.Inner)
	case *Composite:
		return &Composite{Dir: c.Dir, Left: StripAnnotations(c.Left), Right: StripAnnotations(c.Right)}
	}
	return c
}

// IsAtomic returns true for atomic categories, optionally annotated.
func IsAtomic(c Category) bool {
	switch c := c.(type) {
	case *Atomic:
		return true
	case *Annotated:
		_, ok := c.Inner.(*Atomic)
		return ok
	}
	return false
}

// FreeVars calls f for each variable name occurring in c, in left-to-right order.
func FreeVars(c Category, f func(name string)) {
	switch c := c.(type) {
	case *Var:
		f(c.Name)
	case *AtomicVar:
		f(c.Name)
	case *Composite:
		FreeVars(c.Left, f)
		FreeVars(c.Right, f)
	case *Annotated:
		FreeVars(c.Inner, f)
	}
}
