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

// lambda provides the lambda-calculus terms used as semantic values of judgements.
//
// Terms are immutable. Applying an abstraction substitutes the argument into its body,
// renaming bound variables to avoid capture; no further normalization is performed.
package lambda

// Term is the base interface for all lambda terms.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
	// Apply returns the application of the term to arg. Abstractions substitute arg into
	// their body; other terms build an application or extend a predicate.
	Apply(arg Term) Term
	// ApplyArgs applies the term to the argument list of a predicate.
	ApplyArgs(args []Term) Term

	eval(ev *evaluator, env map[string]Term) Term
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Abs)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Pred)(nil)
	_ Term = (*Binop)(nil)
	_ Term = (*Exists)(nil)
)

// Variable or constant: `x`, `john`
type Var struct {
	Name string
}

// Abstraction: `\x. body`
type Abs struct {
	Var  string
	Body Term
}

// Application: `(f x)`
type App struct {
	Fun Term
	Arg Term
}

// Predicate: `eats(x, y)`
type Pred struct {
	Fun  Term
	Args []Term
}

// Binary operation: `(p & q)`. Supported operators are `&`, `|` and `+`.
type Binop struct {
	Op    string
	Left  Term
	Right Term
}

// Existential quantification: `exists x. body`
type Exists struct {
	Var  string
	Body Term
}

func (t *Var) TermName() string    { return "Var" }
func (t *Abs) TermName() string    { return "Abs" }
func (t *App) TermName() string    { return "App" }
func (t *Pred) TermName() string   { return "Pred" }
func (t *Binop) TermName() string  { return "Binop" }
func (t *Exists) TermName() string { return "Exists" }

// Create a curried abstraction over vars: Lambda([x y], b) is `\x. \y. b`.
func Lambda(vars []string, body Term) Term {
	for i := len(vars) - 1; i >= 0; i-- {
		body = &Abs{Var: vars[i], Body: body}
	}
	return body
}

// Compose returns `\x. f (g x)`, with x chosen to avoid capturing free variables of f or g.
func Compose(f, g Term) Term {
	x := newEvaluator(f, g).fresh("x")
	return &Abs{Var: x, Body: &App{Fun: f, Arg: &App{Fun: g, Arg: &Var{Name: x}}}}
}

// Raise returns `\f. f a`, the type-raised form of a.
func Raise(a Term) Term {
	f := newEvaluator(a).fresh("f")
	return &Abs{Var: f, Body: &App{Fun: &Var{Name: f}, Arg: a}}
}

func (t *Var) Apply(arg Term) Term { return &App{Fun: t, Arg: arg} }

func (t *Abs) Apply(arg Term) Term {
	return newEvaluator(t, arg).eval(t.Body, map[string]Term{t.Var: arg})
}

func (t *App) Apply(arg Term) Term { return &App{Fun: t, Arg: arg} }

func (t *Pred) Apply(arg Term) Term { return &Pred{Fun: t.Fun, Args: appendArgs(t.Args, arg)} }

func (t *Binop) Apply(arg Term) Term {
	return &Binop{Op: t.Op, Left: t.Left.Apply(arg), Right: t.Right.Apply(arg)}
}

func (t *Exists) Apply(arg Term) Term {
	return newEvaluator(t, arg).eval(t.Body, map[string]Term{t.Var: arg})
}

func (t *Var) ApplyArgs(args []Term) Term { return &Pred{Fun: t, Args: args} }

func (t *Abs) ApplyArgs(args []Term) Term { return applyBinder(t, t.Var, t.Body, args) }

func (t *App) ApplyArgs(args []Term) Term { return &Pred{Fun: t, Args: args} }

func (t *Pred) ApplyArgs(args []Term) Term {
	return &Pred{Fun: t.Fun, Args: appendArgs(t.Args, args...)}
}

func (t *Binop) ApplyArgs(args []Term) Term {
	return &Binop{Op: t.Op, Left: t.Left.ApplyArgs(args), Right: t.Right.ApplyArgs(args)}
}

func (t *Exists) ApplyArgs(args []Term) Term { return applyBinder(t, t.Var, t.Body, args) }

func applyBinder(t Term, v string, body Term, args []Term) Term {
	if len(args) == 0 {
		return t
	}
	f := newEvaluator(t, args...).eval(body, map[string]Term{v: args[0]})
	if len(args) > 1 {
		return f.ApplyArgs(args[1:])
	}
	return f
}

func appendArgs(args []Term, extra ...Term) []Term {
	out := make([]Term, 0, len(args)+len(extra))
	out = append(out, args...)
	return append(out, extra...)
}
