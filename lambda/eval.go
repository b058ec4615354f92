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
	"strconv"
	"strings"
)

// evaluator substitutes terms for variables, renaming bound variables with names which do
// not occur in any term seen by the evaluator.
type evaluator struct {
	used map[string]bool
	next int
}

func newEvaluator(t Term, more ...Term) *evaluator {
	ev := &evaluator{used: make(map[string]bool, 8)}
	WalkNames(t, ev.markUsed)
	for _, m := range more {
		WalkNames(m, ev.markUsed)
	}
	return ev
}

func (ev *evaluator) markUsed(name string) { ev.used[name] = true }

// fresh returns a name derived from base which is unused within the evaluator's terms.
func (ev *evaluator) fresh(base string) string {
	if i := strings.IndexByte(base, '_'); i >= 0 {
		base = base[:i]
	}
	for {
		name := base + "_" + strconv.Itoa(ev.next)
		ev.next++
		if !ev.used[name] {
			ev.used[name] = true
			return name
		}
	}
}

func (ev *evaluator) eval(t Term, env map[string]Term) Term { return t.eval(ev, env) }

func (t *Var) eval(ev *evaluator, env map[string]Term) Term {
	if bound, ok := env[t.Name]; ok {
		return bound
	}
	return t
}

func (t *Abs) eval(ev *evaluator, env map[string]Term) Term {
	v := ev.fresh(t.Var)
	return &Abs{Var: v, Body: t.Body.eval(ev, extend(env, t.Var, &Var{Name: v}))}
}

func (t *App) eval(ev *evaluator, env map[string]Term) Term {
	return t.Fun.eval(ev, env).Apply(t.Arg.eval(ev, env))
}

func (t *Pred) eval(ev *evaluator, env map[string]Term) Term {
	args := make([]Term, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.eval(ev, env)
	}
	return t.Fun.eval(ev, env).ApplyArgs(args)
}

func (t *Binop) eval(ev *evaluator, env map[string]Term) Term {
	return &Binop{Op: t.Op, Left: t.Left.eval(ev, env), Right: t.Right.eval(ev, env)}
}

func (t *Exists) eval(ev *evaluator, env map[string]Term) Term {
	v := ev.fresh(t.Var)
	return &Exists{Var: v, Body: t.Body.eval(ev, extend(env, t.Var, &Var{Name: v}))}
}

func extend(env map[string]Term, name string, t Term) map[string]Term {
	out := make(map[string]Term, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[name] = t
	return out
}

// WalkNames calls f for every variable name occurring in t, bound or free.
func WalkNames(t Term, f func(string)) {
	switch t := t.(type) {
	case *Var:
		f(t.Name)
	case *Abs:
		f(t.Var)
		WalkNames(t.Body, f)
	case *App:
		WalkNames(t.Fun, f)
		WalkNames(t.Arg, f)
	case *Pred:
		WalkNames(t.Fun, f)
		for _, arg := range t.Args {
			WalkNames(arg, f)
		}
	case *Binop:
		WalkNames(t.Left, f)
		WalkNames(t.Right, f)
	case *Exists:
		f(t.Var)
		WalkNames(t.Body, f)
	case nil:
	default:
		panic("unknown term type: " + t.TermName())
	}
}
