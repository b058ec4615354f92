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

package construct

import (
	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/expr"
	"github.com/abelloun/cyk/lambda"
)

// Categories

// Atomic category: `NP`, `S`, etc
func TAtom(name string) *category.Atomic {
	return &category.Atomic{Name: name}
}

// Category variable: `$X`
func TVar(name string) *category.Var {
	return &category.Var{Name: name}
}

// Atomic category variable: `@X`
func TAtomVar(name string) *category.AtomicVar {
	return &category.AtomicVar{Name: name}
}

// Forward functor: `S/NP`
func TFwd(result, arg category.Category) *category.Composite {
	return category.Fwd(result, arg)
}

// Backward functor: `S\NP`
func TBwd(result, arg category.Category) *category.Composite {
	return category.Bwd(result, arg)
}

// Transitive verb: `(S\NP)/NP`
func TTransitive(s, np category.Category) *category.Composite {
	return category.Fwd(category.Bwd(s, np), np)
}

// Annotated category: `NP[pl]`
func TFeat(inner category.Category, feature string) *category.Annotated {
	return &category.Annotated{Inner: inner, Feature: feature}
}

// Expressions

// Expression variable
func EVar(name string) *expr.Var {
	return &expr.Var{Name: name}
}

// Surface token
func Lit(text string) *expr.Literal {
	return &expr.Literal{Text: text}
}

// Concatenation of expressions, grouped to the left: `a b c` is `(a b) c`
func Concat(left, right expr.Expr, rest ...expr.Expr) *expr.Concat {
	c := &expr.Concat{Left: left, Right: right}
	for _, e := range rest {
		c = &expr.Concat{Left: c, Right: e}
	}
	return c
}

// Semantic terms

// Term variable or constant
func Var(name string) *lambda.Var {
	return &lambda.Var{Name: name}
}

// Abstraction: `\x y. body`
func Lam(body lambda.Term, vars ...string) lambda.Term {
	return lambda.Lambda(vars, body)
}

// Application: `f x`
func App(fun, arg lambda.Term) *lambda.App {
	return &lambda.App{Fun: fun, Arg: arg}
}

// Predicate: `eats(y, x)`
func Pred(name string, args ...lambda.Term) *lambda.Pred {
	return &lambda.Pred{Fun: &lambda.Var{Name: name}, Args: args}
}

// Conjunction: `a & b`
func And(left, right lambda.Term) *lambda.Binop {
	return &lambda.Binop{Op: "&", Left: left, Right: right}
}
