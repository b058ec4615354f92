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

package ccg

import (
	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/expr"
	"github.com/abelloun/cyk/lambda"
)

// Combinator is an inference rule of the grammar: a set of hypothesis patterns, a
// conclusion pattern, and a way to combine the semantics of the matched inputs.
//
// The set of combinators is closed; the rules are the package-level variables below.
type Combinator struct {
	Name       string
	Hypotheses []*Judgement
	Conclusion *Judgement

	// semantics combines the semantic values of the inputs. Nil values are never passed.
	semantics func(sems []lambda.Term) lambda.Term
	// rewrite adjusts the patterns before each match.
	rewrite func(vt *category.VarTracker, hyps []*Judgement, concl *Judgement) ([]*Judgement, *Judgement)
}

// Pattern variables carry a prime so they can never collide with variables written in
// a grammar.
var (
	varX = &category.Var{Name: "X'"}
	varY = &category.Var{Name: "Y'"}
	varZ = &category.Var{Name: "Z'"}
	varT = &category.Var{Name: "T'"}

	atomX = &category.AtomicVar{Name: "X'"}

	exprA = &expr.Var{Name: "a"}
	exprB = &expr.Var{Name: "b"}
)

func pattern(e expr.Expr, c category.Category) *Judgement { return NewJudgement(e, c) }

// `a:X/Y  b:Y  ⊢  a b:X`
var ForwardApplication = &Combinator{
	Name: ">",
	Hypotheses: []*Judgement{
		pattern(exprA, category.Fwd(varX, varY)),
		pattern(exprB, varY),
	},
	Conclusion: pattern(&expr.Concat{Left: exprA, Right: exprB}, varX),
	semantics: func(sems []lambda.Term) lambda.Term {
		return sems[0].Apply(sems[1])
	},
}

// `b:Y  a:X\Y  ⊢  b a:X`
var BackwardApplication = &Combinator{
	Name: "<",
	Hypotheses: []*Judgement{
		pattern(exprB, varY),
		pattern(exprA, category.Bwd(varX, varY)),
	},
	Conclusion: pattern(&expr.Concat{Left: exprB, Right: exprA}, varX),
	semantics: func(sems []lambda.Term) lambda.Term {
		return sems[1].Apply(sems[0])
	},
}

// `a:X/Y  b:Y/Z  ⊢  a b:X/Z`
var ForwardComposition = &Combinator{
	Name: "B>",
	Hypotheses: []*Judgement{
		pattern(exprA, category.Fwd(varX, varY)),
		pattern(exprB, category.Fwd(varY, varZ)),
	},
	Conclusion: pattern(&expr.Concat{Left: exprA, Right: exprB}, category.Fwd(varX, varZ)),
	semantics: func(sems []lambda.Term) lambda.Term {
		return lambda.Compose(sems[0], sems[1])
	},
}

// `b:Y\Z  a:X\Y  ⊢  b a:X\Z`
var BackwardComposition = &Combinator{
	Name: "B<",
	Hypotheses: []*Judgement{
		pattern(exprB, category.Bwd(varY, varZ)),
		pattern(exprA, category.Bwd(varX, varY)),
	},
	Conclusion: pattern(&expr.Concat{Left: exprB, Right: exprA}, category.Bwd(varX, varZ)),
	semantics: func(sems []lambda.Term) lambda.Term {
		return lambda.Compose(sems[1], sems[0])
	},
}

// `a:X  ⊢  a:T/(T\X)` for atomic X. Raises a constituent to a functor over the
// backward functors seeking it.
var ForwardTypeRaising = &Combinator{
	Name:       "T>",
	Hypotheses: []*Judgement{pattern(exprA, atomX)},
	Conclusion: pattern(exprA, category.Fwd(varT, category.Bwd(varT, atomX))),
	semantics: func(sems []lambda.Term) lambda.Term {
		return lambda.Raise(sems[0])
	},
	rewrite: freshRaisedType,
}

// `a:X  ⊢  a:T\(T/X)` for atomic X. Raises a constituent to a functor over the
// forward functors seeking it.
var BackwardTypeRaising = &Combinator{
	Name:       "T<",
	Hypotheses: []*Judgement{pattern(exprA, atomX)},
	Conclusion: pattern(exprA, category.Bwd(varT, category.Fwd(varT, atomX))),
	semantics: func(sems []lambda.Term) lambda.Term {
		return lambda.Raise(sems[0])
	},
	rewrite: freshRaisedType,
}

// freshRaisedType replaces the raised type T of the conclusion with a fresh variable, so
// that judgements raised within one parse never share a raised type.
func freshRaisedType(vt *category.VarTracker, hyps []*Judgement, concl *Judgement) ([]*Judgement, *Judgement) {
	sigma := NewSubstitution()
	sigma.Categories.Bind(varT.Name, vt.New("T"))
	return hyps, concl.Replace(sigma)
}

// BinaryCombinators returns the combinators applied to adjacent chart cells, in the order
// they are tried.
func BinaryCombinators() []*Combinator {
	return []*Combinator{BackwardApplication, ForwardApplication, BackwardComposition, ForwardComposition}
}

// Combinators returns the complete catalogue of combinators.
func Combinators() []*Combinator {
	return []*Combinator{
		BackwardApplication, ForwardApplication,
		BackwardComposition, ForwardComposition,
		ForwardTypeRaising, BackwardTypeRaising,
	}
}

// Arity returns the number of inputs the combinator consumes.
func (c *Combinator) Arity() int { return len(c.Hypotheses) }

func (c *Combinator) String() string { return c.Name }

func (c *Combinator) combine(sems []lambda.Term) lambda.Term {
	for _, sem := range sems {
		if sem == nil {
			return nil
		}
	}
	return c.semantics(sems)
}

// Match applies the combinator to inputs, returning the derived judgement. Each
// hypothesis is matched in turn, after applying the bindings of the previous ones to
// both the pattern and the input. If any hypothesis fails to match, Match returns false.
//
// vt allocates fresh variables for rules which need them; it may be nil for rules that
// do not.
func (c *Combinator) Match(vt *category.VarTracker, inputs ...*Judgement) (*Judgement, bool) {
	if len(inputs) != len(c.Hypotheses) {
		return nil, false
	}
	hyps, concl := c.Hypotheses, c.Conclusion
	if c.rewrite != nil {
		if vt == nil {
			vt = &category.VarTracker{}
		}
		hyps, concl = c.rewrite(vt, hyps, concl)
	}
	sigma := NewSubstitution()
	for i, hyp := range hyps {
		pat, data := hyp.Replace(sigma), inputs[i].Replace(sigma)
		if !pat.Match(data, &sigma) {
			return nil, false
		}
	}
	sems := make([]lambda.Term, len(inputs))
	for i, input := range inputs {
		sems[i] = input.Semantics
	}
	var sem lambda.Term
	if c.semantics != nil {
		sem = c.combine(sems)
	}
	return concl.Replace(sigma).Deriving(c, inputs, sem), true
}
