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
	"strings"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/expr"
	"github.com/abelloun/cyk/lambda"
)

// Judgement states that a surface expression has a category (and a semantic value),
// together with every derivation of that fact found so far.
//
// Judgements are immutable; operations return new judgements.
type Judgement struct {
	Expr      expr.Expr
	Category  category.Category
	Semantics lambda.Term
	Forest    Forest
}

// Substitution pairs the category and expression bindings built while matching a
// combinator's hypotheses.
type Substitution struct {
	Categories category.Subst
	Exprs      expr.Bindings
}

// Create an empty substitution.
func NewSubstitution() Substitution {
	return Substitution{Categories: category.NewSubst(), Exprs: expr.NewBindings()}
}

// Create a judgement with a single lexical derivation of weight 1.
func NewJudgement(e expr.Expr, c category.Category) *Judgement {
	return &Judgement{Expr: e, Category: c, Forest: SingletonForest(Derivation{Weight: 1})}
}

// Create a lexical judgement for a token.
func NewLexical(token string, c category.Category, sem lambda.Term, weight float64) *Judgement {
	return &Judgement{
		Expr:      &expr.Literal{Text: token},
		Category:  c,
		Semantics: sem,
		Forest:    SingletonForest(Derivation{Weight: weight, Semantics: sem}),
	}
}

// Match matches the pattern j against data: expressions first, then categories.
// On failure sigma is left unmodified.
func (j *Judgement) Match(data *Judgement, sigma *Substitution) bool {
	stashed := *sigma
	if !expr.Match(j.Expr, data.Expr, &sigma.Exprs) {
		*sigma = stashed
		return false
	}
	if !category.Unify(j.Category, data.Category, &sigma.Categories) {
		*sigma = stashed
		return false
	}
	return true
}

// Replace applies sigma to the expression and category of j. Semantics and derivations
// are preserved.
func (j *Judgement) Replace(sigma Substitution) *Judgement {
	return &Judgement{
		Expr:      expr.Replace(j.Expr, sigma.Exprs),
		Category:  category.Replace(j.Category, sigma.Categories),
		Semantics: j.Semantics,
		Forest:    j.Forest,
	}
}

// Expand replaces the atomic category or variable called name by c within j's category.
func (j *Judgement) Expand(name string, c category.Category) *Judgement {
	return &Judgement{
		Expr:      j.Expr,
		Category:  category.Expand(j.Category, name, c),
		Semantics: j.Semantics,
		Forest:    j.Forest,
	}
}

// Deriving returns a judgement with j's expression and category, derived by rule from
// children. The forest holds one derivation per combination of the children's
// derivations, weighted by the largest weight of the combination.
func (j *Judgement) Deriving(rule *Combinator, children []*Judgement, sem lambda.Term) *Judgement {
	forests := make([]Forest, len(children))
	for i, child := range children {
		forests[i] = child.Forest
	}
	forest := Forest{emptyForest}
	product(forests, func(choices []int) {
		d := Derivation{Rule: rule, Children: children, Choices: choices, Semantics: sem}
		sems := make([]lambda.Term, len(children))
		for i, choice := range choices {
			chosen := forests[i].Get(choice)
			if i == 0 || chosen.Weight > d.Weight {
				d.Weight = chosen.Weight
			}
			sems[i] = chosen.Semantics
		}
		if rule != nil && rule.semantics != nil {
			d.Semantics = rule.combine(sems)
		}
		forest = forest.Append(d)
	})
	return &Judgement{Expr: j.Expr, Category: j.Category, Semantics: sem, Forest: forest}
}

// merge returns a judgement holding the derivations of j followed by those of other.
func (j *Judgement) merge(other *Judgement) *Judgement {
	return &Judgement{
		Expr:      j.Expr,
		Category:  j.Category,
		Semantics: j.Semantics,
		Forest:    j.Forest.Concat(other.Forest),
	}
}

// Key returns the canonical (expression, category) key of j. Judgements of a chart
// cell with equal keys are merged.
func (j *Judgement) Key() string {
	return expr.ExprString(j.Expr) + "\x00" + category.String(j.Category)
}

// String returns `expr:category`.
func (j *Judgement) String() string {
	return expr.ExprString(j.Expr) + ":" + category.String(j.Category)
}

// ShowSemantics returns `expr:category { semantics }`, or the same as String when j has
// no semantics.
func (j *Judgement) ShowSemantics() string {
	if j.Semantics == nil {
		return j.String()
	}
	var sb strings.Builder
	sb.WriteString(j.String())
	sb.WriteString(" { ")
	sb.WriteString(lambda.TermString(j.Semantics))
	sb.WriteString(" }")
	return sb.String()
}
