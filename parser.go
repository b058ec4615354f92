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

	log "github.com/sirupsen/logrus"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/lambda"
)

// Lexicon maps each token to its lexical judgements.
type Lexicon map[string][]*Judgement

// Add a lexical entry for token.
func (lex Lexicon) Add(token string, c category.Category, sem lambda.Term, weight float64) {
	lex[token] = append(lex[token], NewLexical(token, c, sem, weight))
}

// Parser is a CKY parser for a lexicon and goal category.
//
// A parser is not modified by parsing, and may be used for concurrent parses once
// configured.
type Parser struct {
	lexicon     Lexicon
	goal        string
	typeRaising bool
}

// Create a parser deriving the goal category from tokens of lex. The goal is compared
// with the display form of the categories spanning the whole input.
func NewParser(lex Lexicon, goal string) *Parser {
	return &Parser{lexicon: lex, goal: goal}
}

// Type-raising lifts an atomic constituent adjacent to a functor, allowing composition
// across it. Raising multiplies the number of derivations of most inputs.
//
// By default, type-raising is disabled.
func (p *Parser) EnableTypeRaising(enabled bool) { p.typeRaising = enabled }

// Get the goal category of the parser.
func (p *Parser) Goal() string { return p.goal }

// Get the lexicon of the parser.
func (p *Parser) Lexicon() Lexicon { return p.lexicon }

// BuildChart fills the chart for tokens.
//
// ErrEmptyInput is returned when tokens is empty; a *TokenError is returned for the first
// token without a lexicon entry.
func (p *Parser) BuildChart(tokens []string) (*Chart, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	chart := newChart(tokens)
	for i, token := range tokens {
		entries, ok := p.lexicon[token]
		if !ok || len(entries) == 0 {
			return nil, &TokenError{Token: token, Position: i}
		}
		cell := chart.Cell(i, i+1)
		for _, j := range entries {
			cell.add(j)
		}
	}

	vt := &category.VarTracker{}
	combinators := BinaryCombinators()
	n := len(tokens)
	for w := 2; w <= n; w++ {
		for start := 0; start+w <= n; start++ {
			cell := chart.Cell(start, start+w)
			for mid := start + 1; mid < start+w; mid++ {
				for _, left := range chart.Cell(start, mid).Judgements() {
					for _, right := range chart.Cell(mid, start+w).Judgements() {
						p.combine(vt, combinators, cell, left, right)
					}
				}
			}
			log.Debugf("cell (%d, %d): %d judgements", start, start+w, cell.Len())
		}
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("chart for %q:\n%s", strings.Join(tokens, " "), chart)
	}
	return chart, nil
}

// combine adds to cell every judgement derivable from the adjacent left and right.
func (p *Parser) combine(vt *category.VarTracker, combinators []*Combinator, cell *Cell, left, right *Judgement) {
	apply := func(l, r *Judgement) {
		for _, c := range combinators {
			if j, ok := c.Match(vt, l, r); ok {
				cell.add(j)
			}
		}
	}
	apply(left, right)
	if !p.typeRaising {
		return
	}
	if raised, ok := BackwardTypeRaising.Match(vt, right); ok {
		apply(left, raised)
	}
	if raised, ok := ForwardTypeRaising.Match(vt, left); ok {
		apply(raised, right)
	}
}

// Parse returns the judgements of the goal category spanning tokens. A sequence with no
// derivation of the goal yields no judgements and no error.
func (p *Parser) Parse(tokens []string) ([]*Judgement, error) {
	chart, err := p.BuildChart(tokens)
	if err != nil {
		return nil, err
	}
	goals := chart.Goals(p.goal)
	log.Debugf("%d judgements of %s for %q", len(goals), p.goal, strings.Join(tokens, " "))
	return goals, nil
}

// ParseString splits s on whitespace and parses the tokens.
func (p *Parser) ParseString(s string) ([]*Judgement, error) {
	return p.Parse(strings.Fields(s))
}

// Derivations parses tokens and reconstructs every derivation tree of the goal.
func (p *Parser) Derivations(tokens []string) ([]*Tree, error) {
	goals, err := p.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return Reconstruct(goals), nil
}
