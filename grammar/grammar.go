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

// grammar loads lexicalised categorial grammars.
//
// A grammar declares its goal category, category aliases and lexical entries:
//
//	:- S, NP                # the first axiom is the goal
//	TV :: (S\NP)/NP         # alias, expanded in every entry
//	John => NP {john}
//	loves => (2) TV {\x y. loves(y, x)}
//
// Each entry assigns a category, an optional weight (in parentheses, default 1) and an
// optional semantic term (in braces) to a token. The same content may be written in YAML,
// see LoadYAML.
package grammar

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	ccg "github.com/abelloun/cyk"
	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/lambda"
)

// Grammar is a loaded grammar. Aliases have been expanded in the categories of the entries.
type Grammar struct {
	// Goal is the category derived for a complete sentence.
	Goal string
	// Axioms lists the further declared axioms, in declaration order.
	Axioms  []string
	Aliases []Alias
	Entries []Entry
	// Weights lists the rule weight declarations. They are recorded but do not affect
	// parsing.
	Weights []RuleWeight
}

// Alias names a category.
type Alias struct {
	Name     string
	Category category.Category
}

// Entry assigns a category to a token.
type Entry struct {
	Token     string
	Category  category.Category
	Semantics lambda.Term
	Weight    float64
}

// RuleWeight declares a weight for a combinator applied to premises of given categories:
// `Weight(">", S/NP, NP) = 0.5`.
type RuleWeight struct {
	Rule     string
	Premises []category.Category
	Weight   float64
}

// Load reads a grammar file. Files with a `.yaml` or `.yml` extension are read as YAML.
func Load(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading grammar %s", path)
	}
	var g *Grammar
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		g, err = LoadYAML(data)
	default:
		g, err = Parse(string(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading grammar %s", path)
	}
	log.Debugf("loaded grammar %s: %d entries, %d aliases", path, len(g.Entries), len(g.Aliases))
	return g, nil
}

// declare records an alias, replacing an earlier alias of the same name in place.
func (g *Grammar) declare(a Alias) {
	for i := range g.Aliases {
		if g.Aliases[i].Name == a.Name {
			g.Aliases[i] = a
			return
		}
	}
	g.Aliases = append(g.Aliases, a)
}

// axiom records a declared axiom; the first one is the goal.
func (g *Grammar) axiom(name string) {
	if g.Goal == "" {
		g.Goal = name
		return
	}
	g.Axioms = append(g.Axioms, name)
}

// expandAliases substitutes each alias, in declaration order, in the later state of every
// alias and entry. An alias may refer to aliases declared before or after it.
func (g *Grammar) expandAliases() {
	for i := range g.Aliases {
		a := g.Aliases[i]
		for k := range g.Aliases {
			g.Aliases[k].Category = category.Expand(g.Aliases[k].Category, a.Name, a.Category)
		}
		for k := range g.Entries {
			g.Entries[k].Category = category.Expand(g.Entries[k].Category, a.Name, a.Category)
		}
	}
}

func (g *Grammar) validate() error {
	if g.Goal == "" {
		return errors.New("grammar declares no goal category")
	}
	if len(g.Entries) == 0 {
		return errors.New("grammar declares no lexical entries")
	}
	return nil
}

// Lexicon returns the lexical judgements of the grammar, by token.
func (g *Grammar) Lexicon() ccg.Lexicon {
	lex := make(ccg.Lexicon, len(g.Entries))
	for _, e := range g.Entries {
		lex.Add(e.Token, e.Category, e.Semantics, e.Weight)
	}
	return lex
}

// NewParser returns a parser for the lexicon and goal of the grammar.
func (g *Grammar) NewParser() *ccg.Parser {
	return ccg.NewParser(g.Lexicon(), g.Goal)
}

// Tokens returns the distinct tokens of the lexicon, in declaration order.
func (g *Grammar) Tokens() []string {
	seen := make(map[string]bool, len(g.Entries))
	var tokens []string
	for _, e := range g.Entries {
		if !seen[e.Token] {
			seen[e.Token] = true
			tokens = append(tokens, e.Token)
		}
	}
	return tokens
}

// String writes the grammar in the text format read by Parse.
func (g *Grammar) String() string {
	var sb strings.Builder
	sb.WriteString(":- ")
	sb.WriteString(strings.Join(append([]string{g.Goal}, g.Axioms...), ", "))
	sb.WriteByte('\n')
	for _, a := range g.Aliases {
		sb.WriteString(a.Name + " :: " + category.String(a.Category) + "\n")
	}
	for _, w := range g.Weights {
		sb.WriteString("Weight(" + strconv.Quote(w.Rule))
		for _, p := range w.Premises {
			sb.WriteString(", " + category.String(p))
		}
		sb.WriteString(") = " + strconv.FormatFloat(w.Weight, 'g', -1, 64) + "\n")
	}
	for _, e := range g.Entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String writes the entry as a line of the text format: `loves => (2) (S\NP)/NP {...}`.
// A weight of 1 is omitted.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Token)
	sb.WriteString(" => ")
	if e.Weight != 1 {
		sb.WriteString("(" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + ") ")
	}
	sb.WriteString(category.String(e.Category))
	if e.Semantics != nil {
		sb.WriteString(" {" + lambda.TermString(e.Semantics) + "}")
	}
	return sb.String()
}
