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

package grammar

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/lambda"
)

type yamlGrammar struct {
	Goal    string       `yaml:"goal"`
	Axioms  []string     `yaml:"axioms"`
	Aliases yaml.Node    `yaml:"aliases"`
	Lexicon []yamlEntry  `yaml:"lexicon"`
	Weights []yamlWeight `yaml:"weights"`
}

type yamlEntry struct {
	Token     string   `yaml:"token"`
	Category  string   `yaml:"category"`
	Semantics string   `yaml:"semantics"`
	Weight    *float64 `yaml:"weight"`
}

type yamlWeight struct {
	Rule     string   `yaml:"rule"`
	Premises []string `yaml:"premises"`
	Weight   float64  `yaml:"weight"`
}

// LoadYAML reads a grammar written in YAML:
//
//	goal: S
//	axioms: [NP]
//	aliases:
//	  TV: (S\NP)/NP
//	lexicon:
//	  - {token: John, category: NP, semantics: john}
//	  - {token: loves, category: TV, semantics: '\x y. loves(y, x)', weight: 2}
//	weights:
//	  - {rule: ">", premises: [S/NP, NP], weight: 0.5}
//
// Aliases are expanded in declaration order, as in the text format.
func LoadYAML(data []byte) (*Grammar, error) {
	var doc yamlGrammar
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid YAML grammar")
	}

	g := &Grammar{}
	if doc.Goal != "" {
		g.axiom(doc.Goal)
	}
	for _, name := range doc.Axioms {
		if !isIdent(name) {
			return nil, errors.Errorf("invalid axiom %q", name)
		}
		g.axiom(name)
	}

	if err := g.yamlAliases(&doc.Aliases); err != nil {
		return nil, err
	}

	for _, y := range doc.Lexicon {
		e := Entry{Token: y.Token, Weight: 1}
		if e.Token == "" {
			return nil, errors.Errorf("lexical entry without token (category %q)", y.Category)
		}
		if y.Weight != nil {
			e.Weight = *y.Weight
		}
		c, err := category.Parse(y.Category)
		if err != nil {
			return nil, errors.Wrapf(err, "category of %s", y.Token)
		}
		e.Category = c
		if y.Semantics != "" {
			if e.Semantics, err = lambda.Parse(y.Semantics); err != nil {
				return nil, errors.Wrapf(err, "semantics of %s", y.Token)
			}
		}
		g.Entries = append(g.Entries, e)
	}

	for _, y := range doc.Weights {
		w := RuleWeight{Rule: y.Rule, Weight: y.Weight}
		for _, p := range y.Premises {
			c, err := category.Parse(p)
			if err != nil {
				return nil, errors.Wrapf(err, "premise of %s", y.Rule)
			}
			w.Premises = append(w.Premises, c)
		}
		g.Weights = append(g.Weights, w)
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	g.expandAliases()
	return g, nil
}

// yamlAliases reads the aliases mapping, keeping the order of its keys.
func (g *Grammar) yamlAliases(node *yaml.Node) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: aliases must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode || !isIdent(key.Value) {
			return errors.Errorf("line %d: invalid alias", key.Line)
		}
		c, err := category.Parse(value.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d: alias %s", key.Line, key.Value)
		}
		g.declare(Alias{Name: key.Value, Category: c})
	}
	return nil
}
