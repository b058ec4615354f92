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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/lambda"
)

// SyntaxError reports an invalid line of a grammar.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *SyntaxError) Cause() error  { return e.Err }
func (e *SyntaxError) Unwrap() error { return e.Err }

var (
	entryWeight = regexp.MustCompile(`^\(\s*([0-9]+(?:\.[0-9]*)?)\s*\)`)
	ruleWeight  = regexp.MustCompile(`^Weight\s*\(\s*"((?:[^"\\]|\\.)*)"(.*)\)\s*=\s*(\S+)$`)
)

// Parse reads a grammar in the text format. Blank lines and lines starting with `#` are
// ignored; every other line is one statement:
//
//	:- Goal, Axiom, ...                      axioms, the first declared is the goal
//	Name :: Category                         alias
//	token => (weight) Category {term}        lexical entry, weight and term optional
//	Weight("rule", Category, ...) = weight   rule weight
func Parse(text string) (*Grammar, error) {
	g := &Grammar{}
	for i, line := range strings.Split(text, "\n") {
		stmt := strings.TrimSpace(line)
		if stmt == "" || strings.HasPrefix(stmt, "#") {
			continue
		}
		if err := g.statement(stmt); err != nil {
			return nil, &SyntaxError{Line: i + 1, Text: stmt, Err: err}
		}
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	g.expandAliases()
	return g, nil
}

func (g *Grammar) statement(stmt string) error {
	switch {
	case strings.HasPrefix(stmt, ":-"):
		names := strings.FieldsFunc(stmt[2:], func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		if len(names) == 0 {
			return errors.New("expected axioms")
		}
		for _, name := range names {
			if !isIdent(name) {
				return errors.Errorf("invalid axiom %q", name)
			}
			g.axiom(name)
		}
		return nil

	case ruleWeight.MatchString(stmt):
		w, err := parseRuleWeight(stmt)
		if err != nil {
			return err
		}
		g.Weights = append(g.Weights, w)
		return nil

	case strings.Contains(stmt, "=>"):
		e, err := parseEntry(stmt)
		if err != nil {
			return err
		}
		g.Entries = append(g.Entries, e)
		return nil

	case strings.Contains(stmt, "::"):
		i := strings.Index(stmt, "::")
		name := strings.TrimSpace(stmt[:i])
		if !isIdent(name) {
			return errors.Errorf("invalid alias name %q", name)
		}
		c, err := category.Parse(stmt[i+2:])
		if err != nil {
			return errors.Wrapf(err, "alias %s", name)
		}
		g.declare(Alias{Name: name, Category: c})
		return nil
	}
	return errors.New("unrecognized statement")
}

func parseEntry(stmt string) (Entry, error) {
	i := strings.Index(stmt, "=>")
	e := Entry{Token: strings.TrimSpace(stmt[:i]), Weight: 1}
	if e.Token == "" || strings.IndexFunc(e.Token, unicode.IsSpace) >= 0 {
		return e, errors.Errorf("invalid token %q", e.Token)
	}
	rest := strings.TrimSpace(stmt[i+2:])

	if m := entryWeight.FindStringSubmatch(rest); m != nil {
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return e, errors.Wrapf(err, "weight of %s", e.Token)
		}
		e.Weight = w
		rest = strings.TrimSpace(rest[len(m[0]):])
	}

	if open := strings.IndexByte(rest, '{'); open >= 0 {
		if !strings.HasSuffix(rest, "}") {
			return e, errors.Errorf("unterminated semantics of %s", e.Token)
		}
		sem, err := lambda.Parse(rest[open+1 : len(rest)-1])
		if err != nil {
			return e, errors.Wrapf(err, "semantics of %s", e.Token)
		}
		e.Semantics = sem
		rest = rest[:open]
	}

	c, err := category.Parse(rest)
	if err != nil {
		return e, errors.Wrapf(err, "category of %s", e.Token)
	}
	e.Category = c
	return e, nil
}

func parseRuleWeight(stmt string) (RuleWeight, error) {
	m := ruleWeight.FindStringSubmatch(stmt)
	premises := strings.TrimSpace(m[2])
	if premises != "" && !strings.HasPrefix(premises, ",") {
		return RuleWeight{}, errors.Errorf("expected ',' before %q", premises)
	}
	rule, err := strconv.Unquote(`"` + m[1] + `"`)
	if err != nil {
		return RuleWeight{}, errors.Wrap(err, "rule name")
	}
	w := RuleWeight{Rule: rule}
	for _, premise := range strings.Split(premises, ",")[1:] {
		c, err := category.Parse(premise)
		if err != nil {
			return w, errors.Wrapf(err, "premise of %s", rule)
		}
		w.Premises = append(w.Premises, c)
	}
	if w.Weight, err = strconv.ParseFloat(m[3], 64); err != nil {
		return w, errors.Wrapf(err, "weight of %s", rule)
	}
	return w, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
