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

package ccg_test

import (
	"testing"

	"github.com/pkg/errors"

	. "github.com/abelloun/cyk"
	. "github.com/abelloun/cyk/construct"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/lambda"
)

func intransitiveLexicon() Lexicon {
	lex := Lexicon{}
	lex.Add("John", TAtom("NP"), Var("john"), 1)
	lex.Add("sleeps", TBwd(TAtom("S"), TAtom("NP")), Lam(Pred("sleeps", Var("x")), "x"), 1)
	return lex
}

func transitiveLexicon() Lexicon {
	lex := Lexicon{}
	lex.Add("John", TAtom("NP"), Var("john"), 1)
	lex.Add("Mary", TAtom("NP"), Var("mary"), 1)
	lex.Add("loves", TTransitive(TAtom("S"), TAtom("NP")), Lam(Pred("loves", Var("y"), Var("x")), "x", "y"), 1)
	return lex
}

func TestIntransitive(t *testing.T) {
	p := NewParser(intransitiveLexicon(), "S")

	trees, err := p.Derivations([]string{"John", "sleeps"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected 1 derivation, found %d", len(trees))
	}
	tree := trees[0]
	if tree.Rule != BackwardApplication {
		t.Fatalf("rule: %v", tree.Rule)
	}
	if s := tree.String(); s != `(< S (NP "John") (S\NP "sleeps"))` {
		t.Fatalf("tree: %s", s)
	}
	if s := lambda.TermString(tree.Semantics); s != "sleeps(john)" {
		t.Fatalf("semantics: %s", s)
	}
	t.Logf("derivation:\n%s", DerivationString(tree, true))
}

func TestWrongOrderHasNoDerivation(t *testing.T) {
	p := NewParser(intransitiveLexicon(), "S")

	trees, err := p.Derivations([]string{"sleeps", "John"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 0 {
		t.Fatalf("expected no derivations, found %d", len(trees))
	}
}

func TestUnsaturatedEntryIsFiltered(t *testing.T) {
	lex := intransitiveLexicon()
	lex.Add("sleeps", TTransitive(TAtom("S"), TAtom("NP")), nil, 1)
	p := NewParser(lex, "S")

	trees, err := p.Derivations([]string{"John", "sleeps"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected 1 derivation, found %d", len(trees))
	}

	chart, err := p.BuildChart([]string{"John", "sleeps"})
	if err != nil {
		t.Fatal(err)
	}
	// John:NP with (S\NP)/NP composes nowhere, but S\NP applies
	top := chart.Cell(0, 2)
	if top.Len() != 1 || category.String(top.Judgements()[0].Category) != "S" {
		t.Fatalf("top cell:\n%s", chart)
	}
}

func TestTransitive(t *testing.T) {
	p := NewParser(transitiveLexicon(), "S")

	trees, err := p.Derivations([]string{"John", "loves", "Mary"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected 1 derivation, found %d", len(trees))
	}
	if s := trees[0].String(); s != `(< S (NP "John") (> S\NP ((S\NP)/NP "loves") (NP "Mary")))` {
		t.Fatalf("tree: %s", s)
	}
	if s := lambda.TermString(trees[0].Semantics); s != "loves(john, mary)" {
		t.Fatalf("semantics: %s", s)
	}
	if d := trees[0].Depth(); d != 3 {
		t.Fatalf("depth: %d", d)
	}
}

func TestTypeRaisingEnlargesResults(t *testing.T) {
	tokens := []string{"John", "loves", "Mary"}
	p := NewParser(transitiveLexicon(), "S")

	plain, err := p.Derivations(tokens)
	if err != nil {
		t.Fatal(err)
	}

	p.EnableTypeRaising(true)
	raised, err := p.Derivations(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if len(raised) <= len(plain) {
		t.Fatalf("expected more derivations with type-raising: %d <= %d", len(raised), len(plain))
	}

	composed := false
	for _, tree := range raised {
		if len(tree.Leaves()) != 3 {
			t.Fatalf("leaves of %s", tree)
		}
		// every derivation has the same meaning
		if s := lambda.TermString(tree.Semantics); s != "loves(john, mary)" {
			t.Fatalf("semantics of %s: %s", tree, s)
		}
		tree.Walk(func(n *Tree) bool {
			if n.Rule == ForwardComposition {
				composed = true
			}
			return true
		})
		t.Logf("tree: %s", tree)
	}
	if !composed {
		t.Fatalf("expected a derivation composing the raised subject with the verb")
	}
}

func TestTypeRaisingDoesNotLeakRaisedEntries(t *testing.T) {
	p := NewParser(intransitiveLexicon(), "S")
	p.EnableTypeRaising(true)

	chart, err := p.BuildChart([]string{"John", "sleeps"})
	if err != nil {
		t.Fatal(err)
	}
	if chart.Cell(0, 1).Len() != 1 {
		t.Fatalf("unit cell:\n%s", chart)
	}
	top := chart.Cell(0, 2)
	if top.Len() != 1 {
		t.Fatalf("top cell:\n%s", chart)
	}
	// `John sleeps` by backward application, and by forward application of raised John
	if n := top.Judgements()[0].Forest.Len(); n != 2 {
		t.Fatalf("expected 2 derivations, found %d", n)
	}
}

func TestCoordinationAmbiguity(t *testing.T) {
	lex := Lexicon{}
	lex.Add("old", TFwd(TAtom("NP"), TAtom("NP")), nil, 1)
	lex.Add("men", TAtom("NP"), nil, 1)
	lex.Add("and", TFwd(TBwd(TVar("X"), TVar("X")), TVar("X")), nil, 1)
	lex.Add("women", TAtom("NP"), nil, 1)
	p := NewParser(lex, "NP")

	goals, err := p.ParseString("old men and women")
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected 1 judgement, found %d", len(goals))
	}
	if n := goals[0].Forest.Len(); n != 2 {
		t.Fatalf("expected 2 packed derivations, found %d", n)
	}

	trees := Reconstruct(goals)
	if len(trees) != 2 {
		t.Fatalf("expected 2 trees, found %d", len(trees))
	}
	seen := map[string]bool{}
	for _, tree := range trees {
		seen[tree.String()] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected distinct trees: %v", trees)
	}
}

func TestLexicalWeights(t *testing.T) {
	lex := Lexicon{}
	lex.Add("John", TAtom("NP"), nil, 2)
	lex.Add("sleeps", TBwd(TAtom("S"), TAtom("NP")), nil, 5)
	p := NewParser(lex, "S")

	trees, err := p.Derivations([]string{"John", "sleeps"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 || trees[0].Weight != 5 {
		t.Fatalf("expected a single derivation of weight 5: %v", trees)
	}
}

func TestUnknownToken(t *testing.T) {
	p := NewParser(intransitiveLexicon(), "S")

	_, err := p.ParseString("John snores")
	var tokenErr *TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("expected a token error, found %v", err)
	}
	if tokenErr.Token != "snores" || tokenErr.Position != 1 {
		t.Fatalf("token error: %+v", tokenErr)
	}
	if err.Error() != `Token not found: "snores"` {
		t.Fatalf("error: %s", err)
	}
}

func TestEmptyInput(t *testing.T) {
	p := NewParser(intransitiveLexicon(), "S")

	for _, input := range []string{"", "   \t "} {
		if _, err := p.ParseString(input); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("input %q: expected empty input error, found %v", input, err)
		}
	}
	if _, err := p.BuildChart(nil); err != ErrEmptyInput {
		t.Fatalf("expected empty input error, found %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	tokens := []string{"John", "loves", "Mary"}
	p := NewParser(transitiveLexicon(), "S")
	p.EnableTypeRaising(true)

	first, err := p.BuildChart(tokens)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := p.BuildChart(tokens)
		if err != nil {
			t.Fatal(err)
		}
		if again.String() != first.String() {
			t.Fatalf("charts differ:\n%s\n%s", first, again)
		}
	}
}

func TestCellsAreMerged(t *testing.T) {
	p := NewParser(transitiveLexicon(), "S")
	p.EnableTypeRaising(true)

	chart, err := p.BuildChart([]string{"John", "loves", "Mary"})
	if err != nil {
		t.Fatal(err)
	}
	for start := 0; start < chart.Len(); start++ {
		for end := start + 1; end <= chart.Len(); end++ {
			keys := map[string]bool{}
			for _, j := range chart.Cell(start, end).Judgements() {
				if keys[j.Key()] {
					t.Fatalf("duplicate judgement %s in cell (%d, %d)", j, start, end)
				}
				keys[j.Key()] = true
			}
		}
	}

	// each tree of the top cell is one packed derivation
	goals := chart.Goals("S")
	total := 0
	for _, j := range goals {
		total += countTrees(j)
	}
	if trees := Reconstruct(goals); len(trees) != total {
		t.Fatalf("expected %d trees, found %d", total, len(trees))
	}
}

// countTrees counts the trees of j from its forest alone.
func countTrees(j *Judgement) int {
	total := 0
	j.Forest.Range(func(_ int, d Derivation) bool {
		total += countDerivation(d)
		return true
	})
	return total
}

func countDerivation(d Derivation) int {
	n := 1
	for i, child := range d.Children {
		n *= countDerivation(child.Forest.Get(d.Choices[i]))
	}
	return n
}

func TestConcurrentParses(t *testing.T) {
	p := NewParser(transitiveLexicon(), "S")
	p.EnableTypeRaising(true)

	expected, err := p.Derivations([]string{"John", "loves", "Mary"})
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan int)
	for i := 0; i < 4; i++ {
		go func() {
			trees, err := p.Derivations([]string{"John", "loves", "Mary"})
			if err != nil {
				done <- -1
				return
			}
			done <- len(trees)
		}()
	}
	for i := 0; i < 4; i++ {
		if n := <-done; n != len(expected) {
			t.Fatalf("expected %d derivations, found %d", len(expected), n)
		}
	}
}
