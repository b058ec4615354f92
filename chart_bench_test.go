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
	"strings"
	"testing"

	. "github.com/abelloun/cyk"
	. "github.com/abelloun/cyk/construct"
)

func benchLexicon() Lexicon {
	np, n, s := TAtom("NP"), TAtom("N"), TAtom("S")
	lex := Lexicon{}
	lex.Add("the", TFwd(np, n), nil, 1)
	lex.Add("old", TFwd(n, n), nil, 1)
	lex.Add("man", n, nil, 1)
	lex.Add("dog", n, nil, 1)
	lex.Add("park", n, nil, 1)
	lex.Add("saw", TTransitive(s, np), nil, 1)
	lex.Add("in", TFwd(TBwd(np, np), np), nil, 1)
	lex.Add("in", TFwd(TBwd(TBwd(s, np), TBwd(s, np)), np), nil, 1)
	lex.Add("and", TFwd(TBwd(TVar("X"), TVar("X")), TVar("X")), nil, 1)
	return lex
}

func BenchmarkPrepositionalAttachment(b *testing.B) {
	p := NewParser(benchLexicon(), "S")
	tokens := strings.Fields("the man saw the dog in the park")

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		goals, err := p.Parse(tokens)
		if err != nil || len(goals) == 0 {
			b.Fatal(err)
		}
	}
}

func BenchmarkTypeRaising(b *testing.B) {
	p := NewParser(benchLexicon(), "S")
	p.EnableTypeRaising(true)
	tokens := strings.Fields("the old man saw the dog and the man")

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		goals, err := p.Parse(tokens)
		if err != nil || len(goals) == 0 {
			b.Fatal(err)
		}
	}
}

func BenchmarkReconstruct(b *testing.B) {
	p := NewParser(benchLexicon(), "S")
	goals, err := p.ParseString("the man saw the dog in the park and the old man in the park")
	if err != nil || len(goals) == 0 {
		b.Fatal(err)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if trees := Reconstruct(goals); len(trees) == 0 {
			b.Fatal("no trees")
		}
	}
}
