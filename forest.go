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
	"github.com/benbjohnson/immutable"

	"github.com/abelloun/cyk/lambda"
)

// Derivation records one way a judgement was derived.
//
// A lexical derivation has no rule and no children. A derived record names the
// combinator used and the judgements it was applied to; Choices selects, for each
// child, the record of the child's forest this derivation was built from.
type Derivation struct {
	Weight    float64
	Rule      *Combinator
	Children  []*Judgement
	Choices   []int
	Semantics lambda.Term
}

// IsLexical returns true if the derivation is a lexical (axiom) leaf.
func (d Derivation) IsLexical() bool { return d.Rule == nil }

var emptyForest = immutable.NewList()

// Forest is an immutable list of alternative derivations of a judgement.
type Forest struct {
	l *immutable.List
}

// Create a forest with a single derivation.
func SingletonForest(d Derivation) Forest { return Forest{emptyForest.Append(d)} }

// Get the number of derivations in the forest.
func (f Forest) Len() int {
	if f.l == nil {
		return 0
	}
	return f.l.Len()
}

// Get the derivation at index i.
func (f Forest) Get(i int) Derivation { return f.l.Get(i).(Derivation) }

// Iterate over the derivations in the forest.
// If fn returns false, iteration will be stopped.
func (f Forest) Range(fn func(int, Derivation) bool) {
	if f.l == nil {
		return
	}
	iter := f.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !fn(i, v.(Derivation)) {
			return
		}
	}
}

// Append returns a forest extended with d, without mutating f.
func (f Forest) Append(d Derivation) Forest {
	l := f.l
	if l == nil {
		l = emptyForest
	}
	return Forest{l.Append(d)}
}

// Concat returns a forest holding the derivations of f followed by those of g.
func (f Forest) Concat(g Forest) Forest {
	if g.Len() == 0 {
		return f
	}
	l := f.l
	if l == nil {
		l = emptyForest
	}
	b := immutable.NewListBuilder(l)
	g.Range(func(_ int, d Derivation) bool {
		b.Append(d)
		return true
	})
	return Forest{b.List()}
}

// MaxWeight returns the largest weight among the derivations of the forest.
func (f Forest) MaxWeight() float64 {
	var max float64
	f.Range(func(i int, d Derivation) bool {
		if i == 0 || d.Weight > max {
			max = d.Weight
		}
		return true
	})
	return max
}

// product calls fn for each combination of one derivation per forest, passing the index
// of the chosen derivation within each forest.
func product(forests []Forest, fn func(choices []int)) {
	for _, f := range forests {
		if f.Len() == 0 {
			return
		}
	}
	choices := make([]int, len(forests))
	for {
		fn(append([]int(nil), choices...))
		i := len(choices) - 1
		for ; i >= 0; i-- {
			choices[i]++
			if choices[i] < forests[i].Len() {
				break
			}
			choices[i] = 0
		}
		if i < 0 {
			return
		}
	}
}
