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

import "github.com/abelloun/cyk/lambda"

// Tree is one explicit derivation of a judgement. Leaves are lexical entries; inner
// nodes name the combinator applied to their children.
type Tree struct {
	Judgement *Judgement
	Rule      *Combinator
	Weight    float64
	Semantics lambda.Term
	Children  []*Tree
}

// Reconstruct expands the forests of judgements into explicit trees, one per
// derivation. The trees of each judgement follow the order of its forest.
func Reconstruct(judgements []*Judgement) []*Tree {
	var trees []*Tree
	for _, j := range judgements {
		trees = append(trees, judgementTrees(j)...)
	}
	return trees
}

func judgementTrees(j *Judgement) []*Tree {
	var trees []*Tree
	j.Forest.Range(func(_ int, d Derivation) bool {
		trees = append(trees, derivationTrees(j, d)...)
		return true
	})
	return trees
}

func derivationTrees(j *Judgement, d Derivation) []*Tree {
	if d.IsLexical() {
		return []*Tree{{Judgement: j, Weight: d.Weight, Semantics: d.Semantics}}
	}
	alternatives := make([][]*Tree, len(d.Children))
	for i, child := range d.Children {
		if d.Choices != nil {
			alternatives[i] = derivationTrees(child, child.Forest.Get(d.Choices[i]))
		} else {
			alternatives[i] = judgementTrees(child)
		}
		if len(alternatives[i]) == 0 {
			return nil
		}
	}
	var trees []*Tree
	picks := make([]int, len(alternatives))
	for {
		t := &Tree{Judgement: j, Rule: d.Rule, Weight: d.Weight, Semantics: d.Semantics, Children: make([]*Tree, len(picks))}
		for i, pick := range picks {
			t.Children[i] = alternatives[i][pick]
		}
		trees = append(trees, t)
		i := len(picks) - 1
		for ; i >= 0; i-- {
			picks[i]++
			if picks[i] < len(alternatives[i]) {
				break
			}
			picks[i] = 0
		}
		if i < 0 {
			return trees
		}
	}
}

// IsLeaf returns true if t is a lexical entry.
func (t *Tree) IsLeaf() bool { return len(t.Children) == 0 }

// Walk visits t and its descendants in pre-order. If fn returns false, the children of
// the visited tree are skipped.
func (t *Tree) Walk(fn func(*Tree) bool) {
	if !fn(t) {
		return
	}
	for _, child := range t.Children {
		child.Walk(fn)
	}
}

// Leaves returns the lexical entries of t, left to right.
func (t *Tree) Leaves() []*Tree {
	var leaves []*Tree
	t.Walk(func(n *Tree) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Depth returns the number of nodes on the longest path from t to a leaf.
func (t *Tree) Depth() int {
	depth := 0
	for _, child := range t.Children {
		if d := child.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}
