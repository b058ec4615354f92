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
	"unicode/utf8"

	"github.com/abelloun/cyk/category"
	"github.com/abelloun/cyk/expr"
	"github.com/abelloun/cyk/lambda"
)

// DerivationString renders t as a proof: each lexical entry shows its expression above
// its category, and each rule application is a bar of `=` suffixed with the rule name,
// above the derived category. With withSemantics, semantic values are shown under the
// categories.
func DerivationString(t *Tree, withSemantics bool) string {
	b := derivationBlock(t, withSemantics)
	for i, line := range b.lines {
		b.lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(b.lines, "\n")
}

// Width returns the number of columns of the widest line of the rendered derivation.
func Width(rendered string) int {
	width := 0
	for _, line := range strings.Split(rendered, "\n") {
		if w := utf8.RuneCountInString(line); w > width {
			width = w
		}
	}
	return width
}

type block struct {
	lines []string
	width int
}

func textWidth(s string) int { return utf8.RuneCountInString(s) }

func center(s string, width int) string {
	return strings.Repeat(" ", (width-textWidth(s))/2) + s
}

func maxWidth(width int, texts ...string) int {
	for _, s := range texts {
		if w := textWidth(s); w > width {
			width = w
		}
	}
	return width
}

// conclusion returns the category line and, with semantics, the semantics line of t.
func conclusion(t *Tree, withSemantics bool) []string {
	lines := []string{category.String(t.Judgement.Category)}
	if withSemantics {
		sem := "_"
		if t.Semantics != nil {
			sem = lambda.TermString(t.Semantics)
		}
		lines = append(lines, sem)
	}
	return lines
}

func derivationBlock(t *Tree, withSemantics bool) block {
	concl := conclusion(t, withSemantics)

	switch len(t.Children) {
	case 0:
		lines := append([]string{expr.ExprString(t.Judgement.Expr)}, concl...)
		width := maxWidth(0, lines...)
		for i, line := range lines {
			lines[i] = center(line, width)
		}
		return block{lines, width}

	case 1:
		child := derivationBlock(t.Children[0], withSemantics)
		width := maxWidth(child.width, concl...)
		indent := strings.Repeat(" ", (width-child.width)/2)
		lines := make([]string, 0, len(child.lines)+1+len(concl))
		for _, line := range child.lines {
			lines = append(lines, indent+line)
		}
		return block{appendConclusion(lines, t, concl, width), width}

	case 2:
		left := derivationBlock(t.Children[0], withSemantics)
		right := derivationBlock(t.Children[1], withSemantics)
		total := left.width + right.width + 3
		width := maxWidth(total, concl...)
		indent := strings.Repeat(" ", (width-total)/2)

		var lines []string
		l, r := left.lines, right.lines
		// the shorter side is aligned with the bottom of the taller one
		for len(l) > len(r) {
			lines = append(lines, indent+l[0])
			l = l[1:]
		}
		for len(r) > len(l) {
			lines = append(lines, indent+strings.Repeat(" ", left.width+3)+r[0])
			r = r[1:]
		}
		for i := range l {
			gap := strings.Repeat(" ", left.width-textWidth(l[i])+3)
			lines = append(lines, indent+l[i]+gap+r[i])
		}
		return block{appendConclusion(lines, t, concl, width), width}
	}
	panic("unreachable")
}

func appendConclusion(lines []string, t *Tree, concl []string, width int) []string {
	lines = append(lines, strings.Repeat("=", width)+t.Rule.Name)
	for _, line := range concl {
		lines = append(lines, center(line, width))
	}
	return lines
}

// String returns t as an s-expression: `(NP "John")` for a lexical entry, and
// `(< S (NP "John") (S\NP "sleeps"))` for a rule application.
func (t *Tree) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t *Tree) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	if t.Rule != nil {
		sb.WriteString(t.Rule.Name)
		sb.WriteByte(' ')
	}
	sb.WriteString(category.String(t.Judgement.Category))
	if t.IsLeaf() {
		sb.WriteByte(' ')
		sb.WriteString(expr.ExprString(t.Judgement.Expr))
	}
	for _, child := range t.Children {
		sb.WriteByte(' ')
		child.writeTo(sb)
	}
	sb.WriteByte(')')
}
