package expr

import (
	"strings"
)

// ExprString returns a string representation of an expression.
//
// A variable prints as its name. Literals and concatenations print as a single quoted
// string of surface tokens: `"John sleeps"`.
func ExprString(e Expr) string {
	if v, ok := e.(*Var); ok {
		return v.Name
	}
	var sb strings.Builder
	sb.WriteByte('"')
	i := 0
	Leaves(e, func(leaf Expr) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch leaf := leaf.(type) {
		case *Literal:
			sb.WriteString(leaf.Text)
		case *Var:
			sb.WriteString(leaf.Name)
		}
		i++
	})
	sb.WriteByte('"')
	return sb.String()
}

// Words returns the surface tokens of e, with variables written as their names.
func Words(e Expr) []string {
	var words []string
	Leaves(e, func(leaf Expr) {
		switch leaf := leaf.(type) {
		case *Literal:
			words = append(words, leaf.Text)
		case *Var:
			words = append(words, leaf.Name)
		}
	})
	return words
}

func (e *Var) String() string     { return ExprString(e) }
func (e *Literal) String() string { return ExprString(e) }
func (e *Concat) String() string  { return ExprString(e) }
