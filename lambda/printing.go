package lambda

import (
	"strings"
)

// TermString returns a string representation of a term.
//
// Nested abstractions are printed compactly: `\x. \y. b` prints as `(\x, y. b)`.
func TermString(t Term) string {
	var sb strings.Builder
	termString(&sb, t)
	return sb.String()
}

func (t *Var) String() string    { return TermString(t) }
func (t *Abs) String() string    { return TermString(t) }
func (t *App) String() string    { return TermString(t) }
func (t *Pred) String() string   { return TermString(t) }
func (t *Binop) String() string  { return TermString(t) }
func (t *Exists) String() string { return TermString(t) }

func termString(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(t.Name)

	case *Abs:
		sb.WriteString("(\\")
		sb.WriteString(t.Var)
		body := t.Body
		for {
			inner, ok := body.(*Abs)
			if !ok {
				break
			}
			sb.WriteString(", ")
			sb.WriteString(inner.Var)
			body = inner.Body
		}
		sb.WriteString(". ")
		termString(sb, body)
		sb.WriteByte(')')

	case *App:
		sb.WriteByte('(')
		termString(sb, t.Fun)
		sb.WriteByte(' ')
		termString(sb, t.Arg)
		sb.WriteByte(')')

	case *Pred:
		termString(sb, t.Fun)
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, arg)
		}
		sb.WriteByte(')')

	case *Binop:
		sb.WriteByte('(')
		termString(sb, t.Left)
		sb.WriteByte(' ')
		sb.WriteString(t.Op)
		sb.WriteByte(' ')
		termString(sb, t.Right)
		sb.WriteByte(')')

	case *Exists:
		sb.WriteString("(exists ")
		sb.WriteString(t.Var)
		sb.WriteString(". ")
		termString(sb, t.Body)
		sb.WriteByte(')')

	case nil:
		sb.WriteString("<nil>")
	}
}
