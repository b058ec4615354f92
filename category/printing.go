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

package category

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &strings.Builder{} },
}

// String returns the canonical display form of a category.
//
// Composite operands are parenthesised, the top-level category is not: `(S\NP)/NP`.
// Variables are written `$X` and atomic variables `@X`.
func String(c Category) string {
	sb := printerPool.Get().(*strings.Builder)
	categoryString(sb, false, c)
	s := sb.String()
	sb.Reset()
	printerPool.Put(sb)
	return s
}

func (c *Var) String() string       { return String(c) }
func (c *AtomicVar) String() string { return String(c) }
func (c *Atomic) String() string    { return String(c) }
func (c *Composite) String() string { return String(c) }
func (c *Annotated) String() string { return String(c) }

func categoryString(sb *strings.Builder, nested bool, c Category) {
	switch c := c.(type) {
	case *Var:
		sb.WriteByte('$')
		sb.WriteString(c.Name)

	case *AtomicVar:
		sb.WriteByte('@')
		sb.WriteString(c.Name)

	case *Atomic:
		sb.WriteString(c.Name)

	case *Composite:
		if nested {
			sb.WriteByte('(')
		}
		categoryString(sb, true, c.Left)
		sb.WriteByte(c.Dir.Slash())
		categoryString(sb, true, c.Right)
		if nested {
			sb.WriteByte(')')
		}

	case *Annotated:
		_, composite := c.Inner.(*Composite)
		categoryString(sb, composite, c.Inner)
		sb.WriteByte('[')
		sb.WriteString(c.Feature)
		sb.WriteByte(']')

	case nil:
		sb.WriteString("<nil>")
	}
}
