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

	"github.com/benbjohnson/immutable"
)

type nameComparer struct{}

func (nameComparer) Compare(a, b interface{}) int { return strings.Compare(a.(string), b.(string)) }

var emptySubst = immutable.NewSortedMap(nameComparer{})

// Subst is an immutable mapping from variable names to categories, built incrementally
// during unification.
//
// The zero value is an empty substitution. Copying a Subst takes a snapshot of its
// bindings; binding into the copy does not affect the original.
type Subst struct {
	m *immutable.SortedMap
}

// Create an empty substitution.
func NewSubst() Subst { return Subst{emptySubst} }

// Create a substitution from a set of bindings.
func SubstOf(bindings map[string]Category) Subst {
	s := NewSubst()
	for name, c := range bindings {
		s.Bind(name, c)
	}
	return s
}

// Get the number of bindings in the substitution.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the category bound to name.
func (s Subst) Get(name string) (Category, bool) {
	if s.m == nil {
		return nil, false
	}
	c, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return c.(Category), true
}

// Bind name to c, replacing any existing binding.
func (s *Subst) Bind(name string, c Category) {
	if s.m == nil {
		s.m = emptySubst
	}
	s.m = s.m.Set(name, c)
}

// Iterate over bindings in the substitution, sorted by name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(string, Category) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Category)) {
			return
		}
	}
}

func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(name string, c Category) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(" := ")
		sb.WriteString(String(c))
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
