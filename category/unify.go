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

// Unify attempts to unify a with b, extending s with the bindings required to make both
// categories equal. If unification fails, s is left unmodified.
//
// Unification is not commutative when both sides are unbound variables: the variable
// on the left is bound to the one on the right.
//
// An annotated category unifies with an unannotated one by ignoring the annotation;
// two annotated categories unify only when their features are equal.
func Unify(a, b Category, s *Subst) bool {
	stashed := *s
	if !unify(a, b, s) {
		*s = stashed
		return false
	}
	return true
}

// CanUnify returns true if a and b can be unified under s, without modifying s.
func CanUnify(a, b Category, s Subst) bool {
	return unify(a, b, &s)
}

func unify(a, b Category, s *Subst) bool {
	// unify variables:

	avar, _ := a.(*Var)
	bvar, _ := b.(*Var)
	switch {
	case avar != nil && bvar != nil:
		if avar.Name != bvar.Name {
			s.Bind(avar.Name, bvar)
		}
		return true
	case avar != nil:
		s.Bind(avar.Name, b)
		return true
	case bvar != nil:
		s.Bind(bvar.Name, a)
		return true
	}

	// unify atomic variables:

	aatom, _ := a.(*AtomicVar)
	batom, _ := b.(*AtomicVar)
	switch {
	case aatom != nil && batom != nil:
		if aatom.Name != batom.Name {
			s.Bind(aatom.Name, batom)
		}
		return true
	case aatom != nil:
		if !IsAtomic(b) {
			return false
		}
		s.Bind(aatom.Name, b)
		return true
	case batom != nil:
		if !IsAtomic(a) {
			return false
		}
		s.Bind(batom.Name, a)
		return true
	}

	// unify annotated categories:

	aann, _ := a.(*Annotated)
	bann, _ := b.(*Annotated)
	switch {
	case aann != nil && bann != nil:
		return aann.Feature == bann.Feature && unify(aann.Inner, bann.Inner, s)
	case aann != nil:
		return unify(aann.Inner, b, s)
	case bann != nil:
		return unify(a, bann.Inner, s)
	}

	// unify categories:

	switch a := a.(type) {
	case *Atomic:
		if b, ok := b.(*Atomic); ok {
			return a.Name == b.Name
		}

	case *Composite:
		b, ok := b.(*Composite)
		if !ok || a.Dir != b.Dir {
			return false
		}
		if !unify(a.Left, b.Left, s) {
			return false
		}
		return unify(Replace(a.Right, *s), Replace(b.Right, *s), s)
	}

	return false
}
