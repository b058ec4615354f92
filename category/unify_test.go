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

package category_test

import (
	"testing"

	. "github.com/abelloun/cyk/category"
)

func TestUnifyRules(t *testing.T) {
	cases := []struct {
		a, b  string
		ok    bool
		subst string
	}{
		{"$X", "$X", true, "{}"},
		{"$X", "$Y", true, "{X := $Y}"},
		{"$X", "S\\NP", true, "{X := S\\NP}"},
		{"S\\NP", "$X", true, "{X := S\\NP}"},
		{"@X", "@Y", true, "{X := @Y}"},
		{"@X", "NP", true, "{X := NP}"},
		{"NP", "@X", true, "{X := NP}"},
		{"@X", "NP[masc]", true, "{X := NP[masc]}"},
		{"NP[masc]", "@X", true, "{X := NP[masc]}"},
		{"@X", "S/NP", false, "{}"},
		{"@X", "(S/NP)[f]", false, "{}"},
		{"NP", "NP", true, "{}"},
		{"NP", "S", false, "{}"},
		{"NP[masc]", "NP[masc]", true, "{}"},
		{"NP[masc]", "NP[fem]", false, "{}"},
		{"NP[masc]", "NP", true, "{}"},
		{"NP", "NP[fem]", true, "{}"},
		{"$X/$Y", "S/NP", true, "{X := S, Y := NP}"},
		{"$X/$Y", "S\\NP", false, "{}"},
		{"$X/$X", "S/NP", false, "{}"},
		{"$X/$X", "NP/NP", true, "{X := NP}"},
		{"NP", "S/NP", false, "{}"},
	}
	for _, c := range cases {
		s := NewSubst()
		ok := Unify(MustParse(c.a), MustParse(c.b), &s)
		if ok != c.ok {
			t.Fatalf("unify %s with %s: expected %v", c.a, c.b, c.ok)
		}
		if s.String() != c.subst {
			t.Fatalf("unify %s with %s: subst %s, expected %s", c.a, c.b, s, c.subst)
		}
	}
}

func TestUnifyRightOperandSeesLeftBindings(t *testing.T) {
	// The right operands are unified after applying the bindings made on the left.
	s := NewSubst()
	if !Unify(MustParse("$X/$X"), MustParse("$Y/NP"), &s) {
		t.Fatalf("expected unification to succeed")
	}
	if r := String(Replace(MustParse("$X/$X"), s)); r != "NP/NP" {
		t.Fatalf("replaced: %s", r)
	}
}

func TestUnifyFailureLeavesSubstUnmodified(t *testing.T) {
	s := SubstOf(map[string]Category{"Z": &Atomic{"N"}})
	if Unify(MustParse("$X/S"), MustParse("NP/NP"), &s) {
		t.Fatalf("expected unification to fail")
	}
	if s.String() != "{Z := N}" {
		t.Fatalf("subst: %s", s)
	}
}

func TestUnifySoundness(t *testing.T) {
	pairs := [][2]string{
		{"$X/$Y", "(S\\NP)/NP"},
		{"$Y\\$Z", "(S/NP)\\NP"},
		{"$T\\($T/@X)", "$A\\(S/NP)"},
		{"$X/($X\\NP)", "S/(S\\NP)"},
		{"@X", "NP[masc]"},
		{"(S\\NP)[dcl]", "$X[dcl]"},
		{"NP[masc]/$Y", "NP/N"},
		{"$X", "$Y"},
	}
	for _, p := range pairs {
		a, b := MustParse(p[0]), MustParse(p[1])
		s := NewSubst()
		if !Unify(a, b, &s) {
			t.Fatalf("unify %s with %s failed", p[0], p[1])
		}
		ra := String(StripAnnotations(Replace(a, s)))
		rb := String(StripAnnotations(Replace(b, s)))
		if ra != rb {
			t.Fatalf("unify %s with %s: %s != %s under %s", p[0], p[1], ra, rb, s)
		}
	}
}

func TestReplaceIdempotent(t *testing.T) {
	s := SubstOf(map[string]Category{
		"X": &Var{"Y"},
		"Y": MustParse("S\\NP"),
		"Z": &Atomic{"NP"},
	})
	c := MustParse("($X/$Z)\\@W")
	once := Replace(c, s)
	twice := Replace(once, s)
	if String(once) != "((S\\NP)/NP)\\@W" {
		t.Fatalf("replaced: %s", String(once))
	}
	if String(once) != String(twice) {
		t.Fatalf("replace is not idempotent: %s != %s", String(once), String(twice))
	}
}

func TestReplaceCyclicBindings(t *testing.T) {
	s := SubstOf(map[string]Category{"X": &Var{"Y"}, "Y": &Var{"X"}})
	// Cycles terminate with a variable left in place.
	r := String(Replace(&Var{"X"}, s))
	if r != "$X" {
		t.Fatalf("replaced: %s", r)
	}
}

func TestExpand(t *testing.T) {
	adv := MustParse("S/NP")
	c := Expand(MustParse("(Adv\\NP)[f]/Adv"), "Adv", adv)
	if String(c) != "((S/NP)\\NP)[f]/(S/NP)" {
		t.Fatalf("expanded: %s", String(c))
	}
}

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	if name := vt.Fresh("T"); name != "T_0" {
		t.Fatalf("fresh: %s", name)
	}
	if name := vt.Fresh("T_0"); name != "T_1" {
		t.Fatalf("fresh: %s", name)
	}
	vt.Reset()
	if v := vt.New("T"); v.Name != "T_0" {
		t.Fatalf("fresh: %s", v.Name)
	}
}
