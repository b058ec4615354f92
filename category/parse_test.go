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

func TestParseAndPrint(t *testing.T) {
	cases := map[string]string{
		"NP":               "NP",
		"S\\NP":            "S\\NP",
		"(S\\NP)/NP":       "(S\\NP)/NP",
		"S\\NP/NP":         "(S\\NP)/NP",
		"S/(S\\NP)":        "S/(S\\NP)",
		"(NP/NP)\\NP":      "(NP/NP)\\NP",
		"$X/$Y":            "$X/$Y",
		"@X":               "@X",
		"NP[masc]":         "NP[masc]",
		"(S\\NP)[dcl]/NP":  "(S\\NP)[dcl]/NP",
		"NP[a][b]":         "NP[a][b]",
		"((S))":            "S",
		"𝒶𝓅𝓅𝓁𝑒𝓈":          "𝒶𝓅𝓅𝓁𝑒𝓈",
	}
	for src, expected := range cases {
		c, err := Parse(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if s := String(c); s != expected {
			t.Fatalf("parse %q: %s, expected %s", src, s, expected)
		}
		// the display form parses back to the same category
		again, err := Parse(String(c))
		if err != nil {
			t.Fatalf("reparse %q: %v", String(c), err)
		}
		if String(again) != expected {
			t.Fatalf("reparse %q: %s", String(c), String(again))
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "(S/NP", "S/", "$", "@", "NP[", "NP[x", "S)", "/NP", "NP NP"} {
		if _, err := Parse(src); err == nil {
			t.Fatalf("parse %q: expected an error", src)
		}
	}
}

func TestParseStructure(t *testing.T) {
	c := MustParse("(S\\NP)/NP")
	comp, ok := c.(*Composite)
	if !ok || comp.Dir != Forward {
		t.Fatalf("expected forward composite, got %s", c.CategoryName())
	}
	left, ok := comp.Left.(*Composite)
	if !ok || left.Dir != Backward {
		t.Fatalf("expected backward composite on the left")
	}
	if a, ok := comp.Right.(*Atomic); !ok || a.Name != "NP" {
		t.Fatalf("expected atomic NP on the right")
	}
}
