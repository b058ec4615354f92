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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testGrammar = `
:- S
IV :: S\NP
John => NP {john}
sleeps => IV {\x. sleeps(x)}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ccg")
	if err := os.WriteFile(path, []byte(testGrammar), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{args[0], "--grammar", path}, args[1:]...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "--compact=true", "--semantics=true", "John sleeps", "sleeps John")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	for _, expected := range []string{
		"John sleeps: 1 derivation(s)",
		`1. (< S (NP "John") (S\NP "sleeps"))`,
		"{ sleeps(john) }",
		"sleeps John: 0 derivation(s)",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, out)
		}
	}
}

func TestParseCommandRendersProofs(t *testing.T) {
	out, err := run(t, "parse", "--compact=false", "--semantics=false", "--type-raising=true", "John sleeps")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if !strings.Contains(out, "John sleeps: 2 derivation(s)") || !strings.Contains(out, "=<\n") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestParseCommandUnknownToken(t *testing.T) {
	out, err := run(t, "parse", "--compact=true", "--type-raising=false", "John snores")
	if err == nil {
		t.Fatalf("expected an error:\n%s", out)
	}
	if !strings.Contains(out, `Token not found: "snores"`) {
		t.Fatalf("output:\n%s", out)
	}
}

func TestLexiconCommand(t *testing.T) {
	out, err := run(t, "lexicon", "sleeps", "Mary")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if !strings.Contains(out, `"sleeps":S\NP { (\x. sleeps(x)) }`) || !strings.Contains(out, "Mary: no entry") {
		t.Fatalf("output:\n%s", out)
	}
}
