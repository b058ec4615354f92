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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	ccg "github.com/abelloun/cyk"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] sentence...",
	Short: "print the derivations of sentences.",
	Long: `Parse each sentence with the grammar and print every derivation
	of its goal category. Sentences are read from standard input, one
	per line, when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(cmd)
		if err != nil {
			return err
		}
		p := g.NewParser()
		p.EnableTypeRaising(GetFlag(cmd, "type-raising"))

		opts := printOptions{
			semantics: GetFlag(cmd, "semantics"),
			compact:   GetFlag(cmd, "compact"),
			limit:     GetUint(cmd, "limit"),
			width:     textWidth(GetUint(cmd, "textwidth")),
		}

		sentences := args
		if len(sentences) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, line := range strings.Split(string(data), "\n") {
				if strings.TrimSpace(line) != "" {
					sentences = append(sentences, line)
				}
			}
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, sentence := range sentences {
			goals, err := p.ParseString(sentence)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", sentence, err)
				failed++
				continue
			}
			printDerivations(out, sentence, ccg.Reconstruct(goals), opts)
		}
		if failed > 0 {
			return errors.Errorf("%d of %d sentences could not be parsed", failed, len(sentences))
		}
		return nil
	},
}

type printOptions struct {
	semantics bool
	compact   bool
	limit     uint
	width     int
}

func printDerivations(out io.Writer, sentence string, trees []*ccg.Tree, opts printOptions) {
	fmt.Fprintf(out, "%s: %d derivation(s)\n", sentence, len(trees))
	for i, t := range trees {
		if opts.limit > 0 && uint(i) >= opts.limit {
			fmt.Fprintf(out, "... %d more\n", len(trees)-i)
			return
		}
		if !opts.compact {
			rendered := ccg.DerivationString(t, opts.semantics)
			// fall back to the compact form when the proof does not fit
			if ccg.Width(rendered) <= opts.width {
				fmt.Fprintf(out, "%d.\n%s\n\n", i+1, rendered)
				continue
			}
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, t)
		if opts.semantics && t.Semantics != nil {
			fmt.Fprintf(out, "   { %s }\n", t.Semantics)
		}
	}
}

// textWidth returns the width of the terminal on standard output, or fallback when it is
// not a terminal.
func textWidth(fallback uint) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return int(fallback)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("type-raising", "t", false, "enable type-raising")
	parseCmd.Flags().BoolP("semantics", "s", false, "print semantic terms")
	parseCmd.Flags().BoolP("compact", "c", false, "print derivations as s-expressions")
	parseCmd.Flags().Uint("limit", 0, "print at most this many derivations per sentence (0 for all)")
	parseCmd.Flags().Uint("textwidth", 130, "maximum text width when not printing to a terminal")
}
