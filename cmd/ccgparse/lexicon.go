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

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon [flags] [token...]",
	Short: "print the lexicon of a grammar.",
	Long: `Print the goal, aliases and lexical entries of a grammar, with
	aliases expanded. When tokens are given, only their entries are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprint(out, g.String())
			return nil
		}
		lex := g.Lexicon()
		for _, token := range args {
			entries, ok := lex[token]
			if !ok {
				fmt.Fprintf(out, "%s: no entry\n", token)
				continue
			}
			for _, j := range entries {
				fmt.Fprintln(out, j.ShowSemantics())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}
