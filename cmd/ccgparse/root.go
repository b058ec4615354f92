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
	"os"
	"runtime/debug"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abelloun/cyk/grammar"
)

// Version is set by the linker: -ldflags "-X main.Version=...".
var Version string

var rootCmd = &cobra.Command{
	Use:   "ccgparse",
	Short: "A chart parser for combinatory categorial grammars.",
	Long:  "Parse sentences with a combinatory categorial grammar, and print their derivations.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("ccgparse ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}
		fmt.Println(cmd.UsageString())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().StringP("grammar", "g", "", "grammar file (text, or YAML with a .yaml extension)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// GetFlag gets an expected boolean flag, or exits.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetString gets an expected string flag, or exits.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetUint gets an expected unsigned flag, or exits.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// loadGrammar configures logging and reads the grammar named by the --grammar flag.
func loadGrammar(cmd *cobra.Command) (*grammar.Grammar, error) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	path := GetString(cmd, "grammar")
	if path == "" {
		return nil, errors.New("no grammar given (use --grammar)")
	}
	return grammar.Load(path)
}
