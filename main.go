//
// Kaleidoscope version 0.2.0
//
// A tree-walking interpreter for the Kaleidoscope teaching language, with
// user-definable unary and binary operators.
//

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/lexer"
	"github.com/guilload/kaleidoscope/source/parser"
	"github.com/guilload/kaleidoscope/source/repl"
	"github.com/guilload/kaleidoscope/source/session"
	"github.com/guilload/kaleidoscope/source/text"
)

var rootCmd = &cobra.Command{
	Use:   "kaleidoscope",
	Short: "An interpreter for the Kaleidoscope language",
	Long: `Kaleidoscope is a small language of floating-point functions with
user-definable unary and binary operators. Run with no arguments to get
a REPL, or use 'run' to interpret a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(text.Logo())
		repl.Start(session.New(), os.Stdout)
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Interpret a Kaleidoscope source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e := os.ReadFile(args[0])
		if e != nil {
			return e
		}
		s := session.New()
		results, evalErr := s.Do(args[0], string(src))
		for _, result := range results {
			fmt.Println(result)
		}
		if evalErr != nil {
			fmt.Print(text.Red(err.GetList(err.Errors{evalErr})))
			os.Exit(1)
		}
		return nil
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e := os.ReadFile(args[0])
		if e != nil {
			return e
		}
		fmt.Print(parser.String(lexer.NewLexer(args[0], string(src))))
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the parsed form of each item in a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e := os.ReadFile(args[0])
		if e != nil {
			return e
		}
		s := session.New()
		items, parseErr := s.Parse(args[0], string(src))
		for _, item := range items {
			fmt.Println(item)
		}
		if parseErr != nil {
			fmt.Print(text.Red(err.GetList(err.Errors{parseErr})))
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
}

func main() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}
