package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizkey/internal/keyword"
)

var matchRow bool

// keywordsCmd exposes the keyword matcher used to filter option rows
var keywordsCmd = &cobra.Command{
	Use:   "keywords match [keyword-string] [text]",
	Short: "Test a keyword string against a piece of text",
	Long: `Evaluates the keyword mini-language against text and prints true or
false. A keyword string is a comma-separated list of JSON strings: any group
matching makes the whole string match, and a group with spaces requires all
of its terms.

Example:
  quizkey keywords match '"週六","週日 晚上"' '3/14 週日 晚上 7:30'`,
	Args: cobra.ExactArgs(3),
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().BoolVar(&matchRow, "row", false, "Match in row mode (canonicalized, empty keywords match all)")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if args[0] != "match" {
		return fmt.Errorf("unknown subcommand %q, expected \"match\"", args[0])
	}
	ks, text := args[1], args[2]

	var ok bool
	if matchRow {
		ok = keyword.MatchRow(ks, text)
	} else {
		ok = keyword.Match(ks, text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
