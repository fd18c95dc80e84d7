package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quizkey/internal/engine"
	"quizkey/internal/keyword"
)

var (
	promptFile string
	dateCells  []string
	jsonOutput bool
)

// solveCmd runs the inference pipeline on one prompt
var solveCmd = &cobra.Command{
	Use:   "solve [prompt]",
	Short: "Infer candidate answers for a verification prompt",
	Long: `Reads the prompt text from the argument, --file, or stdin, runs the
inference cascade, and prints the candidate answers one per line (or as a
JSON array with --json).

When inference yields nothing, the configured user guess string and online
guess file are consulted as fallbacks.

Example:
  quizkey solve '請問一年有幾個月? (A)10 (B)11 (C)12'
  quizkey solve --file question.txt --cell '2026/03/14 (六) 19:30'`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&promptFile, "file", "f", "", "Read the prompt from a file")
	solveCmd.Flags().StringArrayVar(&dateCells, "cell", nil, "Table-cell text near the question (repeatable)")
	solveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the answer list as JSON")
}

func runSolve(cmd *cobra.Command, args []string) error {
	prompt, err := readPrompt(args, promptFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	p := engine.New(engine.Config{
		Logger:          logger,
		MaxPermutations: cfg.Engine.MaxPermutations,
	})
	answers := p.Solve(engine.Question{Text: prompt, DateTimeCells: dateCells})

	if len(answers) == 0 {
		answers = keyword.LoadGuesses(cfg.Answer.UserGuessString, cfg.Answer.OnlineFile)
		if len(answers) > 0 {
			logger.Debug("using configured guesses", zap.Int("count", len(answers)))
		}
	}

	if jsonOutput {
		out, err := json.Marshal(answers)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	for _, ans := range answers {
		fmt.Fprintln(cmd.OutOrStdout(), ans)
	}
	return nil
}

// readPrompt resolves the prompt text: argument first, then --file, then
// stdin.
func readPrompt(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
