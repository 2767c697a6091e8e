package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/legal-search/internal/analyzer"
	"github.com/sells-group/legal-search/internal/pipeline"
)

var analyzeNoSearch bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a contract from a file or stdin and print the result as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			text []byte
			err  error
		)
		if len(args) == 1 {
			text, err = os.ReadFile(args[0])
			if err != nil {
				return eris.Wrap(err, "read contract file")
			}
		} else {
			text, err = io.ReadAll(os.Stdin)
			if err != nil {
				return eris.Wrap(err, "read stdin")
			}
		}

		if len(text) < cfg.Server.MinTextLength {
			return eris.Errorf("contract text must be at least %d characters long", cfg.Server.MinTextLength)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if analyzeNoSearch {
			return enc.Encode(analyzer.Analyze(string(text)))
		}

		gateway, err := initGateway()
		if err != nil {
			return err
		}
		result, err := pipeline.New(gateway).AnalyzeAndSearch(cmd.Context(), string(text))
		if err != nil {
			return err
		}
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeNoSearch, "no-search", false, "skip the similar-document search, print analysis only")
	rootCmd.AddCommand(analyzeCmd)
}
