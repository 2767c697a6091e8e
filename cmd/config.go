package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Redact the API key before printing.
		printable := *cfg
		if printable.Serp.Key != "" {
			printable.Serp.Key = "********"
		}

		out, err := yaml.Marshal(printable)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
