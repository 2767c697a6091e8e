package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/legal-search/internal/config"
	"github.com/sells-group/legal-search/internal/search"
	"github.com/sells-group/legal-search/pkg/serp"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "legal-search",
	Short: "Legal contract analysis and similar-document search",
	Long:  "Analyzes legal contract text with deterministic heuristics, searches the web for similar contract documents, and ranks the results. Exposed as an MCP server, a REST API, and a one-shot CLI.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initGateway builds the production search gateway from config.
func initGateway() (search.Gateway, error) {
	if cfg.Serp.Key == "" {
		return nil, eris.New("serp.key is required (set LEGALSEARCH_SERP_KEY or config.yaml)")
	}

	client := serp.NewClient(cfg.Serp.Key,
		serp.WithBaseURL(cfg.Serp.BaseURL),
		serp.WithLimiter(rate.NewLimiter(rate.Limit(cfg.Serp.RateLimit), cfg.Serp.RateBurst)),
	)
	return search.NewSerpGateway(client), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
