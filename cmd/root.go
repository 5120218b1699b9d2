package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/recon-cli/internal/config"
	"github.com/sells-group/recon-cli/internal/sheet"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "recon-cli",
	Short: "Roster deposit reconciliation",
	Long:  "Matches a roster of expected payers against a bank ledger export by payer name, flags missing and mismatched deposits, and writes an annotated report workbook.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newLoader builds a sheet loader from the ledger settings.
func newLoader(c *config.Config) *sheet.Loader {
	return sheet.NewLoader(sheet.Options{
		LedgerSkipRows: c.Ledger.SkipRows,
		CSVEncoding:    c.Ledger.CSVEncoding,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
