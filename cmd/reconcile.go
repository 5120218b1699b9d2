package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/recon-cli/internal/recon"
	"github.com/sells-group/recon-cli/internal/sheet"
)

var (
	reconcileRosterPath string
	reconcileLedgerPath string
	reconcileOutDir     string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a roster against a bank ledger export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("reconcile"); err != nil {
			return err
		}

		report, err := reconcileFiles(newLoader(cfg), reconcileRosterPath, reconcileLedgerPath)
		if err != nil {
			return err
		}

		dir := reconcileOutDir
		if dir == "" {
			dir = cfg.Report.Dir
		}
		path, err := saveReport(dir, report, time.Now())
		if err != nil {
			return err
		}

		printSummaries(cmd.OutOrStdout(), report)
		zap.L().Info("reconcile complete",
			zap.Int("rows", len(report.Rows)),
			zap.Int("ok", report.OK.Count),
			zap.Int("mismatch", report.Mismatch.Count),
			zap.String("report", path),
		)
		return nil
	},
}

// reconcileFiles loads both files and runs the reconciliation. Malformed
// input is logged with its cause and reported with the generic message.
func reconcileFiles(loader *sheet.Loader, rosterPath, ledgerPath string) (recon.Report, error) {
	rosterFile, err := sheet.Open(rosterPath)
	if err != nil {
		return recon.Report{}, err
	}
	ledgerFile, err := sheet.Open(ledgerPath)
	if err != nil {
		return recon.Report{}, err
	}

	roster, err := loader.Roster(rosterFile)
	if err != nil {
		return recon.Report{}, userFacing(err)
	}
	zap.L().Info("roster loaded", zap.String("file", rosterPath), zap.Int("entries", len(roster)))

	txns, err := loader.Ledger(ledgerFile)
	if err != nil {
		return recon.Report{}, userFacing(err)
	}
	zap.L().Info("ledger loaded", zap.String("file", ledgerPath), zap.Int("records", len(txns)))

	return recon.Reconcile(roster, txns), nil
}

func userFacing(err error) error {
	if !sheet.IsInvalidInput(err) {
		return err
	}
	zap.L().Warn("invalid input file", zap.Error(err))
	return eris.New(sheet.InvalidInputMessage)
}

func saveReport(dir string, report recon.Report, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := sheet.WriteReport(&buf, report); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "create report dir %s", dir)
	}
	path := filepath.Join(dir, sheet.ReportFileName(now))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", eris.Wrapf(err, "write report %s", path)
	}
	return path, nil
}

func printSummaries(w io.Writer, report recon.Report) {
	fmt.Fprintln(w, report.OK.Line())
	fmt.Fprintln(w, report.Mismatch.Line())
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileRosterPath, "roster", "", "path to roster workbook (required)")
	reconcileCmd.Flags().StringVar(&reconcileLedgerPath, "transactions", "", "path to bank ledger export (required)")
	reconcileCmd.Flags().StringVar(&reconcileOutDir, "out", "", "report output directory (default from config)")
	_ = reconcileCmd.MarkFlagRequired("roster")
	_ = reconcileCmd.MarkFlagRequired("transactions")
	rootCmd.AddCommand(reconcileCmd)
}
