package main

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/recon-cli/internal/sheet"
)

var templateOutDir string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the sample roster workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir := templateOutDir
		if dir == "" {
			dir = cfg.Report.Dir
		}

		path, err := writeTemplate(dir, time.Now())
		if err != nil {
			return err
		}
		zap.L().Info("template written", zap.String("path", path))
		return nil
	},
}

func writeTemplate(dir string, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := sheet.WriteTemplate(&buf); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "create template dir %s", dir)
	}
	path := filepath.Join(dir, sheet.TemplateFileName(now))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", eris.Wrapf(err, "write template %s", path)
	}
	return path, nil
}

func init() {
	templateCmd.Flags().StringVar(&templateOutDir, "out", "", "output directory (default from config)")
	rootCmd.AddCommand(templateCmd)
}
