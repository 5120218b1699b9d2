package main

import (
	"github.com/shopspring/decimal"

	"github.com/sells-group/recon-cli/internal/model"
	"github.com/sells-group/recon-cli/internal/recon"
	"github.com/sells-group/recon-cli/internal/store"
)

type reconcileResponse struct {
	ReportID    string                 `json:"report_id"`
	FileName    string                 `json:"file_name"`
	DownloadURL string                 `json:"download_url"`
	Summaries   map[string]summaryView `json:"summaries"`
	Rows        []rowView              `json:"rows"`
}

type summaryView struct {
	Count int    `json:"count"`
	Total string `json:"total"`
	Line  string `json:"line"`
}

// rowView is one reconciled row in display order. Pointer fields are null
// when that side of the join is absent.
type rowView struct {
	Verdict      string             `json:"verdict"`
	VerdictLabel string             `json:"verdict_label"`
	Seq          *int               `json:"seq"`
	Name         string             `json:"name"`
	Roster       *model.RosterEntry `json:"roster"`
	Deposit      *string            `json:"deposit"`
	Branch       *string            `json:"branch"`
	Date         *string            `json:"date"`
	Description  *string            `json:"description"`
}

func newReconcileResponse(rep *store.Report, report recon.Report) reconcileResponse {
	rows := make([]rowView, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, newRowView(row))
	}
	return reconcileResponse{
		ReportID:    rep.ID,
		FileName:    rep.FileName,
		DownloadURL: "/reports/" + rep.ID,
		Summaries: map[string]summaryView{
			"ok":       newSummaryView(report.OK),
			"mismatch": newSummaryView(report.Mismatch),
		},
		Rows: rows,
	}
}

func newSummaryView(s recon.Summary) summaryView {
	return summaryView{Count: s.Count, Total: s.Total.String(), Line: s.Line()}
}

func newRowView(row model.ReconciledRow) rowView {
	v := rowView{
		Verdict:      row.Verdict.String(),
		VerdictLabel: row.Verdict.Label(),
		Name:         row.Name(),
		Roster:       row.Roster,
	}
	if seq, ok := row.Seq(); ok {
		v.Seq = &seq
	}
	if t := row.Txn; t != nil {
		v.Deposit = amountString(t.Deposit)
		v.Branch = &t.Branch
		v.Date = &t.Date
		v.Description = &t.Description
	}
	return v
}

func amountString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
