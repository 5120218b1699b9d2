package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/recon-cli/internal/model"
	"github.com/sells-group/recon-cli/internal/recon"
	"github.com/sells-group/recon-cli/internal/sheet"
	"github.com/sells-group/recon-cli/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Multipart field names for uploads.
const (
	fieldRoster = "roster"
	fieldLedger = "transactions"
)

// reconAPI serves the upload, reconcile, and download endpoints. Each
// request is an independent run; only rendered reports are kept.
type reconAPI struct {
	loader    *sheet.Loader
	reports   store.ReportStore
	reportTTL time.Duration
	maxUpload int64
	now       func() time.Time
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *reconAPI) handleTemplate(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := sheet.WriteTemplate(&buf); err != nil {
		zap.L().Error("write template failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeAttachment(w, sheet.TemplateFileName(a.now()), buf.Bytes())
}

func (a *reconAPI) handleRosterPreview(w http.ResponseWriter, r *http.Request) {
	files, ok := a.readUploads(w, r, fieldRoster)
	if !ok {
		return
	}

	entries, err := a.loader.Roster(files[fieldRoster])
	if err != nil {
		a.writeInputError(w, err)
		return
	}
	if entries == nil {
		entries = []model.RosterEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

func (a *reconAPI) handleReconcile(w http.ResponseWriter, r *http.Request) {
	files, ok := a.readUploads(w, r, fieldRoster, fieldLedger)
	if !ok {
		return
	}

	roster, err := a.loader.Roster(files[fieldRoster])
	if err != nil {
		a.writeInputError(w, err)
		return
	}
	txns, err := a.loader.Ledger(files[fieldLedger])
	if err != nil {
		a.writeInputError(w, err)
		return
	}

	report := recon.Reconcile(roster, txns)

	var buf bytes.Buffer
	if err := sheet.WriteReport(&buf, report); err != nil {
		zap.L().Error("write report failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	ctx := r.Context()
	if n, err := a.reports.DeleteExpiredReports(ctx); err != nil {
		zap.L().Warn("delete expired reports failed", zap.Error(err))
	} else if n > 0 {
		zap.L().Debug("expired reports deleted", zap.Int("count", n))
	}

	saved, err := a.reports.SaveReport(ctx, sheet.ReportFileName(a.now()), buf.Bytes(), a.reportTTL)
	if err != nil {
		zap.L().Error("save report failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	zap.L().Info("reconcile complete",
		zap.String("report_id", saved.ID),
		zap.Int("roster", len(roster)),
		zap.Int("ledger", len(txns)),
		zap.Int("ok", report.OK.Count),
		zap.Int("mismatch", report.Mismatch.Count),
	)

	writeJSON(w, http.StatusOK, newReconcileResponse(saved, report))
}

func (a *reconAPI) handleReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := a.reports.GetReport(r.Context(), id)
	if err != nil {
		zap.L().Error("get report failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeAttachment(w, rep.FileName, rep.Data)
}

// readUploads reads the named multipart files. A missing part is reported
// by name; the request stops there without running any stage.
func (a *reconAPI) readUploads(w http.ResponseWriter, r *http.Request, fields ...string) (map[string]sheet.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)
	if err := r.ParseMultipartForm(a.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "multipart form required")
		return nil, false
	}

	files := make(map[string]sheet.File, len(fields))
	var missing []string
	for _, field := range fields {
		f, hdr, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			missing = append(missing, field)
			continue
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "multipart form required")
			return nil, false
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "read upload failed")
			return nil, false
		}
		files[field] = sheet.File{Name: hdr.Filename, Data: data}
	}

	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "file required",
			"missing": missing,
		})
		return nil, false
	}
	return files, true
}

func (a *reconAPI) writeInputError(w http.ResponseWriter, err error) {
	if sheet.IsInvalidInput(err) {
		zap.L().Warn("invalid input file", zap.Error(err))
		writeError(w, http.StatusBadRequest, sheet.InvalidInputMessage)
		return
	}
	zap.L().Error("load input failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeAttachment(w http.ResponseWriter, fileName string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
