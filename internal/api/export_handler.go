package api

import (
	"fmt"
	"net/http"

	"github.com/teamcal/teamcal-api/internal/api/middleware"
	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/export"
)

// ExportHandler handles spreadsheet downloads of a month's tasks.
type ExportHandler struct {
	exporter export.MonthExporter
}

// NewExportHandler creates a new ExportHandler over the month exporter.
func NewExportHandler(exporter export.MonthExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// DownloadExcel handles GET /calendar/download_excel?task_month=YYYY-MM.
// An empty month still downloads a header-only workbook.
func (h *ExportHandler) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Session required")
		return
	}

	month := r.URL.Query().Get("task_month")
	if month == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "task_month is required")
		return
	}

	artifact, err := h.exporter.ExportMonth(r.Context(), session.Team, month)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	http.ServeFile(w, r, artifact.Path)
}
