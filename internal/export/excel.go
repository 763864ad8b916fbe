package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/teamcal/teamcal-api/internal/domain"
	"github.com/teamcal/teamcal-api/internal/service"
)

// ExcelExporter writes xlsx artifacts into a directory on local disk.
type ExcelExporter struct {
	store  service.TaskStore
	dir    string
	logger *slog.Logger
}

var _ MonthExporter = (*ExcelExporter)(nil)

// NewExcelExporter creates an exporter writing artifacts under dir.
func NewExcelExporter(store service.TaskStore, dir string, logger *slog.Logger) *ExcelExporter {
	return &ExcelExporter{
		store:  store,
		dir:    dir,
		logger: logger.With("component", "excel_exporter"),
	}
}

// ExportMonth reads the team's tasks whose dates carry the YYYY-MM prefix
// and writes them to a fresh xlsx file, ordered by date ascending with
// ties in original list order.
func (e *ExcelExporter) ExportMonth(ctx context.Context, team, monthPrefix string) (*Artifact, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", domain.ErrValidation)
	}
	if err := domain.ValidateMonthPrefix(monthPrefix); err != nil {
		return nil, err
	}

	book, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	rows := book.MonthRows(team, monthPrefix)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Error("failed to close workbook", "error", err)
		}
	}()

	sheet := monthPrefix + "_task"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", "date"); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", "task"); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		dateCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("computing cell name: %w", err)
		}
		taskCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return nil, fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, dateCell, row.Date); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i, err)
		}
		if err := f.SetCellValue(sheet, taskCell, row.Task); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir %s: %w", e.dir, err)
	}

	id := uuid.New().String()
	filename := fmt.Sprintf("%s %s.xlsx", team, sheet)
	path := filepath.Join(e.dir, fmt.Sprintf("%s_%s", id, filename))
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("saving workbook %s: %w", path, err)
	}

	e.logger.InfoContext(ctx, "month exported",
		"team", team,
		"month", monthPrefix,
		"rows", len(rows),
		"path", path)
	return &Artifact{ID: id, Filename: filename, Path: path}, nil
}
