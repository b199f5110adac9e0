package audit

import (
	"fmt"
	"io"
	"time"

	"github.com/diewo77/go-srm/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet name used by WriteXLSX.
const ExportSheet = "Audit Log"

var exportHeader = []string{"Time", "User ID", "Action", "Entity Type", "Entity ID", "Details"}

// WriteXLSX writes logs as a single-sheet workbook in the order given.
func WriteXLSX(w io.Writer, logs []models.AuditLog) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(ExportSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(ExportSheet); err == nil {
		f.SetActiveSheet(index)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(ExportSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			l.CreatedAt.UTC().Format(time.RFC3339),
			l.UserID,
			l.Action,
			l.EntityType,
			deref(l.EntityID),
			deref(l.Details),
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(ExportSheet, "A", "A", 22); err != nil {
		return fmt.Errorf("size time column: %w", err)
	}
	if err := f.SetColWidth(ExportSheet, "F", "F", 60); err != nil {
		return fmt.Errorf("size details column: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
