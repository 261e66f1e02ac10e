// Package exporter renders analyzed leads as Excel workbooks and
// CRM-importable records.
package exporter

import (
	"fmt"
	"strings"
	"time"

	"revenueradar_backend/internal/leads/transport"
	"revenueradar_backend/platform/apperr"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leads"

var excelHeaders = []string{
	"Company Name",
	"Final Score",
	"Status",
	"Rule-Based Score",
	"AI Adjustment",
	"Industry",
	"Country",
	"Employee Count",
	"Contact Name",
	"Contact Email",
	"Job Title",
	"Budget Range",
	"Timeline",
	"Reason",
	"Recommended Actions",
}

// ExcelFilename returns a timestamped download name for an export.
func ExcelFilename(now time.Time) string {
	return fmt.Sprintf("revenueradar_export_%s.xlsx", now.Format("20060102_150405"))
}

// BuildExcel renders the scored results into an xlsx workbook, one row per
// lead in the given order.
func BuildExcel(results []transport.LeadResult) (*excelize.File, error) {
	const op = "exporter.BuildExcel"

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create export sheet", err).WithOp(op)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to remove default sheet", err).WithOp(op)
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to address header cell", err).WithOp(op)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to write header", err).WithOp(op)
		}
	}

	for i, res := range results {
		row := []interface{}{
			res.LeadData.CompanyName,
			res.Score,
			statusLabel(res.Bucket),
			res.RuleBasedScore,
			res.AIAdjustment,
			res.LeadData.Industry,
			res.LeadData.Country,
			res.LeadData.EmployeeCount,
			res.LeadData.ContactName,
			res.LeadData.ContactEmail,
			res.LeadData.JobTitle,
			res.LeadData.BudgetRange,
			res.LeadData.PurchaseTimeline,
			res.Reason,
			strings.Join(res.Actions, " | "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to address data cell", err).WithOp(op)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to write lead row", err).WithOp(op)
		}
	}

	return f, nil
}

// statusLabel maps a bucket to its Excel status column value.
func statusLabel(bucket string) string {
	switch bucket {
	case "hot":
		return "Hot"
	case "warm":
		return "Warm"
	default:
		return "Cold"
	}
}
