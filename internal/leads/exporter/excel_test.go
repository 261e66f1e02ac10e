package exporter

import (
	"strings"
	"testing"
	"time"

	"revenueradar_backend/internal/leads/transport"
)

func TestBuildExcel_WritesHeaderAndRows(t *testing.T) {
	results := []transport.LeadResult{
		{
			Score:          85,
			RuleBasedScore: 78.5,
			AIAdjustment:   7,
			Bucket:         "hot",
			Reason:         "strong fit",
			Actions:        []string{"call", "demo"},
			LeadData: transport.LeadData{
				CompanyName:      "Acme",
				Industry:         "Software",
				Country:          "US",
				EmployeeCount:    250,
				ContactName:      "Jane Doe",
				ContactEmail:     "jane@acme.com",
				JobTitle:         "CTO",
				BudgetRange:      "$100K - $500K",
				PurchaseTimeline: "Short-term (1-3 months)",
			},
		},
	}

	f, err := BuildExcel(results)
	if err != nil {
		t.Fatalf("BuildExcel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 data row, got %d rows", len(rows))
	}
	if rows[0][0] != "Company Name" || rows[0][2] != "Status" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}

	data := rows[1]
	if data[0] != "Acme" || data[1] != "85" || data[2] != "Hot" {
		t.Fatalf("unexpected data row: %v", data)
	}
	if data[14] != "call | demo" {
		t.Fatalf("actions column = %q, want pipe-joined", data[14])
	}
}

func TestBuildExcel_EmptyResults(t *testing.T) {
	f, err := BuildExcel(nil)
	if err != nil {
		t.Fatalf("BuildExcel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}

func TestExcelFilename(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := ExcelFilename(ts)
	if got != "revenueradar_export_20260314_092653.xlsx" {
		t.Fatalf("filename = %q", got)
	}
	if !strings.HasSuffix(got, ".xlsx") {
		t.Fatalf("filename missing extension: %q", got)
	}
}
