// Package ingest extracts lead rows from uploaded spreadsheets and
// normalizes them into scoring-ready lead records. All coercion of
// string-typed booleans and numeric columns happens here, so the
// scoring core never sees raw cell values.
package ingest

import (
	"encoding/csv"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"revenueradar_backend/internal/scoring"
	"revenueradar_backend/platform/apperr"

	"github.com/xuri/excelize/v2"
)

// Row is a single spreadsheet row keyed by lower-cased column header.
type Row map[string]string

// ParseRows reads lead rows from an uploaded file. Only .csv and .xlsx are
// accepted; anything else is rejected before the scoring core is reached.
func ParseRows(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, apperr.Unsupported("only .xlsx and .csv files are supported")
	}
}

func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "failed to parse csv file", err)
	}

	return rowsFromRecords(records), nil
}

func parseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "failed to parse xlsx file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.BadRequest("xlsx file has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadRequest, "failed to read xlsx rows", err)
	}

	return rowsFromRecords(records), nil
}

func rowsFromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// Normalize converts parsed rows into lead records, applying the documented
// defaults: missing or non-numeric counters become 0, boolean strings are
// matched case-insensitively, everything else passes through untouched.
func Normalize(rows []Row) []scoring.Lead {
	leads := make([]scoring.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, normalizeRow(row))
	}
	return leads
}

func normalizeRow(row Row) scoring.Lead {
	return scoring.Lead{
		LeadID:           text(row, "lead_id"),
		CompanyName:      text(row, "company_name"),
		ContactFirstName: text(row, "contact_first_name"),
		ContactLastName:  text(row, "contact_last_name"),
		ContactEmail:     text(row, "contact_email"),
		ContactPhone:     text(row, "contact_phone"),
		JobTitle:         text(row, "job_title"),
		Industry:         text(row, "industry"),
		Country:          text(row, "country"),
		City:             text(row, "city"),

		EmployeeCount:    count(row, "employee_count"),
		AnnualRevenueUSD: amount(row, "annual_revenue_usd"),

		WebsiteVisits:    count(row, "website_visits"),
		EmailsOpened:     count(row, "emails_opened"),
		ContentDownloads: count(row, "content_downloads"),

		BudgetRange:       text(row, "budget_range"),
		PurchaseTimeline:  text(row, "purchase_timeline"),
		DecisionAuthority: text(row, "decision_authority"),

		DemoRequested:      flag(row, "demo_requested"),
		FreeTrialSignup:    flag(row, "free_trial_signup"),
		EmailVerified:      flag(row, "email_verified"),
		HasLinkedInProfile: flag(row, "has_linkedin_profile"),

		LeadSource:      text(row, "lead_source"),
		PainPoints:      text(row, "pain_points"),
		Notes:           text(row, "notes"),
		CurrentSolution: text(row, "current_solution"),
	}
}

func text(row Row, key string) string {
	return strings.TrimSpace(row[key])
}

// count coerces a cell to a non-negative integer; anything unparseable is 0.
func count(row Row, key string) int {
	v := amount(row, key)
	if v < 0 {
		return 0
	}
	return int(v)
}

// amount coerces a cell to a non-negative number; anything unparseable is 0.
// Thousands separators are tolerated since spreadsheet exports often carry them.
func amount(row Row, key string) float64 {
	raw := strings.ReplaceAll(strings.TrimSpace(row[key]), ",", "")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// flag normalizes boolean cells: native spreadsheet booleans ("TRUE"), the
// case-insensitive string "true" and "1" all read as true.
func flag(row Row, key string) bool {
	raw := strings.TrimSpace(row[key])
	return strings.EqualFold(raw, "true") || raw == "1"
}
