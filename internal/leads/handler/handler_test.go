package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"revenueradar_backend/internal/leads/advisor"
	"revenueradar_backend/internal/leads/outreach"
	"revenueradar_backend/internal/leads/service"
	"revenueradar_backend/internal/leads/transport"
	"revenueradar_backend/internal/scoring"
	"revenueradar_backend/platform/logger"
	"revenueradar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type noopAdvisor struct{}

func (noopAdvisor) BatchAdvice(_ context.Context, _ []advisor.Prospect) map[string]advisor.Advice {
	return map[string]advisor.Advice{}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	engine, err := scoring.NewEngine(scoring.DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	svc := service.New(engine, noopAdvisor{}, log)
	drafter := outreach.New(nil, log)
	h := New(svc, drafter, validator.New(), 1<<20)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1/leads"))
	return r
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/analyze", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyze_ScoresCSVUpload(t *testing.T) {
	r := newTestRouter(t)

	csvData := "company_name,employee_count,budget_range\nAcme,250,Over $1M\n"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "leads.csv", csvData))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp transport.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 1 || resp.Summary.TotalLeads != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].CustomerName != "Acme" {
		t.Fatalf("customer name = %q", resp.Results[0].CustomerName)
	}
	if resp.Results[0].AIAdjustment != 0 {
		t.Fatalf("adjustment = %d, want 0 without advisory", resp.Results[0].AIAdjustment)
	}
}

func TestAnalyze_RejectsUnsupportedFileType(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "leads.txt", "not a spreadsheet"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "only .xlsx and .csv") {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestAnalyze_RejectsMissingFile(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/analyze", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDraftEmail_ValidatesRequest(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/draft-email", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing customer_name", rec.Code)
	}
}

func TestDraftEmail_ReturnsTemplateDraft(t *testing.T) {
	r := newTestRouter(t)

	body := `{"customer_name": "Jane Doe", "company": "Acme"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/draft-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var draft transport.EmailDraft
	if err := json.Unmarshal(rec.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode draft: %v", err)
	}
	if draft.Subject == "" || draft.Body == "" {
		t.Fatalf("empty draft: %+v", draft)
	}
}

func TestExportCRM_RequiresCRMType(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/export-crm",
		strings.NewReader(`{"leads": []}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing crm_type", rec.Code)
	}
}

func TestExportExcel_StreamsWorkbook(t *testing.T) {
	r := newTestRouter(t)

	body := `{"results": [{"customer_name": "Acme", "score": 85, "bucket": "hot", "lead_data": {"company_name": "Acme"}}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/export-excel", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "revenueradar_export_") {
		t.Fatalf("content disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected workbook bytes in response")
	}
}
