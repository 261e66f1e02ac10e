// Package handler exposes the leads API over HTTP.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"revenueradar_backend/internal/leads/exporter"
	"revenueradar_backend/internal/leads/ingest"
	"revenueradar_backend/internal/leads/outreach"
	"revenueradar_backend/internal/leads/service"
	"revenueradar_backend/internal/leads/transport"
	"revenueradar_backend/platform/httpkit"
	"revenueradar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgMissingFile      = "no file uploaded, expected multipart field 'file'"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc       *service.Service
	drafter   *outreach.Drafter
	val       *validator.Validator
	maxUpload int64
}

func New(svc *service.Service, drafter *outreach.Drafter, val *validator.Validator, maxUpload int64) *Handler {
	return &Handler{svc: svc, drafter: drafter, val: val, maxUpload: maxUpload}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.Analyze)
	rg.POST("/draft-email", h.DraftEmail)
	rg.POST("/draft-bulk-emails", h.DraftBulkEmails)
	rg.POST("/export-excel", h.ExportExcel)
	rg.POST("/export-crm", h.ExportCRM)
}

// Analyze accepts an uploaded .xlsx or .csv file and returns scored leads.
func (h *Handler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgMissingFile, nil)
		return
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		httpkit.Error(c, http.StatusBadRequest,
			fmt.Sprintf("file exceeds the %d byte upload limit", h.maxUpload), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	rows, err := ingest.ParseRows(fileHeader.Filename, file)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	resp := h.svc.AnalyzeBatch(c.Request.Context(), rows)
	httpkit.OK(c, resp)
}

// DraftEmail drafts one outreach email. Drafting always succeeds, falling
// back to a template when the model is unavailable.
func (h *Handler) DraftEmail(c *gin.Context) {
	var req transport.DraftEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	draft := h.drafter.Draft(c.Request.Context(), req.CustomerName, req.Company, req.Reason)
	httpkit.OK(c, draft)
}

func (h *Handler) DraftBulkEmails(c *gin.Context) {
	var req transport.BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp := h.drafter.DraftBulk(c.Request.Context(), req.Leads)
	httpkit.OK(c, resp)
}

// ExportExcel streams the scored results back as an xlsx download.
func (h *Handler) ExportExcel(c *gin.Context) {
	var req transport.ExportExcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	workbook, err := exporter.BuildExcel(req.Results)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	filename := exporter.ExcelFilename(time.Now())
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already sent; log-and-abort is all that is left.
		_ = c.Error(err)
	}
}

func (h *Handler) ExportCRM(c *gin.Context) {
	var req transport.ExportCRMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp := exporter.BuildCRMRecords(req.Leads, req.CRMType)
	httpkit.OK(c, resp)
}
