package exporter

import (
	"strings"

	"revenueradar_backend/internal/leads/transport"
)

// hotLeadThreshold marks the final score at which HubSpot records flip to
// the NEW lifecycle status.
const hotLeadThreshold = 80

// BuildCRMRecords shapes scored leads into records importable by the named
// CRM. HubSpot gets its properties envelope; everything else gets the flat
// Salesforce layout.
func BuildCRMRecords(leads []transport.LeadResult, crmType string) transport.ExportCRMResponse {
	records := make([]interface{}, 0, len(leads))

	if strings.EqualFold(crmType, "hubspot") {
		for _, lead := range leads {
			records = append(records, hubspotRecord(lead))
		}
	} else {
		for _, lead := range leads {
			records = append(records, salesforceRecord(lead))
		}
	}

	return transport.ExportCRMResponse{
		CRMType: crmType,
		Records: records,
		Total:   len(records),
	}
}

func hubspotRecord(lead transport.LeadResult) map[string]interface{} {
	status := "OPEN"
	if lead.Score >= hotLeadThreshold {
		status = "NEW"
	}
	return map[string]interface{}{
		"properties": map[string]interface{}{
			"company":           lead.LeadData.CompanyName,
			"email":             lead.LeadData.ContactEmail,
			"phone":             lead.LeadData.ContactPhone,
			"jobtitle":          lead.LeadData.JobTitle,
			"industry":          lead.LeadData.Industry,
			"city":              lead.LeadData.City,
			"country":           lead.LeadData.Country,
			"numberofemployees": lead.LeadData.EmployeeCount,
			"hs_lead_status":    status,
			"lead_score":        lead.Score,
		},
	}
}

func salesforceRecord(lead transport.LeadResult) map[string]interface{} {
	return map[string]interface{}{
		"Company":           lead.LeadData.CompanyName,
		"Email":             lead.LeadData.ContactEmail,
		"Phone":             lead.LeadData.ContactPhone,
		"Title":             lead.LeadData.JobTitle,
		"Industry":          lead.LeadData.Industry,
		"NumberOfEmployees": lead.LeadData.EmployeeCount,
		"Status":            statusLabel(lead.Bucket),
		"LeadScore__c":      lead.Score,
	}
}
