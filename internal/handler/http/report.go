package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/report"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	PayrollWithIncentives(w http.ResponseWriter, r *http.Request)
	LabourMonth(w http.ResponseWriter, r *http.Request)
	Clients(w http.ResponseWriter, r *http.Request)
	Sites(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	records, totals, err := h.reportService.Daily(
		r.Context(), r.URL.Query().Get("date"),
		optionalQuery(r, "client_id"), optionalQuery(r, "site_id"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"records": records,
		"totals":  totals,
	})
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	records, totals, err := h.reportService.Monthly(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"records": records,
		"totals":  totals,
	})
}

// Payroll implements ReportHandler.
func (h *reportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Payroll(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// PayrollWithIncentives implements ReportHandler.
func (h *reportHandlerImpl) PayrollWithIncentives(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.PayrollWithIncentives(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// LabourMonth implements ReportHandler.
func (h *reportHandlerImpl) LabourMonth(w http.ResponseWriter, r *http.Request) {
	records, summary, err := h.reportService.LabourMonth(
		r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("month"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"records": records,
		"summary": summary,
	})
}

// Clients implements ReportHandler.
func (h *reportHandlerImpl) Clients(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.ClientReport(
		r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Sites implements ReportHandler.
func (h *reportHandlerImpl) Sites(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.SiteReport(
		r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Analytics implements ReportHandler.
func (h *reportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Analytics(
		r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
