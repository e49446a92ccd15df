package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flasherp/internal/domain/payroll"
	"flasherp/internal/platform/metrics"
	"flasherp/internal/transport/http/api"
	"flasherp/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
	Metrics *metrics.Collector
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/report", h.handleMonthlyReport)
		r.Get("/range-report", h.handleRangeReport)
		r.Get("/sheet-entries", h.handleListSheetEntries)
		r.Put("/sheet-entries", h.handleSaveSheetEntries)
		r.Get("/payment-status", h.handlePaymentStatus)
		r.Put("/payment-status", h.handleSetPaymentStatus)
		r.Get("/export/pdf", h.handleExportPDF)
	})
}

func (h *Handler) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	report, err := h.Service.MonthlyReport(r.Context(), month)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRangeReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := h.Service.RangeReport(r.Context(), q.Get("from_date"), q.Get("to_date"), q.Get("month"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSheetEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := h.Service.ListSheetEntries(r.Context(), q.Get("from_date"), q.Get("to_date"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

type sheetBatchPayload struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Entries  []payroll.SheetEntryInput `json:"entries"`
}

func (h *Handler) handleSaveSheetEntries(w http.ResponseWriter, r *http.Request) {
	var payload sheetBatchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Service.UpsertSheetEntries(r.Context(), payload.FromDate, payload.ToDate, payload.Entries)
	if errors.Is(err, payroll.ErrPeriodMismatch) {
		api.FailWithDetails(w, http.StatusBadRequest, "period_mismatch", err.Error(),
			map[string]string{"fromDate": payload.FromDate, "toDate": payload.ToDate},
			middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := q.Get("month")
	employeeID := q.Get("employee_id")
	if month == "" || employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "month and employee_id are required", middleware.GetRequestID(r.Context()))
		return
	}
	if _, _, err := payroll.ResolveMonth(month); err != nil {
		h.fail(w, r, err)
		return
	}

	status, err := h.Service.PaymentStatus(r.Context(), month, employeeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

type paymentStatusPayload struct {
	Month      string `json:"month"`
	EmployeeID string `json:"employeeId"`
	Status     string `json:"status"`
}

func (h *Handler) handleSetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var payload paymentStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Month == "" || payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "month and employeeId are required", middleware.GetRequestID(r.Context()))
		return
	}
	if _, _, err := payroll.ResolveMonth(payload.Month); err != nil {
		h.fail(w, r, err)
		return
	}

	status, err := h.Service.SetPaymentStatus(r.Context(), payload.Month, payload.EmployeeID, payload.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

// handleExportPDF renders the printable sheet. A from_date/to_date pair
// selects the range report, otherwise month selects the calendar report.
func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		report   payroll.Report
		subtitle string
		err      error
	)
	if q.Get("from_date") != "" || q.Get("to_date") != "" {
		report, err = h.Service.RangeReport(r.Context(), q.Get("from_date"), q.Get("to_date"), q.Get("month"))
		subtitle = fmt.Sprintf("Period: %s to %s", q.Get("from_date"), q.Get("to_date"))
	} else {
		report, err = h.Service.MonthlyReport(r.Context(), q.Get("month"))
		subtitle = "Calendar month"
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	generatedBy := "system"
	if user, ok := middleware.GetUser(r.Context()); ok && user.Name != "" {
		generatedBy = user.Name
	}

	pdfBytes, err := payroll.SheetPDF(report, subtitle, generatedBy)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordPDFExport()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-sheet-%s.pdf", report.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
	case errors.Is(err, payroll.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
	case errors.Is(err, payroll.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", err.Error(), requestID)
	case errors.Is(err, payroll.ErrPeriodMismatch):
		api.Fail(w, http.StatusBadRequest, "period_mismatch", err.Error(), requestID)
	default:
		slog.Error("payroll request failed", "err", err, "path", r.URL.Path, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
