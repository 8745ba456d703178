package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/period"
	"budgetbook/internal/services"
)

// defaultTrendMonths is the window of GET /reports/trends without ?months.
const defaultTrendMonths = 12

// ReportHandler serves the read-side projections. Reports never write, so
// nothing here is audited.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReconciliation handles the monthly budget-vs-actual report.
// @Summary     Monthly reconciliation
// @Description Income, expenses, savings rate and plan variance for a month, with a projected view that counts pending transactions
// @Tags        reports
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Budget month (YYYY-MM)"
// @Success     200 {object} reports.Reconciliation "Reconciliation"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{month}/reconciliation [get]
func (h *ReportHandler) GetReconciliation(c *gin.Context) {
	report, err := h.reportService.Reconcile(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetNetWorth handles the month-over-month net worth report.
// @Summary     Net worth
// @Description Net worth for a month with deltas against the prior month by account, tier and owner
// @Tags        reports
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Snapshot month (YYYY-MM)"
// @Success     200 {object} reports.NetWorthReport "Net worth"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{month}/net-worth [get]
func (h *ReportHandler) GetNetWorth(c *gin.Context) {
	report, err := h.reportService.NetWorth(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSummary handles the combined month summary.
// @Summary     Month summary
// @Description Reconciliation and net worth for the same month
// @Tags        reports
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} services.MonthSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/{month}/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetYearToDate handles the year-to-date report.
// @Summary     Year to date
// @Description Cleared totals for each month from January through the given month
// @Tags        reports
// @Produce     json
// @Security    APIKeyAuth
// @Param       year    path  int    true  "Calendar year"
// @Param       through query string false "Last month included (YYYY-MM), defaults to December"
// @Success     200 {object} reports.YearToDateReport "Year to date"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/ytd/{year} [get]
func (h *ReportHandler) GetYearToDate(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year: must be a four digit year"))
		return
	}

	through := c.Query("through")
	if through == "" {
		through = fmt.Sprintf("%04d-12", year)
	}

	report, err := h.reportService.YearToDate(year, through)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTrends handles the trailing history report.
// @Summary     Trends
// @Description Month-by-month cleared cash flow, savings rate and net worth for a trailing window
// @Tags        reports
// @Produce     json
// @Security    APIKeyAuth
// @Param       through query string false "Last month of the window (YYYY-MM), defaults to the current month"
// @Param       months  query int    false "Window length in months (1-120)" default(12)
// @Success     200 {object} reports.TrendsReport "Trends"
// @Failure     400 {object} ErrorResponse "Invalid month or window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/trends [get]
func (h *ReportHandler) GetTrends(c *gin.Context) {
	months := defaultTrendMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months: must be an integer"))
			return
		}
		months = n
	}

	through := c.Query("through")
	if through == "" {
		through = period.Of(time.Now()).String()
	}

	report, err := h.reportService.Trends(through, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
