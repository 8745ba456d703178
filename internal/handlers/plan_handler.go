package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/services"
)

// PlanHandler handles monthly budget plan requests.
type PlanHandler struct {
	planService  services.BudgetPlanServicer
	auditService services.AuditServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.BudgetPlanServicer, auditService services.AuditServicer) *PlanHandler {
	return &PlanHandler{planService: planService, auditService: auditService}
}

// PlanRowRequest is one planned amount in a SetPlanRequest.
type PlanRowRequest struct {
	Category      string `json:"category" binding:"required,max=100"`
	Subcategory   string `json:"subcategory" binding:"required,max=100"`
	PlannedAmount int64  `json:"planned_amount" binding:"gte=0"`
}

// SetPlanRequest represents the request payload for upserting plan rows.
type SetPlanRequest struct {
	Rows []PlanRowRequest `json:"rows" binding:"required,min=1,dive"`
}

// CopyPlanRequest represents the request payload for copying a plan into the
// month named in the path.
type CopyPlanRequest struct {
	SourceMonth string `json:"source_month" binding:"required" example:"2025-02"`
	Overwrite   bool   `json:"overwrite"`
}

// GetPlan handles retrieving a month's plan.
// @Summary     Get budget plan
// @Description List the plan rows of a month ordered by category and subcategory
// @Tags        plans
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Budget month (YYYY-MM)"
// @Success     200 {array}  models.BudgetPlan "Plan rows"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{month} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	month := c.Param("month")
	rows, err := h.planService.GetPlan(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month, "rows": rows})
}

// SetPlan handles upserting plan rows for a month.
// @Summary     Set budget plan rows
// @Description Create or update planned amounts. All rows are applied or none are.
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       month   path string         true "Budget month (YYYY-MM)"
// @Param       request body SetPlanRequest true "Plan rows"
// @Success     200 {array}  models.BudgetPlan "Plan rows after the update"
// @Failure     400 {object} ErrorResponse "Invalid input or month"
// @Failure     422 {object} ErrorResponse "Unknown category pair"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{month} [put]
func (h *PlanHandler) SetPlan(c *gin.Context) {
	var req SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rows := make([]services.PlanRowInput, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, services.PlanRowInput{
			Category:      r.Category,
			Subcategory:   r.Subcategory,
			PlannedAmount: r.PlannedAmount,
		})
	}

	month := c.Param("month")
	result, err := h.planService.SetPlanRows(month, rows)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "SET_PLAN", "budget_plan", month, c.ClientIP(),
		map[string]any{"rows": len(rows)})

	c.JSON(http.StatusOK, gin.H{"month": month, "rows": result})
}

// DeletePlanRow handles removing one plan row.
// @Summary     Delete a plan row
// @Tags        plans
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Budget month (YYYY-MM)"
// @Param       id    path string true "Plan row ID"
// @Success     200 {object} MessageResponse "Plan row deleted"
// @Failure     400 {object} ErrorResponse "Invalid month or row ID"
// @Failure     404 {object} ErrorResponse "Plan row not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{month}/rows/{id} [delete]
func (h *PlanHandler) DeletePlanRow(c *gin.Context) {
	rowID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Param("month")
	if err := h.planService.DeletePlanRow(month, rowID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "DELETE_PLAN_ROW", "budget_plan", rowID, c.ClientIP(),
		map[string]any{"month": month})

	c.JSON(http.StatusOK, gin.H{"message": "Plan row deleted successfully"})
}

// CopyPlan handles copying another month's plan into this month.
// @Summary     Copy a budget plan
// @Description Copy every plan row of source_month into the month in the path. A non-empty target is only replaced when overwrite is true.
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       month   path string          true "Target month (YYYY-MM)"
// @Param       request body CopyPlanRequest true "Copy options"
// @Success     201 {object} services.CopyResult "Copy result"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     409 {object} ErrorResponse "Source empty or target not empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{month}/copy [post]
func (h *PlanHandler) CopyPlan(c *gin.Context) {
	var req CopyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.planService.CopyPlan(req.SourceMonth, c.Param("month"), req.Overwrite)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "COPY_PLAN", "budget_plan", result.TargetMonth, c.ClientIP(),
		map[string]any{"source_month": result.SourceMonth, "rows_copied": result.RowsCopied, "overwrite": result.Overwrite})

	c.JSON(http.StatusCreated, gin.H{"copy": result})
}
