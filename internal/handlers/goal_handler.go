package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/csvio"
	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService  services.SavingsGoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.SavingsGoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a savings goal.
type CreateGoalRequest struct {
	Name                string `json:"name" binding:"required,min=1,max=100"`
	TargetAmount        int64  `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount       int64  `json:"current_amount" binding:"gte=0"`
	MonthlyContribution int64  `json:"monthly_contribution" binding:"gte=0"`
	TargetDate          string `json:"target_date" binding:"omitempty,datetime=2006-01-02" example:"2026-06-01"`
	Priority            int    `json:"priority" binding:"omitempty,min=1,max=10"`
	Notes               string `json:"notes" binding:"max=500"`
}

// ContributeRequest represents the request payload for adding to a goal.
type ContributeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse is a savings goal with its progress.
type GoalResponse struct {
	models.SavingsGoal
	ProgressPercent float64 `json:"progress_percent"`
}

// CreateGoal handles creating a savings goal.
// @Summary     Create a savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.SavingsGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var targetDate *time.Time
	if req.TargetDate != "" {
		d, err := time.Parse(csvio.DateLayout, req.TargetDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_date: must use the YYYY-MM-DD format"))
			return
		}
		targetDate = &d
	}

	goal, err := h.goalService.CreateGoal(services.SavingsGoalInput{
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		CurrentAmount:       req.CurrentAmount,
		MonthlyContribution: req.MonthlyContribution,
		TargetDate:          targetDate,
		Priority:            req.Priority,
		Notes:               req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CREATE_GOAL", "savings_goal", goal.ID, c.ClientIP(),
		map[string]any{"name": goal.Name, "target_amount": goal.TargetAmount})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing active savings goals.
// @Summary     List savings goals
// @Description List active goals by priority, then target date
// @Tags        goals
// @Produce     json
// @Security    APIKeyAuth
// @Success     200 {array}  GoalResponse "Goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalService.GetActiveGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, GoalResponse{SavingsGoal: goals[i], ProgressPercent: goals[i].ProgressPercent()})
	}

	c.JSON(http.StatusOK, gin.H{"goals": out})
}

// Contribute handles adding money to a goal.
// @Summary     Contribute to a savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body ContributeRequest true "Contribution"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/contribute [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.Contribute(goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CONTRIBUTE_GOAL", "savings_goal", goalID, c.ClientIP(),
		map[string]any{"amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"goal": GoalResponse{SavingsGoal: *goal, ProgressPercent: goal.ProgressPercent()}})
}

// DeleteGoal handles deactivating a goal.
// @Summary     Deactivate a savings goal
// @Tags        goals
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deactivated"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeactivateGoal(goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "DEACTIVATE_GOAL", "savings_goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deactivated successfully"})
}
