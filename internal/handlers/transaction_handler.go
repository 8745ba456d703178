package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/csvio"
	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
	"budgetbook/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest represents the request payload for creating or editing a
// transaction. Expenses need a category pair; income needs a source.
type TransactionRequest struct {
	Date        string                   `json:"date" binding:"required,datetime=2006-01-02" example:"2025-03-14"`
	Kind        models.TransactionKind   `json:"kind" binding:"required,transaction_kind"`
	Amount      int64                    `json:"amount" binding:"required,gt=0"`
	Person      models.Person            `json:"person" binding:"required,person"`
	Account     models.FundingAccount    `json:"account" binding:"required,funding_account"`
	Status      models.TransactionStatus `json:"status" binding:"omitempty,transaction_status"`
	Category    string                   `json:"category" binding:"max=100"`
	Subcategory string                   `json:"subcategory" binding:"max=100"`
	Source      models.IncomeSource      `json:"source" binding:"omitempty,income_source"`
	Description string                   `json:"description" binding:"max=500"`
}

func (r *TransactionRequest) input() (services.TransactionInput, error) {
	date, err := time.Parse(csvio.DateLayout, r.Date)
	if err != nil {
		return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date: must use the YYYY-MM-DD format")
	}
	return services.TransactionInput{
		Date:        date,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Person:      r.Person,
		Account:     r.Account,
		Status:      r.Status,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Source:      r.Source,
		Description: r.Description,
	}, nil
}

func bindTransaction(c *gin.Context) (services.TransactionInput, error) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return req.input()
}

// CreateTransaction handles recording a new transaction.
// @Summary     Record a transaction
// @Description Record an income or expense. Status defaults to cleared.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       X-Household-Member header string             false "Acting household member"
// @Param       request            body   TransactionRequest true  "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Unknown category pair"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	in, err := bindTransaction(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]any{"kind": transaction.Kind, "amount": transaction.Amount, "month": transaction.Month})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions.
// @Summary     List transactions
// @Description List transactions newest first, optionally filtered by month, kind and status
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       month     query string false "Budget month (YYYY-MM)"
// @Param       kind      query string false "income or expense"
// @Param       status    query string false "cleared or pending"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	filter := services.TransactionFilter{Month: c.Query("month")}

	if v := c.Query("kind"); v != "" {
		kind := models.TransactionKind(v)
		if !kind.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind: must be income or expense")
		}
		filter.Kind = &kind
	}

	if v := c.Query("status"); v != "" {
		status := models.TransactionStatus(v)
		if !status.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "status: must be cleared or pending")
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetTransactionByID handles retrieving a single transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles editing a pending transaction.
// @Summary     Edit a pending transaction
// @Description Replace the fields of a pending transaction. Cleared transactions must be uncleared first.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction is cleared"
// @Failure     422 {object} ErrorResponse "Unknown category pair"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	in, err := bindTransaction(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "UPDATE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]any{"amount": transaction.Amount, "month": transaction.Month})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ClearTransaction handles marking a pending transaction as cleared.
// @Summary     Clear a transaction
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Cleared transaction"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Already cleared"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/clear [post]
func (h *TransactionHandler) ClearTransaction(c *gin.Context) {
	h.setStatus(c, "CLEAR_TRANSACTION", h.transactionService.ClearTransaction)
}

// UnclearTransaction handles moving a cleared transaction back to pending.
// @Summary     Unclear a transaction
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Pending transaction"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Already pending"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/unclear [post]
func (h *TransactionHandler) UnclearTransaction(c *gin.Context) {
	h.setStatus(c, "UNCLEAR_TRANSACTION", h.transactionService.UnclearTransaction)
}

func (h *TransactionHandler) setStatus(c *gin.Context, action string, fn func(string) (*models.Transaction, error)) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := fn(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), action, "transaction", transactionID, c.ClientIP(),
		map[string]any{"status": transaction.Status})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    APIKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
