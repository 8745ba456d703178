package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// AssetHandler handles asset account and snapshot requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// CreateAssetAccountRequest represents the request payload for creating an
// asset account. Tier and owner cannot be changed afterwards.
type CreateAssetAccountRequest struct {
	Name        string               `json:"name" binding:"required,min=1,max=100"`
	Kind        models.AssetKind     `json:"kind" binding:"required,asset_kind"`
	Tier        models.LiquidityTier `json:"tier" binding:"required,liquidity_tier"`
	Owner       models.AssetOwner    `json:"owner" binding:"required,asset_owner"`
	Institution string               `json:"institution" binding:"max=100"`
	Notes       string               `json:"notes" binding:"max=500"`
}

// UpdateAssetAccountRequest represents the request payload for editing an
// asset account's notes.
type UpdateAssetAccountRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// CloseAssetAccountRequest names the last month an account holds a balance.
type CloseAssetAccountRequest struct {
	Month string `json:"month" binding:"required" example:"2025-03"`
}

// SnapshotEntryRequest is one balance in a RecordSnapshotsRequest. Liabilities
// carry negative balances.
type SnapshotEntryRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Balance   int64  `json:"balance"`
}

// RecordSnapshotsRequest represents the request payload for recording a
// month's balances.
type RecordSnapshotsRequest struct {
	Snapshots []SnapshotEntryRequest `json:"snapshots" binding:"required,min=1,dive"`
}

// CreateAccount handles creating an asset account.
// @Summary     Create an asset account
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       request body CreateAssetAccountRequest true "Account details"
// @Success     201 {object} models.AssetAccount "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate account name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/accounts [post]
func (h *AssetHandler) CreateAccount(c *gin.Context) {
	var req CreateAssetAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.assetService.CreateAccount(services.AssetAccountInput{
		Name:        req.Name,
		Kind:        req.Kind,
		Tier:        req.Tier,
		Owner:       req.Owner,
		Institution: req.Institution,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CREATE_ASSET_ACCOUNT", "asset_account", account.ID, c.ClientIP(),
		map[string]any{"name": account.Name, "tier": account.Tier, "owner": account.Owner})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing asset accounts.
// @Summary     List asset accounts
// @Tags        assets
// @Produce     json
// @Security    APIKeyAuth
// @Param       include_closed query bool false "Include closed accounts"
// @Success     200 {array}  models.AssetAccount "Accounts"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/accounts [get]
func (h *AssetHandler) GetAccounts(c *gin.Context) {
	includeClosed := false
	switch c.Query("include_closed") {
	case "", "false":
	case "true":
		includeClosed = true
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "include_closed must be 'true' or 'false'"))
		return
	}

	accounts, err := h.assetService.GetAccounts(includeClosed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// UpdateAccount handles editing an asset account's notes.
// @Summary     Update asset account notes
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id      path string                    true "Account ID"
// @Param       request body UpdateAssetAccountRequest true "Notes"
// @Success     200 {object} models.AssetAccount "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/accounts/{id} [put]
func (h *AssetHandler) UpdateAccount(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.assetService.UpdateAccountNotes(accountID, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "UPDATE_ASSET_ACCOUNT", "asset_account", accountID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// CloseAccount handles closing an asset account.
// @Summary     Close an asset account
// @Description Close an account. It can no longer receive snapshots after the given month.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       id      path string                   true "Account ID"
// @Param       request body CloseAssetAccountRequest true "Closing month"
// @Success     200 {object} models.AssetAccount "Closed account"
// @Failure     400 {object} ErrorResponse "Invalid input or month"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account already closed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/accounts/{id}/close [post]
func (h *AssetHandler) CloseAccount(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CloseAssetAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.assetService.CloseAccount(accountID, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "CLOSE_ASSET_ACCOUNT", "asset_account", accountID, c.ClientIP(),
		map[string]any{"month": account.ClosedMonth})

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// RecordSnapshots handles recording a month's balances.
// @Summary     Record asset snapshots
// @Description Record or replace balances for a month. All entries are applied or none are.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    APIKeyAuth
// @Param       month   path string                 true "Snapshot month (YYYY-MM)"
// @Param       request body RecordSnapshotsRequest true "Balances"
// @Success     200 {array}  models.AssetSnapshot "Snapshots for the month"
// @Failure     400 {object} ErrorResponse "Invalid input or month"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account closed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/snapshots/{month} [put]
func (h *AssetHandler) RecordSnapshots(c *gin.Context) {
	var req RecordSnapshotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entries := make([]services.SnapshotInput, 0, len(req.Snapshots))
	for _, s := range req.Snapshots {
		entries = append(entries, services.SnapshotInput{AccountID: s.AccountID, Balance: s.Balance})
	}

	month := c.Param("month")
	snapshots, err := h.assetService.RecordSnapshots(month, entries)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor(c), "RECORD_SNAPSHOTS", "asset_snapshot", month, c.ClientIP(),
		map[string]any{"entries": len(entries)})

	c.JSON(http.StatusOK, gin.H{"month": month, "snapshots": snapshots})
}

// GetSnapshots handles listing a month's balances.
// @Summary     Get asset snapshots
// @Tags        assets
// @Produce     json
// @Security    APIKeyAuth
// @Param       month path string true "Snapshot month (YYYY-MM)"
// @Success     200 {array}  models.AssetSnapshot "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/snapshots/{month} [get]
func (h *AssetHandler) GetSnapshots(c *gin.Context) {
	month := c.Param("month")
	snapshots, err := h.assetService.GetSnapshots(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": month, "snapshots": snapshots})
}
