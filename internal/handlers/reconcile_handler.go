package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// ReconcileHandler exposes on-demand reconciliation of stored aggregates.
type ReconcileHandler struct {
	reconciliationService services.ReconciliationServicer
	auditService          services.AuditServicer
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconciliationService services.ReconciliationServicer, auditService services.AuditServicer) *ReconcileHandler {
	return &ReconcileHandler{reconciliationService: reconciliationService, auditService: auditService}
}

// ReconcileRequest optionally narrows reconciliation to one wallet.
type ReconcileRequest struct {
	WalletID *string `json:"wallet_id" binding:"omitempty,uuid"`
}

// OpsReconcileRequest names the user whose aggregates should be reconciled.
type OpsReconcileRequest struct {
	UserID   string  `json:"user_id" binding:"required,uuid"`
	WalletID *string `json:"wallet_id" binding:"omitempty,uuid"`
}

// Reconcile handles reconciliation of the caller's wallets, budgets and goals.
// @Summary     Reconcile aggregates
// @Description Recompute wallet balances, budget spend and goal amounts from the ledger and repair any drift
// @Tags        reconcile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReconcileRequest false "Optional wallet scope"
// @Success     200 {object} services.ReconcileResult "Reconciliation summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Edit access required"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /reconcile [post]
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	h.run(c, userID, req.WalletID)
}

// ReconcileWallet handles reconciliation of a single wallet.
// @Summary     Reconcile wallet
// @Description Recompute one wallet's balance and the budgets and goals attached to it
// @Tags        wallets,reconcile
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Wallet ID"
// @Success     200 {object} services.ReconcileResult "Reconciliation summary"
// @Failure     400 {object} ErrorResponse "Invalid wallet ID"
// @Failure     403 {object} ErrorResponse "Edit access required"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id}/reconcile [post]
func (h *ReconcileHandler) ReconcileWallet(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	walletID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.run(c, userID, &walletID)
}

// OpsReconcile lets operators reconcile any user's aggregates.
// @Summary     Reconcile a user (ops)
// @Tags        ops
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string              true "Ops API key"
// @Param       request   body   OpsReconcileRequest true "User and optional wallet"
// @Success     200 {object} services.ReconcileResult "Reconciliation summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /ops/reconcile [post]
func (h *ReconcileHandler) OpsReconcile(c *gin.Context) {
	var req OpsReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	h.run(c, req.UserID, req.WalletID)
}

func (h *ReconcileHandler) run(c *gin.Context, userID string, walletID *string) {
	result, err := h.reconciliationService.Recalculate(userID, walletID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resourceType, resourceID := "user", userID
	if walletID != nil {
		resourceType, resourceID = "wallet", *walletID
	}
	h.auditService.Log(userID, "RECONCILE", resourceType, resourceID, c.ClientIP(), map[string]interface{}{
		"wallets_fixed": result.WalletsFixed,
		"budgets_fixed": result.BudgetsFixed,
		"goals_fixed":   result.GoalsFixed,
	})

	c.JSON(http.StatusOK, gin.H{"result": result})
}
