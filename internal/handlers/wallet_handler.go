package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// WalletHandler handles wallet-related requests.
type WalletHandler struct {
	walletService services.WalletServicer
	auditService  services.AuditServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer, auditService services.AuditServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService, auditService: auditService}
}

// CreateWalletRequest represents the request payload for creating a wallet.
type CreateWalletRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Description    string          `json:"description" binding:"max=500"`
	Currency       string          `json:"currency" binding:"omitempty,iso4217"`
	InitialBalance decimal.Decimal `json:"initial_balance" binding:"decimal_nonneg"`
}

// UpdateWalletRequest represents the request payload for updating a wallet.
type UpdateWalletRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// AddMemberRequest represents the request payload for sharing a wallet.
type AddMemberRequest struct {
	Email      string                  `json:"email" binding:"required,email"`
	Permission models.WalletPermission `json:"permission" binding:"required,wallet_permission"`
}

// CreateWallet handles the creation of a new wallet.
// @Summary     Create a wallet
// @Description Create a wallet with an opening balance
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateWalletRequest true "Wallet details"
// @Success     201 {object} models.Wallet "Wallet created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate wallet name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets [post]
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	wallet, err := h.walletService.CreateWallet(userID, services.WalletInput{
		Name:           req.Name,
		Description:    req.Description,
		Currency:       req.Currency,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_WALLET", "wallet", wallet.ID, c.ClientIP(),
		map[string]interface{}{"name": wallet.Name, "currency": wallet.Currency, "initial_balance": wallet.InitialBalance.String()})

	c.JSON(http.StatusCreated, gin.H{"wallet": wallet})
}

// GetWallets handles listing the wallets a user owns or shares.
// @Summary     Get wallets
// @Description Get a paginated list of wallets the user owns or is a member of
// @Tags        wallets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Wallet] "Paginated wallets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallets [get]
func (h *WalletHandler) GetWallets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.walletService.GetUserWallets(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWallet handles retrieving a single wallet.
// @Summary     Get wallet by ID
// @Description Get a wallet the user can view
// @Tags        wallets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Wallet ID"
// @Success     200 {object} models.Wallet "Wallet details"
// @Failure     400 {object} ErrorResponse "Invalid wallet ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
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

	wallet, err := h.walletService.GetWalletByID(userID, walletID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// UpdateWallet handles renaming a wallet or changing its description.
// @Summary     Update wallet
// @Description Update a wallet's name or description (owner only)
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Wallet ID"
// @Param       request body UpdateWalletRequest true "Fields to update"
// @Success     200 {object} models.Wallet "Updated wallet"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [put]
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
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

	var req UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	wallet, err := h.walletService.UpdateWallet(userID, walletID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_WALLET", "wallet", wallet.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"wallet": wallet})
}

// DeactivateWallet handles closing a wallet. History is kept.
// @Summary     Deactivate wallet
// @Description Mark a wallet inactive so it accepts no further movements (owner only)
// @Tags        wallets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Wallet ID"
// @Success     200 {object} map[string]string "Wallet deactivated"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Wallet not found"
// @Router      /wallets/{id} [delete]
func (h *WalletHandler) DeactivateWallet(c *gin.Context) {
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

	if err := h.walletService.DeactivateWallet(userID, walletID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DEACTIVATE_WALLET", "wallet", walletID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Wallet deactivated successfully"})
}

// AddMember handles sharing a wallet with another user.
// @Summary     Add wallet member
// @Description Share a wallet with another registered user (owner only)
// @Tags        wallets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Wallet ID"
// @Param       request body AddMemberRequest true "Member email and permission"
// @Success     201 {object} models.WalletMember "Member added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Wallet or user not found"
// @Router      /wallets/{id}/members [post]
func (h *WalletHandler) AddMember(c *gin.Context) {
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

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.walletService.AddMember(userID, walletID, req.Email, req.Permission)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_WALLET_MEMBER", "wallet", walletID, c.ClientIP(),
		map[string]interface{}{"member_id": member.UserID, "permission": member.Permission})

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// RemoveMember handles revoking a member's access.
// @Summary     Remove wallet member
// @Description Revoke a member's access to a wallet (owner only)
// @Tags        wallets
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Wallet ID"
// @Param       memberId path string true "Member ID"
// @Success     200 {object} map[string]string "Member removed"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Wallet or member not found"
// @Router      /wallets/{id}/members/{memberId} [delete]
func (h *WalletHandler) RemoveMember(c *gin.Context) {
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
	memberID, err := parsePathID(c, "memberId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.walletService.RemoveMember(userID, walletID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_WALLET_MEMBER", "wallet", walletID, c.ClientIP(),
		map[string]interface{}{"member_id": memberID})

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
