package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn     func(userID string, in services.EntryInput) (*models.Transaction, error)
	updateTransactionFn     func(userID, transactionID string, in services.EntryInput) (*models.Transaction, error)
	deleteTransactionFn     func(userID, transactionID string) error
	createTransferFn        func(userID string, in services.TransferInput) (*services.TransferResult, error)
	getWalletTransactionsFn func(userID, walletID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getUserTransactionsFn   func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn    func(userID, transactionID string) (*models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(userID string, in services.EntryInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID string, in services.EntryInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

func (m *mockTransactionService) CreateTransfer(userID string, in services.TransferInput) (*services.TransferResult, error) {
	if m.createTransferFn != nil {
		return m.createTransferFn(userID, in)
	}
	return &services.TransferResult{}, nil
}

func (m *mockTransactionService) GetWalletTransactions(userID, walletID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getWalletTransactionsFn != nil {
		return m.getWalletTransactionsFn(userID, walletID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.POST("/transactions/transfer", handler.CreateTransfer)
	auth.GET("/transactions", handler.GetUserTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	auth.GET("/wallets/:id/transactions", handler.GetWalletTransactions)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 and forwards the entry", func(t *testing.T) {
		var got services.EntryInput
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID string, in services.EntryInput) (*models.Transaction, error) {
				got = in
				return &models.Transaction{
					Base:     models.Base{ID: testOtherID},
					UserID:   userID,
					WalletID: in.WalletID,
					Type:     in.Type,
					Amount:   in.Amount,
					Date:     in.Date,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, audit))

		rec := doRequest(r, "POST", "/transactions",
			`{"wallet_id":"`+testWalletID+`","type":"expense","amount":"400","note":"rent","date":"2025-01-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.WalletID != testWalletID || got.Type != models.TransactionTypeExpense {
			t.Errorf("unexpected input forwarded: %+v", got)
		}
		if !got.Amount.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected amount 400, got %s", got.Amount)
		}
		if !got.Date.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected 2025-01-10, got %s", got.Date)
		}
		if got.CategoryID != nil {
			t.Errorf("expected no category, got %v", *got.CategoryID)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != "CREATE_TRANSACTION" {
			t.Errorf("expected CREATE_TRANSACTION audit entry, got %v", audit.calls)
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"expense","amount":"0"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"income","amount":-3}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"transfer","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"income","amount":"10","date":"yesterday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("maps insufficient balance", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ string, _ services.EntryInput) (*models.Transaction, error) {
				return nil, apperrors.ErrInsufficientBalance
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"expense","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_BALANCE")
	})

	t.Run("maps version conflicts to 409", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ string, _ services.EntryInput) (*models.Transaction, error) {
				return nil, apperrors.ErrConcurrentModification
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"wallet_id":"`+testWalletID+`","type":"income","amount":"10"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CONCURRENT_MODIFICATION")
	})
}

func TestTransactionHandler_CreateTransfer(t *testing.T) {
	t.Run("returns 201 with both legs", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransferFn: func(_ string, in services.TransferInput) (*services.TransferResult, error) {
				return &services.TransferResult{
					TransferID: testOtherID,
					FromEntry:  &models.Transaction{WalletID: in.FromWalletID, Type: models.TransactionTypeExpense, Amount: in.Amount},
					ToEntry:    &models.Transaction{WalletID: in.ToWalletID, Type: models.TransactionTypeIncome, Amount: in.Amount},
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions/transfer",
			`{"from_wallet_id":"`+testWalletID+`","to_wallet_id":"`+testOtherID+`","amount":"250"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		transfer := parseJSON(t, rec)["transfer"].(map[string]interface{})
		if transfer["transfer_id"] != testOtherID {
			t.Errorf("expected transfer_id %s, got %v", testOtherID, transfer["transfer_id"])
		}
		from := transfer["from_entry"].(map[string]interface{})
		if from["type"] != "expense" {
			t.Errorf("expected expense leg, got %v", from["type"])
		}
	})

	t.Run("returns 400 on same wallet", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransferFn: func(_ string, _ services.TransferInput) (*services.TransferResult, error) {
				return nil, apperrors.ErrSameWalletTransfer
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions/transfer",
			`{"from_wallet_id":"`+testWalletID+`","to_wallet_id":"`+testWalletID+`","amount":"5"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAME_WALLET_TRANSFER")
	})

	t.Run("returns 400 on missing destination", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions/transfer", `{"from_wallet_id":"`+testWalletID+`","amount":"5"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListFilters(t *testing.T) {
	t.Run("parses wallet transaction filters", func(t *testing.T) {
		var gotWallet string
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getWalletTransactionsFn: func(_, walletID string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotWallet, gotFilter = walletID, filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/wallets/"+testWalletID+"/transactions?type=expense&from_date=2025-01-01&min_amount=10.5&category_id="+testOtherID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotWallet != testWalletID {
			t.Errorf("expected wallet %s, got %s", testWalletID, gotWallet)
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense filter, got %v", gotFilter.Type)
		}
		if gotFilter.FromDate == nil || !gotFilter.FromDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected from_date %v", gotFilter.FromDate)
		}
		if gotFilter.MinAmount == nil || !gotFilter.MinAmount.Equal(decimal.RequireFromString("10.5")) {
			t.Errorf("unexpected min_amount %v", gotFilter.MinAmount)
		}
		if gotFilter.CategoryID == nil || *gotFilter.CategoryID != testOtherID {
			t.Errorf("unexpected category filter %v", gotFilter.CategoryID)
		}
	})

	t.Run("parses wallet_id on user listing", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?wallet_id="+testWalletID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter.WalletID == nil || *gotFilter.WalletID != testWalletID {
			t.Errorf("unexpected wallet filter %v", gotFilter.WalletID)
		}
	})

	t.Run("rejects bad filters", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		for _, q := range []string{"type=transfer", "from_date=soon", "min_amount=lots", "category_id=7", "wallet_id=x"} {
			rec := doRequest(r, "GET", "/transactions?"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", q, rec.Code)
			}
		}
	})
}

func TestTransactionHandler_GetUpdateDelete(t *testing.T) {
	t.Run("get returns 404 when missing", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(_, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions/"+testOtherID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("update replaces every field", func(t *testing.T) {
		var gotID string
		var got services.EntryInput
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_, transactionID string, in services.EntryInput) (*models.Transaction, error) {
				gotID, got = transactionID, in
				return &models.Transaction{Base: models.Base{ID: transactionID}, Amount: in.Amount, Type: in.Type}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/transactions/"+testOtherID,
			`{"wallet_id":"`+testWalletID+`","type":"income","amount":"75.25","note":"fixed"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testOtherID {
			t.Errorf("expected id %s, got %s", testOtherID, gotID)
		}
		if got.Type != models.TransactionTypeIncome || got.Note != "fixed" {
			t.Errorf("unexpected input %+v", got)
		}
	})

	t.Run("update of a transfer leg is rejected", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_, _ string, _ services.EntryInput) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotEditable
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/transactions/"+testOtherID,
			`{"wallet_id":"`+testWalletID+`","type":"income","amount":"1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_EDITABLE")
	})

	t.Run("delete returns 200", func(t *testing.T) {
		var gotID string
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(_, transactionID string) error {
				gotID = transactionID
				return nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/transactions/"+testOtherID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != testOtherID {
			t.Errorf("expected id %s, got %s", testOtherID, gotID)
		}
	})
}
