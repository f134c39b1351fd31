package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestCreateWallet(t *testing.T) {
	t.Run("balance_starts_at_initial", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)

		wallet, err := h.wallets.CreateWallet(user.ID, WalletInput{
			Name:           "Everyday",
			Currency:       "eur",
			InitialBalance: decimal.RequireFromString("1000.50"),
		})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, wallet.Balance, "1000.50", "balance")
		testutil.AssertDecimal(t, wallet.InitialBalance, "1000.50", "initial balance")
		if wallet.Currency != "EUR" {
			t.Errorf("expected EUR, got %s", wallet.Currency)
		}
		if wallet.Status != models.WalletStatusActive {
			t.Errorf("expected active wallet, got %s", wallet.Status)
		}

		var entries int64
		h.db.Model(&models.Transaction{}).Where("wallet_id = ?", wallet.ID).Count(&entries)
		if entries != 0 {
			t.Errorf("expected no ledger entries for the initial balance, got %d", entries)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)

		_, err := h.wallets.CreateWallet(user.ID, WalletInput{Name: "  "})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)

		_, err := h.wallets.CreateWallet(user.ID, WalletInput{Name: "Cash"})
		testutil.AssertNoError(t, err)
		_, err = h.wallets.CreateWallet(user.ID, WalletInput{Name: "Cash"})
		testutil.AssertAppError(t, err, "DUPLICATE_WALLET_NAME")
	})

	t.Run("same_name_other_user", func(t *testing.T) {
		h := newHarness(t)
		alice := testutil.CreateTestUser(t, h.db)
		bob := testutil.CreateTestUser(t, h.db)

		_, err := h.wallets.CreateWallet(alice.ID, WalletInput{Name: "Cash"})
		testutil.AssertNoError(t, err)
		_, err = h.wallets.CreateWallet(bob.ID, WalletInput{Name: "Cash"})
		testutil.AssertNoError(t, err)
	})
}

func TestWalletAccess(t *testing.T) {
	h := newHarness(t)
	owner := testutil.CreateTestUser(t, h.db)
	editor := testutil.CreateTestUser(t, h.db)
	viewer := testutil.CreateTestUser(t, h.db)
	stranger := testutil.CreateTestUser(t, h.db)
	wallet := testutil.CreateTestWallet(t, h.db, owner.ID, 1000)
	testutil.AddTestMember(t, h.db, wallet.ID, editor.ID, models.WalletPermissionEdit)
	testutil.AddTestMember(t, h.db, wallet.ID, viewer.ID, models.WalletPermissionView)

	t.Run("levels", func(t *testing.T) {
		loaded, err := h.wallets.GetWalletByID(owner.ID, wallet.ID)
		testutil.AssertNoError(t, err)

		checker := NewAccessChecker()
		cases := map[string]AccessLevel{
			owner.ID:    AccessOwner,
			editor.ID:   AccessEdit,
			viewer.ID:   AccessView,
			stranger.ID: AccessNone,
		}
		for userID, want := range cases {
			if got := checker.WalletAccess(loaded, userID); got != want {
				t.Errorf("user %s: expected %s, got %s", userID, want, got)
			}
		}
	})

	t.Run("viewer_can_read", func(t *testing.T) {
		_, err := h.wallets.GetWalletByID(viewer.ID, wallet.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("stranger_cannot_see", func(t *testing.T) {
		_, err := h.wallets.GetWalletByID(stranger.ID, wallet.ID)
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})

	t.Run("viewer_cannot_move_money", func(t *testing.T) {
		_, err := h.transactions.CreateTransaction(viewer.ID, EntryInput{
			WalletID: wallet.ID, Type: models.TransactionTypeExpense, Amount: dec(10),
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("editor_can_move_money", func(t *testing.T) {
		_, err := h.transactions.CreateTransaction(editor.ID, EntryInput{
			WalletID: wallet.ID, Type: models.TransactionTypeExpense, Amount: dec(10),
		})
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, testutil.ReloadWallet(t, h.db, wallet.ID).Balance, "990", "balance")
	})

	t.Run("editor_cannot_rename", func(t *testing.T) {
		_, err := h.wallets.UpdateWallet(editor.ID, wallet.ID, strPtr("Mine now"), nil)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("shared_wallets_listed", func(t *testing.T) {
		page, err := h.wallets.GetUserWallets(viewer.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 shared wallet, got %d", page.TotalItems)
		}
	})
}

func TestUpdateAndDeactivateWallet(t *testing.T) {
	h := newHarness(t)
	user := testutil.CreateTestUser(t, h.db)
	wallet := testutil.CreateTestWallet(t, h.db, user.ID, 100)

	updated, err := h.wallets.UpdateWallet(user.ID, wallet.ID, strPtr("Renamed"), strPtr("notes"))
	testutil.AssertNoError(t, err)
	if updated.Name != "Renamed" || updated.Description != "notes" {
		t.Errorf("unexpected wallet after update: %+v", updated)
	}

	testutil.AssertNoError(t, h.wallets.DeactivateWallet(user.ID, wallet.ID))

	page, err := h.wallets.GetUserWallets(user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 0 {
		t.Errorf("expected inactive wallet to be hidden, got %d", page.TotalItems)
	}

	_, err = h.transactions.CreateTransaction(user.ID, EntryInput{
		WalletID: wallet.ID, Type: models.TransactionTypeIncome, Amount: dec(5),
	})
	testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")

	_, err = h.wallets.GetWalletByID(user.ID, wallet.ID)
	testutil.AssertNoError(t, err)
}

func TestWalletMembers(t *testing.T) {
	h := newHarness(t)
	owner := testutil.CreateTestUser(t, h.db)
	friend := testutil.CreateTestUser(t, h.db)
	wallet := testutil.CreateTestWallet(t, h.db, owner.ID, 0)

	member, err := h.wallets.AddMember(owner.ID, wallet.ID, friend.Email, models.WalletPermissionView)
	testutil.AssertNoError(t, err)

	member, err = h.wallets.AddMember(owner.ID, wallet.ID, friend.Email, models.WalletPermissionEdit)
	testutil.AssertNoError(t, err)
	if member.Permission != models.WalletPermissionEdit {
		t.Errorf("expected permission upgrade, got %s", member.Permission)
	}

	_, err = h.wallets.AddMember(owner.ID, wallet.ID, owner.Email, models.WalletPermissionEdit)
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = h.wallets.AddMember(owner.ID, wallet.ID, "nobody@test.com", models.WalletPermissionEdit)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")

	testutil.AssertNoError(t, h.wallets.RemoveMember(owner.ID, wallet.ID, member.ID))
	testutil.AssertAppError(t, h.wallets.RemoveMember(owner.ID, wallet.ID, member.ID), "MEMBER_NOT_FOUND")

	_, err = h.wallets.GetWalletByID(friend.ID, wallet.ID)
	testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
}

func TestSetBalanceVersionConflict(t *testing.T) {
	h := newHarness(t)
	user := testutil.CreateTestUser(t, h.db)
	wallet := testutil.CreateTestWallet(t, h.db, user.ID, 1000)

	stale, err := h.wallets.LoadWalletForUpdate(h.db, user.ID, wallet.ID)
	testutil.AssertNoError(t, err)
	fresh, err := h.wallets.LoadWalletForUpdate(h.db, user.ID, wallet.ID)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, h.wallets.ApplyBalanceDelta(h.db, fresh, dec(-100)))
	if fresh.Version != wallet.Version+1 {
		t.Errorf("expected version %d, got %d", wallet.Version+1, fresh.Version)
	}

	err = h.wallets.ApplyBalanceDelta(h.db, stale, dec(-50))
	testutil.AssertAppError(t, err, "CONCURRENT_MODIFICATION")
	testutil.AssertDecimal(t, stale.Balance, "1000", "stale in-memory balance")
	testutil.AssertDecimal(t, testutil.ReloadWallet(t, h.db, wallet.ID).Balance, "900", "stored balance")
}
