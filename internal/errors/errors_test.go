package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHasCode(t *testing.T) {
	t.Run("matches_wrapped_copy", func(t *testing.T) {
		err := Wrap(ErrInternalServer, fmt.Errorf("boom"))
		if !HasCode(err, ErrInternalServer) {
			t.Error("expected wrapped copy to match sentinel code")
		}
	})

	t.Run("matches_through_fmt_wrap", func(t *testing.T) {
		err := fmt.Errorf("unit failed: %w", WithMessage(ErrConcurrentModification, "wallet changed"))
		if !HasCode(err, ErrConcurrentModification) {
			t.Error("expected code match through fmt.Errorf wrapping")
		}
	})

	t.Run("different_code", func(t *testing.T) {
		if HasCode(ErrWalletNotFound, ErrGoalNotFound) {
			t.Error("expected codes to differ")
		}
	})

	t.Run("plain_error", func(t *testing.T) {
		if HasCode(fmt.Errorf("plain"), ErrInternalServer) {
			t.Error("plain errors carry no code")
		}
	})
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "amount must be greater than zero")
	if err.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if err.Error() != "amount must be greater than zero" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
