package services

import (
	"encoding/json"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	lastChanges := func(t *testing.T, h *harness, userID string) map[string]interface{} {
		t.Helper()
		var record models.AuditLog
		if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").First(&record).Error; err != nil {
			t.Fatalf("expected an audit record: %v", err)
		}
		var changes map[string]interface{}
		if err := json.Unmarshal([]byte(record.Changes), &changes); err != nil {
			t.Fatalf("changes not JSON: %v (%q)", err, record.Changes)
		}
		return changes
	}

	t.Run("records_atomic_units", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)

		NewAuditService(h.db, h.unit).Log(user.ID, "CREATE_TRANSACTION", "transaction", "", "127.0.0.1",
			map[string]interface{}{"amount": "400"})

		changes := lastChanges(t, h, user.ID)
		if changes["atomic"] != true {
			t.Errorf("expected atomic=true, got %v", changes["atomic"])
		}
		if changes["amount"] != "400" {
			t.Errorf("expected caller changes kept, got %v", changes)
		}
	})

	t.Run("flags_degraded_units", func(t *testing.T) {
		h := newHarness(t, database.WithForceNonAtomic(true))
		user := testutil.CreateTestUser(t, h.db)

		NewAuditService(h.db, h.unit).Log(user.ID, "DELETE_GOAL", "goal", "", "127.0.0.1", nil)

		if changes := lastChanges(t, h, user.ID); changes["atomic"] != false {
			t.Errorf("expected atomic=false, got %v", changes["atomic"])
		}
	})

	t.Run("does_not_mutate_caller_map", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)
		changes := map[string]interface{}{"name": "Rent"}

		NewAuditService(h.db, h.unit).Log(user.ID, "UPDATE_BUDGET", "budget", "", "", changes)

		if _, ok := changes["atomic"]; ok {
			t.Error("caller map was modified")
		}
	})

	t.Run("without_unit_keeps_changes_as_given", func(t *testing.T) {
		h := newHarness(t)
		user := testutil.CreateTestUser(t, h.db)

		NewAuditService(h.db, nil).Log(user.ID, "LOGIN", "user", user.ID, "", nil)

		var record models.AuditLog
		if err := h.db.Where("user_id = ?", user.ID).First(&record).Error; err != nil {
			t.Fatalf("expected an audit record: %v", err)
		}
		if record.Changes != "" {
			t.Errorf("expected no changes, got %q", record.Changes)
		}
	})
}
