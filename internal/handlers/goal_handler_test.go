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

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn         func(userID string, in services.GoalInput) (*services.GoalView, error)
	getUserGoalsFn       func(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[services.GoalView], error)
	getGoalByIDFn        func(userID, goalID string) (*services.GoalView, error)
	updateGoalFn         func(userID, goalID string, in services.GoalUpdate) (*services.GoalView, error)
	deleteGoalFn         func(userID, goalID string) error
	addContributionFn    func(userID, goalID string, amount decimal.Decimal, note string, date time.Time) (*services.GoalView, error)
	removeContributionFn func(userID, goalID, contributionID string) (*services.GoalView, error)
}

func (m *mockGoalService) CreateGoal(userID string, in services.GoalInput) (*services.GoalView, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, in)
	}
	return &services.GoalView{}, nil
}

func (m *mockGoalService) GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[services.GoalView], error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID, page, status)
	}
	resp := pagination.NewPageResponse([]services.GoalView{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockGoalService) GetGoalByID(userID, goalID string) (*services.GoalView, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(userID, goalID)
	}
	return &services.GoalView{}, nil
}

func (m *mockGoalService) UpdateGoal(userID, goalID string, in services.GoalUpdate) (*services.GoalView, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, in)
	}
	return &services.GoalView{}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

func (m *mockGoalService) AddContribution(userID, goalID string, amount decimal.Decimal, note string, date time.Time) (*services.GoalView, error) {
	if m.addContributionFn != nil {
		return m.addContributionFn(userID, goalID, amount, note, date)
	}
	return &services.GoalView{}, nil
}

func (m *mockGoalService) RemoveContribution(userID, goalID, contributionID string) (*services.GoalView, error) {
	if m.removeContributionFn != nil {
		return m.removeContributionFn(userID, goalID, contributionID)
	}
	return &services.GoalView{}, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/goals", handler.CreateGoal)
	auth.GET("/goals", handler.GetGoals)
	auth.GET("/goals/:id", handler.GetGoal)
	auth.PUT("/goals/:id", handler.UpdateGoal)
	auth.DELETE("/goals/:id", handler.DeleteGoal)
	auth.POST("/goals/:id/contributions", handler.AddContribution)
	auth.DELETE("/goals/:id/contributions/:contributionId", handler.RemoveContribution)
	return r
}

const testGoalID = "0192a4b0-0000-7000-8000-0000000000c3"

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		var got services.GoalInput
		goalSvc := &mockGoalService{
			createGoalFn: func(userID string, in services.GoalInput) (*services.GoalView, error) {
				got = in
				return &services.GoalView{
					Goal:      models.Goal{Base: models.Base{ID: testGoalID}, UserID: userID, Name: in.Name, TargetAmount: in.TargetAmount, Status: models.GoalStatusActive},
					Remaining: in.TargetAmount,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals", `{"name":"Vacation","target_amount":"3000","wallet_id":"`+testWalletID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.WalletID == nil || *got.WalletID != testWalletID {
			t.Errorf("unexpected wallet link %v", got.WalletID)
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["status"] != "active" {
			t.Errorf("expected active, got %v", goal["status"])
		}
		if goal["remaining"] != "3000" {
			t.Errorf("expected remaining \"3000\", got %v", goal["remaining"])
		}
	})

	t.Run("returns 400 on non-positive target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals", `{"name":"Vacation","target_amount":"0"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		var gotStatus *models.GoalStatus
		goalSvc := &mockGoalService{
			getUserGoalsFn: func(_ string, _ pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[services.GoalView], error) {
				gotStatus = status
				resp := pagination.NewPageResponse([]services.GoalView{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goals?status=completed", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotStatus == nil || *gotStatus != models.GoalStatusCompleted {
			t.Errorf("expected completed filter, got %v", gotStatus)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goals?status=done", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_GetUpdateDelete(t *testing.T) {
	t.Run("get returns 404 when missing", func(t *testing.T) {
		goalSvc := &mockGoalService{
			getGoalByIDFn: func(_, _ string) (*services.GoalView, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goals/"+testGoalID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})

	t.Run("update forwards status", func(t *testing.T) {
		var got services.GoalUpdate
		goalSvc := &mockGoalService{
			updateGoalFn: func(_, _ string, in services.GoalUpdate) (*services.GoalView, error) {
				got = in
				return &services.GoalView{}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/goals/"+testGoalID, `{"status":"paused"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Status == nil || *got.Status != models.GoalStatusPaused {
			t.Errorf("expected paused, got %v", got.Status)
		}
		if got.TargetAmount != nil {
			t.Errorf("expected target untouched, got %v", got.TargetAmount)
		}
	})

	t.Run("update rejects unknown status", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/goals/"+testGoalID, `{"status":"archived"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("delete returns 200", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, audit))

		rec := doRequest(r, "DELETE", "/goals/"+testGoalID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.calls) != 1 || audit.calls[0].resourceID != testGoalID {
			t.Errorf("expected audit entry for the goal, got %v", audit.calls)
		}
	})
}

func TestGoalHandler_Contributions(t *testing.T) {
	t.Run("add returns 201 with updated goal", func(t *testing.T) {
		var gotAmount decimal.Decimal
		var gotDate time.Time
		goalSvc := &mockGoalService{
			addContributionFn: func(_, goalID string, amount decimal.Decimal, _ string, date time.Time) (*services.GoalView, error) {
				gotAmount, gotDate = amount, date
				return &services.GoalView{
					Goal:     models.Goal{Base: models.Base{ID: goalID}, CurrentAmount: amount, TargetAmount: decimal.NewFromInt(3000)},
					Progress: 33,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contributions", `{"amount":"1000","date":"2025-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected 1000, got %s", gotAmount)
		}
		if !gotDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %s", gotDate)
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["progress"] != float64(33) {
			t.Errorf("expected progress 33, got %v", goal["progress"])
		}
	})

	t.Run("add maps insufficient balance", func(t *testing.T) {
		goalSvc := &mockGoalService{
			addContributionFn: func(_, _ string, _ decimal.Decimal, _ string, _ time.Time) (*services.GoalView, error) {
				return nil, apperrors.ErrInsufficientBalance
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contributions", `{"amount":"99999"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_BALANCE")
	})

	t.Run("add maps inactive goal", func(t *testing.T) {
		goalSvc := &mockGoalService{
			addContributionFn: func(_, _ string, _ decimal.Decimal, _ string, _ time.Time) (*services.GoalView, error) {
				return nil, apperrors.ErrGoalNotActive
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contributions", `{"amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_ACTIVE")
	})

	t.Run("add rejects negative amount", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals/"+testGoalID+"/contributions", `{"amount":"-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("remove forwards both IDs", func(t *testing.T) {
		var gotGoal, gotContribution string
		goalSvc := &mockGoalService{
			removeContributionFn: func(_, goalID, contributionID string) (*services.GoalView, error) {
				gotGoal, gotContribution = goalID, contributionID
				return &services.GoalView{}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/goals/"+testGoalID+"/contributions/"+testOtherID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotGoal != testGoalID || gotContribution != testOtherID {
			t.Errorf("unexpected IDs %s %s", gotGoal, gotContribution)
		}
	})

	t.Run("remove returns 404 for unknown contribution", func(t *testing.T) {
		goalSvc := &mockGoalService{
			removeContributionFn: func(_, _, _ string) (*services.GoalView, error) {
				return nil, apperrors.ErrContributionNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/goals/"+testGoalID+"/contributions/"+testOtherID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CONTRIBUTION_NOT_FOUND")
	})
}
