package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// --- mock savings goal service ---

type mockGoalService struct {
	createGoalFn     func(in services.SavingsGoalInput) (*models.SavingsGoal, error)
	getActiveGoalsFn func() ([]models.SavingsGoal, error)
	contributeFn     func(goalID string, amount int64) (*models.SavingsGoal, error)
	deactivateGoalFn func(goalID string) error
}

func (m *mockGoalService) CreateGoal(in services.SavingsGoalInput) (*models.SavingsGoal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(in)
	}
	return &models.SavingsGoal{Name: in.Name}, nil
}

func (m *mockGoalService) GetActiveGoals() ([]models.SavingsGoal, error) {
	if m.getActiveGoalsFn != nil {
		return m.getActiveGoalsFn()
	}
	return []models.SavingsGoal{}, nil
}

func (m *mockGoalService) GetGoalByID(goalID string) (*models.SavingsGoal, error) {
	return &models.SavingsGoal{Base: models.Base{ID: goalID}}, nil
}

func (m *mockGoalService) Contribute(goalID string, amount int64) (*models.SavingsGoal, error) {
	if m.contributeFn != nil {
		return m.contributeFn(goalID, amount)
	}
	return &models.SavingsGoal{Base: models.Base{ID: goalID}, CurrentAmount: amount}, nil
}

func (m *mockGoalService) DeactivateGoal(goalID string) error {
	if m.deactivateGoalFn != nil {
		return m.deactivateGoalFn(goalID)
	}
	return nil
}

var _ services.SavingsGoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := newRouter()
	r.POST("/goals", handler.CreateGoal)
	r.GET("/goals", handler.GetGoals)
	r.POST("/goals/:id/contribute", handler.Contribute)
	r.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.SavingsGoalInput
		svc := &mockGoalService{
			createGoalFn: func(in services.SavingsGoalInput) (*models.SavingsGoal, error) {
				got = in
				return &models.SavingsGoal{Base: models.Base{ID: testID}, Name: in.Name, TargetAmount: in.TargetAmount}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals",
			`{"name":"Emergency fund","target_amount":3000000,"monthly_contribution":50000,"target_date":"2026-06-01","priority":1}`)

		assertStatus(t, rec, http.StatusCreated)
		if got.TargetDate == nil || !got.TargetDate.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected target date %v", got.TargetDate)
		}
		if got.MonthlyContribution != 50000 {
			t.Errorf("expected 50000, got %d", got.MonthlyContribution)
		}
	})

	t.Run("returns 400 on zero target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals", `{"name":"Trip","target_amount":0}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on bad target date", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals", `{"name":"Trip","target_amount":100,"target_date":"June"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	svc := &mockGoalService{
		getActiveGoalsFn: func() ([]models.SavingsGoal, error) {
			return []models.SavingsGoal{{Name: "House", TargetAmount: 1000, CurrentAmount: 250}}, nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/goals", "")

	assertStatus(t, rec, http.StatusOK)
	goals := parseJSON(t, rec)["goals"].([]interface{})
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	goal := goals[0].(map[string]interface{})
	if goal["name"] != "House" {
		t.Errorf("expected House, got %v", goal["name"])
	}
	if goal["progress_percent"].(float64) != 25 {
		t.Errorf("expected 25%%, got %v", goal["progress_percent"])
	}
}

func TestGoalHandler_Contribute(t *testing.T) {
	t.Run("returns 200 with progress", func(t *testing.T) {
		svc := &mockGoalService{
			contributeFn: func(id string, amount int64) (*models.SavingsGoal, error) {
				return &models.SavingsGoal{Base: models.Base{ID: id}, TargetAmount: 1000, CurrentAmount: 500 + amount}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(svc, audit))

		rec := doRequest(r, "POST", "/goals/"+testID+"/contribute", `{"amount":250}`)

		assertStatus(t, rec, http.StatusOK)
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["progress_percent"].(float64) != 75 {
			t.Errorf("expected 75%%, got %v", goal["progress_percent"])
		}
		if entry := audit.last(t); entry.action != "CONTRIBUTE_GOAL" {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	t.Run("returns 404 when goal is inactive", func(t *testing.T) {
		svc := &mockGoalService{
			contributeFn: func(string, int64) (*models.SavingsGoal, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals/"+testID+"/contribute", `{"amount":250}`)

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	var got string
	svc := &mockGoalService{
		deactivateGoalFn: func(id string) error {
			got = id
			return nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "DELETE", "/goals/"+testID, "")

	assertStatus(t, rec, http.StatusOK)
	if got != testID {
		t.Errorf("expected %s, got %s", testID, got)
	}
}
