package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// --- mock budget plan service ---

type mockPlanService struct {
	getPlanFn       func(month string) ([]models.BudgetPlan, error)
	setPlanRowsFn   func(month string, rows []services.PlanRowInput) ([]models.BudgetPlan, error)
	deletePlanRowFn func(month, rowID string) error
	copyPlanFn      func(sourceMonth, targetMonth string, overwrite bool) (*services.CopyResult, error)
}

func (m *mockPlanService) GetPlan(month string) ([]models.BudgetPlan, error) {
	if m.getPlanFn != nil {
		return m.getPlanFn(month)
	}
	return []models.BudgetPlan{}, nil
}

func (m *mockPlanService) SetPlanRows(month string, rows []services.PlanRowInput) ([]models.BudgetPlan, error) {
	if m.setPlanRowsFn != nil {
		return m.setPlanRowsFn(month, rows)
	}
	return []models.BudgetPlan{}, nil
}

func (m *mockPlanService) DeletePlanRow(month, rowID string) error {
	if m.deletePlanRowFn != nil {
		return m.deletePlanRowFn(month, rowID)
	}
	return nil
}

func (m *mockPlanService) CopyPlan(sourceMonth, targetMonth string, overwrite bool) (*services.CopyResult, error) {
	if m.copyPlanFn != nil {
		return m.copyPlanFn(sourceMonth, targetMonth, overwrite)
	}
	return &services.CopyResult{SourceMonth: sourceMonth, TargetMonth: targetMonth, Overwrite: overwrite}, nil
}

var _ services.BudgetPlanServicer = (*mockPlanService)(nil)

func setupPlanRouter(handler *PlanHandler) *gin.Engine {
	r := newRouter()
	r.GET("/plans/:month", handler.GetPlan)
	r.PUT("/plans/:month", handler.SetPlan)
	r.DELETE("/plans/:month/rows/:id", handler.DeletePlanRow)
	r.POST("/plans/:month/copy", handler.CopyPlan)
	return r
}

func TestPlanHandler_GetPlan(t *testing.T) {
	t.Run("returns 200 with rows", func(t *testing.T) {
		svc := &mockPlanService{
			getPlanFn: func(month string) ([]models.BudgetPlan, error) {
				return []models.BudgetPlan{{Month: month, Category: "Food", Subcategory: "Groceries", PlannedAmount: 45000}}, nil
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/plans/2025-03", "")

		assertStatus(t, rec, http.StatusOK)
		rows := parseJSON(t, rec)["rows"].([]interface{})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].(map[string]interface{})["planned_amount"].(float64) != 45000 {
			t.Errorf("unexpected row %v", rows[0])
		}
	})

	t.Run("returns 400 on malformed month", func(t *testing.T) {
		svc := &mockPlanService{
			getPlanFn: func(string) ([]models.BudgetPlan, error) {
				return nil, apperrors.ErrInvalidMonth
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/plans/2025-3", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_MONTH")
	})
}

func TestPlanHandler_SetPlan(t *testing.T) {
	t.Run("passes every row to the service", func(t *testing.T) {
		var gotMonth string
		var gotRows []services.PlanRowInput
		svc := &mockPlanService{
			setPlanRowsFn: func(month string, rows []services.PlanRowInput) ([]models.BudgetPlan, error) {
				gotMonth, gotRows = month, rows
				return []models.BudgetPlan{}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPlanRouter(NewPlanHandler(svc, audit))

		rec := doRequest(r, "PUT", "/plans/2025-03",
			`{"rows":[{"category":"Food","subcategory":"Groceries","planned_amount":45000},{"category":"Housing","subcategory":"Rent","planned_amount":150000}]}`)

		assertStatus(t, rec, http.StatusOK)
		if gotMonth != "2025-03" || len(gotRows) != 2 {
			t.Fatalf("unexpected arguments %q %v", gotMonth, gotRows)
		}
		if gotRows[1].PlannedAmount != 150000 {
			t.Errorf("expected 150000, got %d", gotRows[1].PlannedAmount)
		}
		if entry := audit.last(t); entry.action != "SET_PLAN" || entry.resourceID != "2025-03" {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	t.Run("returns 400 on empty rows", func(t *testing.T) {
		r := setupPlanRouter(NewPlanHandler(&mockPlanService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/plans/2025-03", `{"rows":[]}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		r := setupPlanRouter(NewPlanHandler(&mockPlanService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/plans/2025-03", `{"rows":[{"category":"Food","subcategory":"Groceries","planned_amount":-1}]}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 422 on unknown pair", func(t *testing.T) {
		svc := &mockPlanService{
			setPlanRowsFn: func(string, []services.PlanRowInput) ([]models.BudgetPlan, error) {
				return nil, apperrors.ErrUnknownCategoryPair
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/plans/2025-03", `{"rows":[{"category":"Food","subcategory":"Caviar","planned_amount":100}]}`)

		assertStatus(t, rec, http.StatusUnprocessableEntity)
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_CATEGORY_PAIR")
	})
}

func TestPlanHandler_DeletePlanRow(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotMonth, gotID string
		svc := &mockPlanService{
			deletePlanRowFn: func(month, rowID string) error {
				gotMonth, gotID = month, rowID
				return nil
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/plans/2025-03/rows/"+testID, "")

		assertStatus(t, rec, http.StatusOK)
		if gotMonth != "2025-03" || gotID != testID {
			t.Errorf("unexpected arguments %q %q", gotMonth, gotID)
		}
	})

	t.Run("returns 404 when row is missing", func(t *testing.T) {
		svc := &mockPlanService{
			deletePlanRowFn: func(string, string) error { return apperrors.ErrPlanRowNotFound },
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/plans/2025-03/rows/"+testID, "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "PLAN_ROW_NOT_FOUND")
	})
}

func TestPlanHandler_CopyPlan(t *testing.T) {
	t.Run("returns 201 with the copy result", func(t *testing.T) {
		var gotSource, gotTarget string
		var gotOverwrite bool
		svc := &mockPlanService{
			copyPlanFn: func(source, target string, overwrite bool) (*services.CopyResult, error) {
				gotSource, gotTarget, gotOverwrite = source, target, overwrite
				return &services.CopyResult{SourceMonth: source, TargetMonth: target, RowsCopied: 12, Overwrite: overwrite}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPlanRouter(NewPlanHandler(svc, audit))

		rec := doRequestAs(r, "Joint", "POST", "/plans/2025-04/copy", `{"source_month":"2025-03","overwrite":true}`)

		assertStatus(t, rec, http.StatusCreated)
		if gotSource != "2025-03" || gotTarget != "2025-04" || !gotOverwrite {
			t.Errorf("unexpected arguments %q %q %v", gotSource, gotTarget, gotOverwrite)
		}
		result := parseJSON(t, rec)["copy"].(map[string]interface{})
		if result["rows_copied"].(float64) != 12 {
			t.Errorf("expected 12 rows copied, got %v", result["rows_copied"])
		}
		if entry := audit.last(t); entry.action != "COPY_PLAN" || entry.resourceID != "2025-04" || entry.actor != "Joint" {
			t.Errorf("unexpected audit entry %+v", entry)
		}
	})

	t.Run("returns 409 when target is not empty", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockPlanService{
			copyPlanFn: func(string, string, bool) (*services.CopyResult, error) {
				return nil, apperrors.ErrTargetNotEmpty
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, audit))

		rec := doRequest(r, "POST", "/plans/2025-04/copy", `{"source_month":"2025-03"}`)

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "TARGET_NOT_EMPTY")
		if audit.count() != 0 {
			t.Error("failed copies must not be audited")
		}
	})

	t.Run("returns 409 when source is empty", func(t *testing.T) {
		svc := &mockPlanService{
			copyPlanFn: func(string, string, bool) (*services.CopyResult, error) {
				return nil, apperrors.ErrSourceEmpty
			},
		}
		r := setupPlanRouter(NewPlanHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/plans/2025-04/copy", `{"source_month":"2025-03"}`)

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "SOURCE_EMPTY")
	})

	t.Run("returns 400 without source month", func(t *testing.T) {
		r := setupPlanRouter(NewPlanHandler(&mockPlanService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/plans/2025-04/copy", `{}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
