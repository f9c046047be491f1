package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"printworks/internal/adapter/http/handlers/mocks"
	"printworks/internal/domain/entities"
	"printworks/internal/domain/production"
	"printworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProductionHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/production", withCaller(testOperator), h.Advance)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/production", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("advances one stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/production", withCaller(testOperator), h.Advance)

		uc.EXPECT().
			Advance(gomock.Any(), testOperator, "req-1", entities.ProductionDesignInProgress, false).
			Return(entities.RequestRecord{ID: "req-1", ProductionStatus: entities.ProductionDesignInProgress}, nil)

		body := `{"target":"design_in_progress"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/production", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("skip without override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/production", withCaller(testOperator), h.Advance)

		uc.EXPECT().
			Advance(gomock.Any(), testOperator, "req-1", entities.ProductionPrinting, false).
			Return(entities.RequestRecord{}, production.ErrGuardFailed)

		body := `{"target":"printing"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/production", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/production", withCaller(testOperator), h.Advance)

		uc.EXPECT().
			Advance(gomock.Any(), testOperator, "req-1", entities.ProductionStatus("lamination"), false).
			Return(entities.RequestRecord{}, production.ErrUnknownStage)

		body := `{"target":"lamination"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/production", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:id/production", withCaller(testOperator), h.Advance)

		uc.EXPECT().
			Advance(gomock.Any(), testOperator, "req-1", entities.ProductionDispatched, true).
			Return(entities.RequestRecord{}, usecase.ErrStaleState)

		body := `{"target":"dispatched","override":true}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/production", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
