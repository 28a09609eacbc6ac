package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"plumbing_estimator/internal/adapter/http/handlers/mocks"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{
			{ID: "drain", Name: "Drain Cleaning", Unit: "fixture", Rate: decimal.NewFromInt(65), QuantityBasis: entities.QuantityBasisFixtures},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "drain" || body[0]["rate"] != 65.0 || body[0]["quantity_basis"] != "FIXTURES" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().ListServices(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", usecase.ErrCatalogUnavailable, errors.New("db")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)

		uc.EXPECT().GetService(gomock.Any(), "ghost").Return(entities.Service{}, usecase.ErrServiceNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services/ghost", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)

		uc.EXPECT().GetService(gomock.Any(), "drain").Return(entities.Service{ID: "drain", Name: "Drain Cleaning", Rate: decimal.NewFromInt(65)}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services/drain", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidServiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrCatalogUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
