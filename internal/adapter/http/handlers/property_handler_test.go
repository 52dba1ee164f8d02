package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/adapter/http/handlers/mocks"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPropertyHandler_CreateProperty(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown type rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		body := `{"name":"Flat","address":"Main St","type":"castle","size":50}`
		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.PropertyInput) (entities.Property, error) {
			if in.Type != entities.PropertyType("apartment") || !in.Rent.Equal(decimal.NewFromInt(1200)) {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Property{ID: "p-1", Name: in.Name, Type: in.Type, Rent: in.Rent}, nil
		})

		r := gin.New()
		r.POST("/v1/properties", h.CreateProperty)

		body := `{"name":"Flat","address":"Main St","type":"apartment","size":50,"rent":1200}`
		req := httptest.NewRequest(http.MethodPost, "/v1/properties", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp response.PropertyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.ID != "p-1" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestPropertyHandler_GetProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPropertyUseCase(ctrl)
	h := NewPropertyHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Property{}, usecase.ErrPropertyNotFound)

	r := gin.New()
	r.GET("/v1/properties/:id", h.GetProperty)

	req := httptest.NewRequest(http.MethodGet, "/v1/properties/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "PROPERTY_NOT_FOUND" {
		t.Fatalf("unexpected code %q", body.Error.Code)
	}
}

func TestPropertyHandler_DeleteProperty(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(usecase.ErrPropertyOccupied)

		r := gin.New()
		r.DELETE("/v1/properties/:id", h.DeleteProperty)

		req := httptest.NewRequest(http.MethodDelete, "/v1/properties/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/properties/:id", h.DeleteProperty)

		req := httptest.NewRequest(http.MethodDelete, "/v1/properties/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPropertyHandler_AssignTenant(t *testing.T) {
	t.Run("missing tenant id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		r := gin.New()
		r.POST("/v1/properties/:id/tenant", h.AssignTenant)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties/p-1/tenant", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("tenant taken elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewPropertyHandler(uc)

		uc.EXPECT().AssignTenant(gomock.Any(), "p-1", "t-1").Return(entities.Property{}, usecase.ErrTenantAlreadyAssigned)

		r := gin.New()
		r.POST("/v1/properties/:id/tenant", h.AssignTenant)

		req := httptest.NewRequest(http.MethodPost, "/v1/properties/p-1/tenant", bytes.NewBufferString(`{"tenant_id":"t-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPropertyError(t *testing.T) {
	if got := mapPropertyError(usecase.ErrInvalidProperty); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPropertyError(usecase.ErrInvalidID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPropertyError(usecase.ErrPropertyNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPropertyError(usecase.ErrTenantNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPropertyError(usecase.ErrPropertyOccupied); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPropertyError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
