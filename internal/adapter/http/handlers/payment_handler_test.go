package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/adapter/http/handlers/mocks"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"propertyhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("missing due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"amount":100}`))
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
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		due := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.PaymentInput) (entities.Payment, error) {
			if !in.DueDate.Equal(due) || !in.Amount.Equal(decimal.RequireFromString("250.50")) {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Payment{ID: "pay-1", Amount: in.Amount, DueDate: in.DueDate, Status: entities.PaymentStatusPending}, nil
		})

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		body := `{"tenant_id":"t-1","amount":"250.50","due_date":"2026-03-31","payment_method":"mtn_momo"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp response.PaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.DueDate != "2026-03-31" || resp.DisplayStatus != "Pending" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	want := interfaces.PaymentFilter{Status: entities.PaymentStatusPending, TenantID: "t-1"}
	uc.EXPECT().List(gomock.Any(), want).Return([]entities.Payment{{ID: "pay-1"}}, nil)

	r := gin.New()
	r.GET("/v1/payments", h.ListPayments)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments?status=pending&tenant_id=t-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().Update(gomock.Any(), "pay-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrInvalidPayment)

	r := gin.New()
	r.PATCH("/v1/payments/:id", h.UpdatePayment)

	req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1", bytes.NewBufferString(`{"amount":-5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidPayment); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(fmt.Errorf("%w: expected pending", usecase.ErrPaymentStatusConflict)); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
