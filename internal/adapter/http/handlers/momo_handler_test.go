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

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testPaymentID = "4b6f0a2e-9c1d-4f7e-8a3b-2d5c6e7f8a9b"

func TestMoMoHandler_RequestPaymentInvoice(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id/momo/invoice", h.RequestPaymentInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/invoice", bytes.NewBufferString(`{"amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("path id wins over body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		uc.EXPECT().RequestInvoice(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.InvoiceCommand) (usecase.InvoiceResult, error) {
			if cmd.PaymentID != testPaymentID {
				t.Fatalf("expected path payment id, got %q", cmd.PaymentID)
			}
			if !cmd.Amount.Equal(decimal.NewFromInt(5000)) || cmd.Phone != "+256772123456" {
				t.Fatalf("unexpected command %+v", cmd)
			}
			p := entities.Payment{ID: testPaymentID, Status: entities.PaymentStatusPending, MoMoReferenceID: "ref-1", MoMoInvoiceStatus: "PENDING"}
			return usecase.InvoiceResult{ReferenceID: "ref-1", ExternalID: testPaymentID, Flow: entities.MoMoFlowInvoice, Payment: &p}, nil
		})

		r := gin.New()
		r.POST("/v1/payments/:id/momo/invoice", h.RequestPaymentInvoice)

		body := `{"phone":"+256772123456","amount":5000,"payment_id":"other"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/invoice", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp response.InvoiceResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.ReferenceID != "ref-1" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("already linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		uc.EXPECT().RequestInvoice(gomock.Any(), gomock.Any()).Return(usecase.InvoiceResult{}, usecase.ErrPaymentAlreadyLinked)

		r := gin.New()
		r.POST("/v1/payments/:id/momo/invoice", h.RequestPaymentInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/invoice", bytes.NewBufferString(`{"phone":"+256772123456","amount":5000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMoMoHandler_RequestInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	uc.EXPECT().RequestInvoice(gomock.Any(), gomock.Any()).Return(usecase.InvoiceResult{}, fmt.Errorf("%w: status 500", usecase.ErrProviderRequest))

	r := gin.New()
	r.POST("/v1/momo/invoices", h.RequestInvoice)

	req := httptest.NewRequest(http.MethodPost, "/v1/momo/invoices", bytes.NewBufferString(`{"phone":"+256772123456","amount":5000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestMoMoHandler_CheckPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	paid := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().CheckStatus(gomock.Any(), testPaymentID).Return(usecase.ReconcileResult{
		Payment:     entities.Payment{ID: testPaymentID, Status: entities.PaymentStatusPaid, PaidDate: &paid},
		Transaction: entities.ProviderTransaction{Status: entities.ProviderStatusSuccessful, RawStatus: "SUCCESSFUL"},
		Updated:     true,
	}, nil)

	r := gin.New()
	r.POST("/v1/payments/:id/momo/status", h.CheckPaymentStatus)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.ReconcileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Updated || resp.Payment.Status != "paid" || resp.Payment.PaidDate == nil || *resp.Payment.PaidDate != "2026-03-15" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestMoMoHandler_WaitForPayment(t *testing.T) {
	t.Run("passes bounds in seconds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		uc.EXPECT().WaitForCompletion(gomock.Any(), testPaymentID, 30*time.Second, 2*time.Second).Return(usecase.ReconcileResult{}, usecase.ErrWaitTimeout)

		r := gin.New()
		r.POST("/v1/payments/:id/momo/wait", h.WaitForPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/wait?timeout=30&interval=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("timeout above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:id/momo/wait", h.WaitForPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/wait?timeout=900", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMoMoHandler_CancelPaymentInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	uc.EXPECT().CancelInvoice(gomock.Any(), testPaymentID).Return(entities.Payment{}, usecase.ErrCancelNotSupported)

	r := gin.New()
	r.POST("/v1/payments/:id/momo/cancel", h.CancelPaymentInvoice)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestMoMoHandler_CheckAllPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	uc.EXPECT().CheckAll(gomock.Any()).Return(usecase.CheckAllSummary{
		Checked:  2,
		Updated:  1,
		Failed:   1,
		Results:  []usecase.ReconcileResult{{Payment: entities.Payment{ID: "a"}, Updated: true}},
		Failures: []usecase.CheckFailure{{PaymentID: "b", Err: usecase.ErrTransactionNotFound}},
	}, nil)

	r := gin.New()
	r.POST("/v1/momo/check-all", h.CheckAllPayments)

	req := httptest.NewRequest(http.MethodPost, "/v1/momo/check-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.CheckAllResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Checked != 2 || len(resp.Failures) != 1 || resp.Failures[0].PaymentID != "b" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestMoMoHandler_GetProviderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	uc.EXPECT().FetchStatus(gomock.Any(), "ref-1", entities.MoMoFlowRequestToPay).Return(entities.ProviderTransaction{}, usecase.ErrTransactionNotFound)

	r := gin.New()
	r.GET("/v1/momo/transactions/:reference_id", h.GetProviderStatus)

	req := httptest.NewRequest(http.MethodGet, "/v1/momo/transactions/ref-1?flow=request_to_pay", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMoMoHandler_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	uc.EXPECT().GetBalance(gomock.Any()).Return(entities.AccountBalance{AvailableBalance: decimal.NewFromInt(1000), Currency: "EUR"}, nil)

	r := gin.New()
	r.GET("/v1/momo/balance", h.GetBalance)

	req := httptest.NewRequest(http.MethodGet, "/v1/momo/balance", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMoMoHandler_HandleCallback(t *testing.T) {
	t.Run("missing external id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		r := gin.New()
		r.POST("/v1/momo/callback", h.HandleCallback)

		req := httptest.NewRequest(http.MethodPost, "/v1/momo/callback", bytes.NewBufferString(`{"status":"SUCCESSFUL"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("string reason is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMoMoUseCase(ctrl)
		h := NewMoMoHandler(uc)

		uc.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.CallbackCommand) (usecase.ReconcileResult, error) {
			if cmd.ExternalID != testPaymentID || cmd.Reason.Code != "PAYER_NOT_FOUND" {
				t.Fatalf("unexpected command %+v", cmd)
			}
			return usecase.ReconcileResult{Payment: entities.Payment{ID: testPaymentID, Status: entities.PaymentStatusFailed}, Updated: true}, nil
		})

		r := gin.New()
		r.POST("/v1/momo/callback", h.HandleCallback)

		body := `{"externalId":"` + testPaymentID + `","referenceId":"ref-1","status":"FAILED","reason":"PAYER_NOT_FOUND"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/momo/callback", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

// rejectedCall mimics a gateway error that carries the provider's reply.
type rejectedCall struct {
	status int
	body   string
}

func (e rejectedCall) Error() string { return fmt.Sprintf("momo status failed: %d", e.status) }
func (e rejectedCall) Unwrap() error { return usecase.ErrProviderRequest }
func (e rejectedCall) ProviderResponse() (int, string) { return e.status, e.body }

func TestMoMoHandler_CheckPaymentStatusProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMoMoUseCase(ctrl)
	h := NewMoMoHandler(uc)

	providerBody := `{"code":"PAYER_NOT_FOUND","message":"Payee does not exist"}`
	uc.EXPECT().CheckStatus(gomock.Any(), testPaymentID).
		Return(usecase.ReconcileResult{}, fmt.Errorf("check status: %w", rejectedCall{status: 400, body: providerBody}))

	r := gin.New()
	r.POST("/v1/payments/:id/momo/status", h.CheckPaymentStatus)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/"+testPaymentID+"/momo/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "PROVIDER_ERROR" || resp.Error.Message != "Payment provider error 400: "+providerBody {
		t.Fatalf("unexpected error %+v", resp.Error)
	}
	if resp.Error.Details["provider_status"] != float64(400) || resp.Error.Details["provider_body"] != providerBody {
		t.Fatalf("unexpected details %+v", resp.Error.Details)
	}
}

func TestMapMoMoError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrInvalidPhone, http.StatusBadRequest},
		{usecase.ErrInvalidFlow, http.StatusBadRequest},
		{usecase.ErrInvalidValidity, http.StatusBadRequest},
		{usecase.ErrInvalidCallback, http.StatusBadRequest},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrTransactionNotFound, http.StatusNotFound},
		{usecase.ErrPaymentAlreadyLinked, http.StatusConflict},
		{usecase.ErrPaymentNotLinked, http.StatusConflict},
		{usecase.ErrPaymentFinalized, http.StatusConflict},
		{usecase.ErrCallbackMismatch, http.StatusConflict},
		{usecase.ErrProviderUnauthorized, http.StatusBadGateway},
		{usecase.ErrProviderForbidden, http.StatusBadGateway},
		{usecase.ErrWaitTimeout, http.StatusGatewayTimeout},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapMoMoError(tc.err); got.HTTPStatus != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got.HTTPStatus)
		}
	}
}
