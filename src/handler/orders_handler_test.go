package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"papertrader/src/trading"
)

type mockOrderSubmitter struct {
	outcome     trading.Outcome
	received    trading.OrderRequest
	calledCount int
}

func (m *mockOrderSubmitter) Submit(_ context.Context, order trading.OrderRequest) trading.Outcome {
	m.calledCount++
	m.received = order
	return m.outcome
}

func TestBuyOrderHandler_Executed(t *testing.T) {
	mockSvc := &mockOrderSubmitter{outcome: trading.Outcome{Status: trading.StatusExecuted}}
	h := BuyOrderHandler(mockSvc)

	body := `{"user_id":"alice","ticker":"AAPL","quantity":10,"limit_order":false,"limit_price":0}`
	req := httptest.NewRequest(http.MethodPost, "/order/buy", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty success body, got %q", rr.Body.String())
	}

	if mockSvc.calledCount != 1 {
		t.Fatalf("expected service to be called once, got %d", mockSvc.calledCount)
	}
	if mockSvc.received.Side != trading.SideBuy {
		t.Fatalf("expected buy side, got %s", mockSvc.received.Side)
	}
	if mockSvc.received.UserID != "alice" || mockSvc.received.Ticker != "AAPL" || mockSvc.received.Quantity != 10 {
		t.Fatalf("payload not mapped onto order request: %+v", mockSvc.received)
	}
}

func TestSellOrderHandler_SideSelection(t *testing.T) {
	mockSvc := &mockOrderSubmitter{outcome: trading.Outcome{Status: trading.StatusExecuted}}
	h := SellOrderHandler(mockSvc)

	body := `{"user_id":"bob","ticker":"MSFT","quantity":3,"limit_order":true,"limit_price":300}`
	req := httptest.NewRequest(http.MethodPost, "/order/sell", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mockSvc.received.Side != trading.SideSell {
		t.Fatalf("expected sell side, got %s", mockSvc.received.Side)
	}
	if !mockSvc.received.Limit || mockSvc.received.LimitPrice != 300 {
		t.Fatalf("limit fields not mapped: %+v", mockSvc.received)
	}
}

func TestOrderHandler_InvalidPayload(t *testing.T) {
	mockSvc := &mockOrderSubmitter{}
	h := BuyOrderHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/order/buy", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if mockSvc.calledCount != 0 {
		t.Fatal("service must not be called on a malformed payload")
	}
}

func TestOrderHandler_OutcomeMapping(t *testing.T) {
	tests := []struct {
		name       string
		outcome    trading.Outcome
		wantStatus int
		wantInBody string
	}{
		{
			name:       "rejected maps to 400 with delta",
			outcome:    trading.Outcome{Status: trading.StatusRejected, Message: "limit not met: market price 210.00 exceeds limit 200.00 (delta -10.00)"},
			wantStatus: http.StatusBadRequest,
			wantInBody: "-10.00",
		},
		{
			name:       "invalid maps to 400",
			outcome:    trading.Outcome{Status: trading.StatusInvalid, Message: "quantity must be positive, got 0"},
			wantStatus: http.StatusBadRequest,
			wantInBody: "quantity",
		},
		{
			name:       "not found maps to 404 with ticker",
			outcome:    trading.Outcome{Status: trading.StatusNotFound, Message: "no quote available for ticker: ZZZZ"},
			wantStatus: http.StatusNotFound,
			wantInBody: "ZZZZ",
		},
		{
			name:       "service error maps to 500",
			outcome:    trading.Outcome{Status: trading.StatusError, Message: "transaction was not recorded: deadlock detected"},
			wantStatus: http.StatusInternalServerError,
			wantInBody: "deadlock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := BuyOrderHandler(&mockOrderSubmitter{outcome: tt.outcome})

			body := `{"user_id":"alice","ticker":"AAPL","quantity":1}`
			req := httptest.NewRequest(http.MethodPost, "/order/buy", strings.NewReader(body))
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.wantInBody) {
				t.Fatalf("body %q does not contain %q", rr.Body.String(), tt.wantInBody)
			}
		})
	}
}
