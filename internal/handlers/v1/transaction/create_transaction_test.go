package transaction

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/service"
	storagetx "github.com/carson-networks/transaction-server/internal/storage/transaction"
)

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := sampleServiceTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Amount.Equal(decimal.RequireFromString("100.00")) &&
			tx.Type == storagetx.TypeDeposit &&
			tx.Channel == storagetx.ChannelCounter &&
			tx.UserName == "Zhang San"
	})).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/transactions", sampleBody())

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decode[TransactionEnvelope](t, resp)
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "success", body.Msg)
	if assert.NotNil(t, body.Data) {
		assert.Equal(t, created.ID.String(), body.Data.ID)
		assert.Equal(t, "100", body.Data.Amount)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_AmountAsString(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Amount.Equal(decimal.RequireFromString("0.10"))
	})).Return(sampleServiceTransaction(), nil)

	body := sampleBody()
	body["amount"] = "0.10"
	resp := newTestAPI(t, mockSvc).Post("/transactions", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidEnum(t *testing.T) {
	mockSvc := new(mockTransactionService)

	body := sampleBody()
	body["currency"] = "GBP"
	resp := newTestAPI(t, mockSvc).Post("/transactions", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env := decode[errorEnvelope](t, resp)
	assert.Equal(t, int(errcode.IllegalParam), env.Code)
	assert.Equal(t, "invalid currency", env.Msg)
	assert.Nil(t, env.Data)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_MalformedJSON(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/transactions",
		"Content-Type: application/json",
		strings.NewReader(`{"amount": 1`))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env := decode[errorEnvelope](t, resp)
	assert.Equal(t, int(errcode.IllegalParam), env.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_AmountWrongType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	body := sampleBody()
	body["amount"] = true
	resp := newTestAPI(t, mockSvc).Post("/transactions", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, int(errcode.IllegalParam), decode[errorEnvelope](t, resp).Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceErrors(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
		code   errcode.Code
		msg    string
	}{
		"validation": {errcode.Validation("user name must not be blank"), http.StatusBadRequest, errcode.IllegalParam, "user name must not be blank"},
		"degraded":   {errcode.Degraded(errors.New("breaker open")), http.StatusServiceUnavailable, errcode.ServiceDegraded, "system busy"},
		"uncoded":    {errors.New("boom"), http.StatusInternalServerError, errcode.SystemException, "internal error"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).Return(service.Transaction{}, tc.err)

			resp := newTestAPI(t, mockSvc).Post("/transactions", sampleBody())

			assert.Equal(t, tc.status, resp.Code)
			env := decode[errorEnvelope](t, resp)
			assert.Equal(t, int(tc.code), env.Code)
			assert.Equal(t, tc.msg, env.Msg)
			assert.NotContains(t, env.Msg, "boom")
			mockSvc.AssertExpectations(t)
		})
	}
}
