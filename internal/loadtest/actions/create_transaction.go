package actions

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/storage/transaction"
)

// CreateTransaction posts one transaction.
type CreateTransaction struct {
	UserName      string          `json:"userName"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	Type          string          `json:"type"`
	Channel       string          `json:"channel"`
	Description   string          `json:"description"`
}

// SampleDeposit is the counter deposit used by default in load runs.
func SampleDeposit() *CreateTransaction {
	return &CreateTransaction{
		UserName:      "load-test",
		AccountNumber: "622202020000000000",
		Amount:        decimal.RequireFromString("100.00"),
		Currency:      string(transaction.CurrencyCNY),
		Status:        string(transaction.StatusSuccess),
		Type:          string(transaction.TypeDeposit),
		Channel:       string(transaction.ChannelCounter),
		Description:   "load test deposit",
	}
}

func (t *CreateTransaction) Perform(ctx context.Context, client *Client) (errcode.Code, error) {
	env, err := client.do(ctx, http.MethodPost, "/transactions", t)
	if err != nil {
		return errcode.SystemException, err
	}
	return env.Code, nil
}
