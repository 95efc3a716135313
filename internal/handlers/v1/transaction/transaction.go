package transaction

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/service"
	storagetx "github.com/carson-networks/transaction-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Type          string `json:"type" doc:"DEPOSIT, WITHDRAWAL, TRANSFER or PAYMENT"`
	Status        string `json:"status" doc:"SUCCESS, FAILURE or PENDING"`
	Amount        string `json:"amount" doc:"Decimal amount"`
	Currency      string `json:"currency" doc:"CNY, USD, EUR or JPY"`
	AccountNumber string `json:"accountNumber" doc:"Account or card number"`
	UserName      string `json:"userName" doc:"Account holder"`
	Channel       string `json:"channel" doc:"COUNTER, ATM, ONLINE_BANK or MOBILE_APP"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt     string `json:"updatedAt" doc:"RFC3339 last update time"`
	Description   string `json:"description" doc:"Free text"`
}

// Amount accepts a JSON number or a decimal string without losing precision.
type Amount struct {
	decimal.Decimal
}

func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Decimal amount, at least 0.01",
		OneOf: []*huma.Schema{
			{Type: huma.TypeNumber},
			{Type: huma.TypeString},
		},
	}
}

// TransactionBody is the request body for creating or updating a
// transaction. Every field is optional at the schema level so that missing
// values are reported by the service validator with the parameter error code.
type TransactionBody struct {
	ID            string  `json:"id,omitempty" doc:"Transaction UUID, generated when empty"`
	Type          string  `json:"type,omitempty" doc:"DEPOSIT, WITHDRAWAL, TRANSFER or PAYMENT"`
	Status        string  `json:"status,omitempty" doc:"SUCCESS, FAILURE or PENDING"`
	Amount        *Amount `json:"amount,omitempty"`
	Currency      string  `json:"currency,omitempty" doc:"CNY, USD, EUR or JPY"`
	AccountNumber string  `json:"accountNumber,omitempty" doc:"Account or card number"`
	UserName      string  `json:"userName,omitempty" doc:"Account holder"`
	Channel       string  `json:"channel,omitempty" doc:"COUNTER, ATM, ONLINE_BANK or MOBILE_APP"`
	CreatedAt     string  `json:"createdAt,omitempty" doc:"RFC3339 creation time, defaults to now"`
	UpdatedAt     string  `json:"updatedAt,omitempty" doc:"RFC3339 update time, defaults to now"`
	Description   string  `json:"description,omitempty" doc:"Free text"`
}

// TransactionEnvelope wraps a single transaction.
type TransactionEnvelope struct {
	Code int          `json:"code" doc:"0 on success"`
	Msg  string       `json:"msg" doc:"Result message"`
	Data *Transaction `json:"data" doc:"The transaction"`
}

func successEnvelope(tx service.Transaction) TransactionEnvelope {
	data := transactionToAPI(tx)
	return TransactionEnvelope{
		Code: int(errcode.Success),
		Msg:  errcode.Success.Message(),
		Data: &data,
	}
}

// parseTransactionBody turns the request body into the service model. Enum
// values and timestamps are checked here; required fields and amount limits
// are left to the service.
func parseTransactionBody(body *TransactionBody) (service.Transaction, error) {
	var tx service.Transaction
	var err error

	if body.ID != "" {
		if tx.ID, err = uuid.FromString(body.ID); err != nil {
			return service.Transaction{}, errcode.Validation("invalid transaction id")
		}
	}
	if body.Amount != nil {
		tx.Amount = body.Amount.Decimal
	}
	if tx.Type, err = storagetx.ParseType(body.Type); err != nil {
		return service.Transaction{}, err
	}
	if tx.Status, err = storagetx.ParseStatus(body.Status); err != nil {
		return service.Transaction{}, err
	}
	if tx.Currency, err = storagetx.ParseCurrency(body.Currency); err != nil {
		return service.Transaction{}, err
	}
	if tx.Channel, err = storagetx.ParseChannel(body.Channel); err != nil {
		return service.Transaction{}, err
	}
	if tx.CreatedAt, err = parseTime(body.CreatedAt, "createdAt"); err != nil {
		return service.Transaction{}, err
	}
	if tx.UpdatedAt, err = parseTime(body.UpdatedAt, "updatedAt"); err != nil {
		return service.Transaction{}, err
	}

	tx.AccountNumber = body.AccountNumber
	tx.UserName = body.UserName
	tx.Description = body.Description

	return tx, nil
}

func parseTime(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errcode.Validation("invalid " + field)
	}
	return parsed, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, errcode.Validation("invalid transaction id")
	}
	return id, nil
}

func transactionToAPI(tx service.Transaction) Transaction {
	return Transaction{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		Amount:        tx.Amount.String(),
		Currency:      string(tx.Currency),
		AccountNumber: tx.AccountNumber,
		UserName:      tx.UserName,
		Channel:       string(tx.Channel),
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     tx.UpdatedAt.Format(time.RFC3339),
		Description:   tx.Description,
	}
}
