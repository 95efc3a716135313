package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/transaction-server/internal/errcode"
)

var minAmount = decimal.RequireFromString("0.01")

// Validate checks a record before it is written. The first violation wins,
// so the order of the checks decides which error a caller sees.
func Validate(record *Transaction, now time.Time) error {
	if record == nil {
		return errcode.Validation("transaction data must not be empty")
	}
	if record.Amount.LessThan(minAmount) {
		return errcode.Validation("transaction amount must be greater than or equal to 0.01")
	}
	if strings.TrimSpace(record.UserName) == "" {
		return errcode.Validation("user name must not be blank")
	}
	if strings.TrimSpace(record.AccountNumber) == "" {
		return errcode.Validation("account number must not be blank")
	}
	if record.Type == "" {
		return errcode.Validation("transaction type is required")
	}
	if record.Status == "" {
		return errcode.Validation("transaction status is required")
	}
	if record.Currency == "" {
		return errcode.Validation("currency is required")
	}
	if record.Channel == "" {
		return errcode.Validation("transaction channel is required")
	}
	if !record.Type.IsValid() {
		return errcode.Validation("invalid transaction type")
	}
	if !record.Status.IsValid() {
		return errcode.Validation("invalid transaction status")
	}
	if !record.Currency.IsValid() {
		return errcode.Validation("invalid currency")
	}
	if !record.Channel.IsValid() {
		return errcode.Validation("invalid transaction channel")
	}
	if record.CreatedAt.After(now) {
		return errcode.Validation("created time must not be later than the current time")
	}
	if record.UpdatedAt.After(now) {
		return errcode.Validation("updated time must not be later than the current time")
	}

	return nil
}
