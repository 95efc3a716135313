package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transaction-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID            uuid.UUID
	Type          transaction.Type
	Status        transaction.Status
	Amount        decimal.Decimal
	Currency      transaction.Currency
	AccountNumber string
	UserName      string
	Channel       transaction.Channel
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Description   string
}

func transactionToStorage(tx Transaction) *transaction.Transaction {
	return &transaction.Transaction{
		ID:            tx.ID,
		Type:          tx.Type,
		Status:        tx.Status,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		AccountNumber: tx.AccountNumber,
		UserName:      tx.UserName,
		Channel:       tx.Channel,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
		Description:   tx.Description,
	}
}

func transactionFromStorage(row transaction.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		Type:          row.Type,
		Status:        row.Status,
		Amount:        row.Amount,
		Currency:      row.Currency,
		AccountNumber: row.AccountNumber,
		UserName:      row.UserName,
		Channel:       row.Channel,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Description:   row.Description,
	}
}
