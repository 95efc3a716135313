package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID            uuid.UUID
	Type          Type
	Status        Status
	Amount        decimal.Decimal
	Currency      Currency
	AccountNumber string
	UserName      string
	Channel       Channel
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Description   string
}

// ITransactionStore defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ITransactionStore --output mock_ITransactionStore.go
type ITransactionStore interface {
	Create(ctx context.Context, record *Transaction) (Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (Transaction, error)
	List(ctx context.Context, page, size int) ([]Transaction, error)
	Update(ctx context.Context, id uuid.UUID, record *Transaction) (Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
