package storage

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/storage/transaction"
)

type Storage struct {
	Transactions transaction.ITransactionStore
}

// NewStorage builds the in-memory tables. Contents live only as long as
// the process.
func NewStorage(logger *logrus.Logger) *Storage {
	return &Storage{
		Transactions: transaction.NewStore(transaction.WithLogger(logger)),
	}
}
