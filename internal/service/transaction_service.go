package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-server/internal/resilience"
	"github.com/carson-networks/transaction-server/internal/storage"
	"github.com/carson-networks/transaction-server/internal/storage/transaction"
)

// Operation names, one guard each.
const (
	OperationCreate = "create"
	OperationGet    = "get"
	OperationList   = "list"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// TransactionService handles transaction business logic. Every call goes
// through the guard of its operation before it reaches storage.
type TransactionService struct {
	storage *storage.Storage
	create  *resilience.Guard
	get     *resilience.Guard
	list    *resilience.Guard
	update  *resilience.Guard
	delete  *resilience.Guard
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, guards *resilience.Manager, cfg resilience.Config) *TransactionService {
	return &TransactionService{
		storage: store,
		create:  guards.GetOrCreate(OperationCreate, cfg),
		get:     guards.GetOrCreate(OperationGet, cfg),
		list:    guards.GetOrCreate(OperationList, cfg),
		update:  guards.GetOrCreate(OperationUpdate, cfg),
		delete:  guards.GetOrCreate(OperationDelete, cfg),
	}
}

// CreateTransaction stores a new transaction and returns it with its ID and
// timestamps filled in.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	return resilience.Run(ctx, s.create, func() (Transaction, error) {
		row, err := s.storage.Transactions.Create(ctx, transactionToStorage(tx))
		if err != nil {
			return Transaction{}, err
		}
		return transactionFromStorage(row), nil
	})
}

// GetTransaction returns a single transaction.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (Transaction, error) {
	return resilience.Run(ctx, s.get, func() (Transaction, error) {
		row, err := s.storage.Transactions.Get(ctx, id)
		if err != nil {
			return Transaction{}, err
		}
		return transactionFromStorage(row), nil
	})
}

// ListTransactions returns one page of transactions, most recently updated
// first. page starts at 1.
func (s *TransactionService) ListTransactions(ctx context.Context, page, size int) ([]Transaction, error) {
	return resilience.Run(ctx, s.list, func() ([]Transaction, error) {
		rows, err := s.storage.Transactions.List(ctx, page, size)
		if err != nil {
			return nil, err
		}
		return convertTransactions(rows), nil
	})
}

// UpdateTransaction replaces the transaction with the given ID.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, tx Transaction) (Transaction, error) {
	return resilience.Run(ctx, s.update, func() (Transaction, error) {
		row, err := s.storage.Transactions.Update(ctx, id, transactionToStorage(tx))
		if err != nil {
			return Transaction{}, err
		}
		return transactionFromStorage(row), nil
	})
}

// DeleteTransaction removes the transaction with the given ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, error) {
	return resilience.Run(ctx, s.delete, func() (bool, error) {
		return s.storage.Transactions.Delete(ctx, id)
	})
}

func convertTransactions(rows []transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}
