package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/resilience"
	"github.com/carson-networks/transaction-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Guards      *resilience.Manager
}

// NewService creates a new Service with the given storage. All operations
// share the same guard settings but get independent limiters and breakers.
func NewService(store *storage.Storage, cfg resilience.Config, logger *logrus.Logger) *Service {
	guards := resilience.NewManager(logger)

	return &Service{
		Transaction: NewTransactionService(store, guards, cfg),
		Guards:      guards,
	}
}
