package transaction

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/errcode"
)

var _ ITransactionStore = (*Store)(nil)

// Store is the in-memory transaction table. Records are kept behind
// pointers that are never mutated after insertion; callers always receive
// copies.
type Store struct {
	records sync.Map // uuid.UUID -> *Transaction
	count   atomic.Int64
	view    sortedView
	now     func() time.Time
	logger  logrus.FieldLogger
}

type StoreOption func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger logrus.FieldLogger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:    time.Now,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new transaction. The ID and both timestamps
// are filled in when the caller left them empty.
func (s *Store) Create(ctx context.Context, record *Transaction) (Transaction, error) {
	now := s.now()
	if err := Validate(record, now); err != nil {
		return Transaction{}, err
	}

	created := *record
	if created.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return Transaction{}, fmt.Errorf("generate transaction id: %w", err)
		}
		created.ID = id
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	if created.UpdatedAt.IsZero() {
		created.UpdatedAt = now
	}

	if _, loaded := s.records.LoadOrStore(created.ID, &created); loaded {
		return Transaction{}, errcode.Validation("transaction id already exists")
	}
	s.count.Add(1)
	s.view.invalidate()

	s.logger.WithFields(logrus.Fields{
		"id":     created.ID.String(),
		"amount": created.Amount.String(),
	}).Debug("Store.Create")

	return created, nil
}

// Get returns the transaction with the given id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Transaction, error) {
	value, ok := s.records.Load(id)
	if !ok {
		return Transaction{}, errcode.NotFound()
	}
	return *value.(*Transaction), nil
}

// List returns one page of transactions ordered by UpdatedAt, newest first.
// Pages start at 1.
func (s *Store) List(ctx context.Context, page, size int) ([]Transaction, error) {
	if page <= 0 || size <= 0 {
		return nil, errcode.Validation("invalid pagination parameters")
	}

	sorted := s.view.get(s.sortRecords)

	result := make([]Transaction, 0)
	if page-1 > len(sorted)/size {
		return result, nil
	}
	offset := (page - 1) * size
	if offset >= len(sorted) {
		return result, nil
	}
	end := len(sorted)
	if size < end-offset {
		end = offset + size
	}

	for _, record := range sorted[offset:end] {
		result = append(result, *record)
	}

	s.logger.WithFields(logrus.Fields{
		"page":  page,
		"size":  size,
		"count": len(result),
	}).Debug("Store.List")

	return result, nil
}

// Update replaces the stored transaction. The ID and CreatedAt of the stored
// record are kept and UpdatedAt is set to now.
func (s *Store) Update(ctx context.Context, id uuid.UUID, record *Transaction) (Transaction, error) {
	now := s.now()
	if err := Validate(record, now); err != nil {
		return Transaction{}, err
	}

	for {
		value, ok := s.records.Load(id)
		if !ok {
			return Transaction{}, errcode.NotFound()
		}
		existing := value.(*Transaction)

		updated := *record
		updated.ID = id
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = now

		if s.records.CompareAndSwap(id, existing, &updated) {
			s.view.invalidate()
			s.logger.WithFields(logrus.Fields{
				"id":     id.String(),
				"amount": updated.Amount.String(),
			}).Debug("Store.Update")
			return updated, nil
		}
	}
}

// Delete removes the transaction with the given id.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, loaded := s.records.LoadAndDelete(id); !loaded {
		return false, errcode.NotFound()
	}
	s.count.Add(-1)
	s.view.invalidate()

	s.logger.WithField("id", id.String()).Debug("Store.Delete")

	return true, nil
}

// Count returns the number of stored transactions.
func (s *Store) Count() int {
	return max(int(s.count.Load()), 0)
}

func (s *Store) sortRecords() []*Transaction {
	records := make([]*Transaction, 0, s.Count())
	s.records.Range(func(_, value any) bool {
		records = append(records, value.(*Transaction))
		return true
	})
	slices.SortFunc(records, compareByRecency)
	return records
}

func compareByRecency(a, b *Transaction) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID.Bytes(), b.ID.Bytes())
}
