package plaid

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
)

// MockClient is a test double for the Plaid feed.
type MockClient struct {
	GetTransactionsFn    func(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
	GetTransactionsCalls []GetTransactionsCall
	mu                   sync.Mutex
}

// GetTransactionsCall records the arguments of one GetTransactions call.
type GetTransactionsCall struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewMockClient creates a mock that returns no transactions.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GetTransactions implements service.TransactionFetcher.
func (m *MockClient) GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error) {
	m.mu.Lock()
	m.GetTransactionsCalls = append(m.GetTransactionsCalls, GetTransactionsCall{
		StartDate: startDate,
		EndDate:   endDate,
	})
	m.mu.Unlock()

	if m.GetTransactionsFn != nil {
		return m.GetTransactionsFn(ctx, startDate, endDate)
	}
	return []model.Transaction{}, nil
}

// Reset clears all call tracking.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTransactionsCalls = nil
}

var _ service.TransactionFetcher = (*MockClient)(nil)
