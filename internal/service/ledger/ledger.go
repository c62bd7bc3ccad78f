package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// Account selects which balance a ledger operation targets.
type Account string

const (
	AccountWallet Account = "wallet"
	AccountCredit Account = "credit"
)

// ErrInsufficientFunds is returned by Debit when the balance cannot cover
// the requested amount. The balance is left untouched.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Store exposes balance lookup and movement for the menu engine. The demo
// implementation below is in-memory; production substitutes a real ledger
// without touching the state machine.
type Store interface {
	Balance(ctx context.Context, phone string, acct Account) decimal.Decimal
	Debit(ctx context.Context, phone string, acct Account, amount decimal.Decimal) error
	Deposit(ctx context.Context, phone string, acct Account, amount decimal.Decimal)
}

// MemoryStore implements Store with mutex-guarded maps.
type MemoryStore struct {
	mu       sync.Mutex
	balances map[Account]map[string]decimal.Decimal
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied balances.
// A nil seed yields an empty ledger.
func NewMemoryStore(seed map[Account]map[string]decimal.Decimal) *MemoryStore {
	balances := map[Account]map[string]decimal.Decimal{
		AccountWallet: make(map[string]decimal.Decimal),
		AccountCredit: make(map[string]decimal.Decimal),
	}
	for acct, entries := range seed {
		for phone, amount := range entries {
			balances[acct][phone] = amount
		}
	}
	return &MemoryStore{balances: balances}
}

// Seed provides the demo starting balances for quick testing.
func Seed() map[Account]map[string]decimal.Decimal {
	return map[Account]map[string]decimal.Decimal{
		AccountWallet: {"+2348000000000": decimal.NewFromInt(15000)},
		AccountCredit: {"+2348000000000": decimal.NewFromInt(5000)},
	}
}

// Balance returns the current balance, zero for unknown callers.
func (s *MemoryStore) Balance(_ context.Context, phone string, acct Account) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[acct][phone]
}

// Debit subtracts amount from the balance. On ErrInsufficientFunds no
// mutation is performed.
func (s *MemoryStore) Debit(_ context.Context, phone string, acct Account, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balances[acct][phone]
	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	s.balances[acct][phone] = balance.Sub(amount)
	return nil
}

// Deposit adds amount to the balance.
func (s *MemoryStore) Deposit(_ context.Context, phone string, acct Account, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[acct][phone] = s.balances[acct][phone].Add(amount)
}
