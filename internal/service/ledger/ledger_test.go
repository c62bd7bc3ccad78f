package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
)

func TestSeededBalances(t *testing.T) {
	s := ledger.NewMemoryStore(ledger.Seed())
	ctx := context.Background()

	wallet := s.Balance(ctx, "+2348000000000", ledger.AccountWallet)
	if !wallet.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("wallet balance = %s, want 15000", wallet)
	}
	credit := s.Balance(ctx, "+2348000000000", ledger.AccountCredit)
	if !credit.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("credit balance = %s, want 5000", credit)
	}
}

func TestBalanceUnknownCallerIsZero(t *testing.T) {
	s := ledger.NewMemoryStore(nil)

	if bal := s.Balance(context.Background(), "+2340000000001", ledger.AccountWallet); !bal.IsZero() {
		t.Fatalf("expected zero balance, got %s", bal)
	}
}

func TestDebitSubtracts(t *testing.T) {
	s := ledger.NewMemoryStore(ledger.Seed())
	ctx := context.Background()

	if err := s.Debit(ctx, "+2348000000000", ledger.AccountWallet, decimal.NewFromInt(2500)); err != nil {
		t.Fatalf("Debit err: %v", err)
	}
	if bal := s.Balance(ctx, "+2348000000000", ledger.AccountWallet); !bal.Equal(decimal.NewFromInt(12500)) {
		t.Fatalf("balance = %s, want 12500", bal)
	}
}

func TestDebitInsufficientFundsLeavesBalance(t *testing.T) {
	s := ledger.NewMemoryStore(ledger.Seed())
	ctx := context.Background()

	err := s.Debit(ctx, "+2348000000000", ledger.AccountWallet, decimal.NewFromInt(20000))
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if bal := s.Balance(ctx, "+2348000000000", ledger.AccountWallet); !bal.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("failed debit mutated balance: %s", bal)
	}
}

func TestDebitExactBalanceSucceeds(t *testing.T) {
	s := ledger.NewMemoryStore(ledger.Seed())
	ctx := context.Background()

	if err := s.Debit(ctx, "+2348000000000", ledger.AccountCredit, decimal.NewFromInt(5000)); err != nil {
		t.Fatalf("Debit err: %v", err)
	}
	if bal := s.Balance(ctx, "+2348000000000", ledger.AccountCredit); !bal.IsZero() {
		t.Fatalf("balance = %s, want 0", bal)
	}
}

func TestDeposit(t *testing.T) {
	s := ledger.NewMemoryStore(nil)
	ctx := context.Background()

	s.Deposit(ctx, "+2340000000001", ledger.AccountWallet, decimal.NewFromInt(700))
	if bal := s.Balance(ctx, "+2340000000001", ledger.AccountWallet); !bal.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("balance = %s, want 700", bal)
	}
}
