package menu

import (
	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
)

func (e *Engine) moneyFlow() *flow {
	return &flow{
		menu: e.moneyMenu,
		branches: map[string]*branch{
			"1": {
				steps:      map[int]stepFn{2: e.balanceMenu},
				final:      e.balanceShow,
				finalDepth: 3,
			},
			"2": {
				// The amount step is exact-depth: anything past it is an
				// unreachable state, not a replayed confirmation.
				steps: map[int]stepFn{2: e.addMoneyMenu, 3: e.addMoneyPrompt, 4: e.addMoneyAmount},
			},
		},
		invalid: "Invalid option in Money menu.",
	}
}

func (e *Engine) moneyMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Press:",
		"1. Check balance",
		"2. Add money",
		"0. Back",
	)
}

func (e *Engine) balanceMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Check:",
		"1. Wallet balance",
		"2. Credit balance",
		"0. Back",
	)
}

func (e *Engine) balanceShow(d *dialog, which string) ussd.Response {
	switch which {
	case "1":
		bal := e.ledgers.Balance(d.ctx, d.phone, ledger.AccountWallet)
		return ussd.End("Wallet balance: ₦" + formatAmount(bal))
	case "2":
		bal := e.ledgers.Balance(d.ctx, d.phone, ledger.AccountCredit)
		return ussd.End("Credit balance: ₦" + formatAmount(bal))
	default:
		return ussd.End("Invalid option.")
	}
}

func (e *Engine) addMoneyMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Add money:",
		"1. Add to wallet (payment link via SMS)",
		"2. Add to credit (payment link via SMS)",
		"0. Back",
	)
}

func (e *Engine) addMoneyPrompt(_ *dialog, which string) ussd.Response {
	if which != "1" && which != "2" {
		return ussd.End("Invalid option in Money menu.")
	}
	return ussd.Con("Enter amount in Naira (e.g. 5000):", "0. Back")
}

// addMoneyAmount only dispatches a payment link; settlement is external and
// the ledger is not touched here.
func (e *Engine) addMoneyAmount(d *dialog, raw string) ussd.Response {
	digits := sanitizeDigits(raw)
	if digits == "" {
		return ussd.End("Invalid amount. Ending.")
	}
	amount := scratchDecimal(digits, "0")

	e.notify.PaymentLink(d.ctx, d.phone, amount)
	return ussd.End("Payment link sent via SMS for ₦" + formatAmount(amount) + ". After payment, call again to continue.")
}
