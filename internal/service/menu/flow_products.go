package menu

import (
	"fmt"

	"github.com/harmony2k/balancee-ussd/internal/model/catalog"
	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
)

// Scratch keys written by the products flow.
const (
	keyStation        = "station"
	keyFuelType       = "fuelType"
	keyPricePerLitre  = "pricePerLitre"
	keyPurchaseAmount = "purchase_amount"
	keyPurchaseLitres = "purchase_litres"
)

func (e *Engine) productsFlow() *flow {
	// Accessories and spare parts share one wizard behind two branch tokens.
	goods := func() *branch {
		return &branch{
			steps:      map[int]stepFn{2: e.goodsMenu, 3: e.goodsPick, 4: e.goodsQuantity},
			final:      e.goodsDecision,
			finalDepth: 5,
		}
	}
	return &flow{
		menu: e.productsMenu,
		branches: map[string]*branch{
			"1": {
				steps:      map[int]stepFn{2: e.stationMenu, 3: e.stationPick, 4: e.fuelPick, 5: e.fuelAmount},
				final:      e.fuelDecision,
				finalDepth: 6,
			},
			"2": goods(),
			"3": goods(),
		},
		invalid: "Invalid option in Products menu.",
	}
}

func (e *Engine) productsMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Product service:",
		"1. Fuel",
		"2. Car accessories",
		"3. Spare parts",
		"4. Back",
		"0. Back",
	)
}

func (e *Engine) stationMenu(_ *dialog, _ string) ussd.Response {
	lines := []string{"Nearest fuel stations:"}
	for i, st := range catalog.Stations() {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, st.Name, st.Distance))
	}
	lines = append(lines, "4. Back", "0. Back")
	return ussd.Con(lines...)
}

func (e *Engine) stationPick(d *dialog, pick string) ussd.Response {
	st, ok := catalog.StationAt(pick)
	if !ok {
		return ussd.End("Invalid station. Ending.")
	}
	d.sess.Set(keyStation, st.Name)

	lines := []string{"Available at " + st.Name + ":"}
	for i, ft := range catalog.FuelTypes() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ft.Label))
	}
	lines = append(lines, "4. Back", "0. Back")
	return ussd.Con(lines...)
}

func (e *Engine) fuelPick(d *dialog, pick string) ussd.Response {
	ft, ok := catalog.FuelTypeAt(pick)
	if !ok {
		return ussd.End("Invalid fuel type. Ending.")
	}
	d.sess.Set(keyFuelType, ft.Name)
	d.sess.Set(keyPricePerLitre, ft.PricePerLitre.String())
	return ussd.Con("Enter amount in Naira (e.g. 5000).", "0. Back")
}

// fuelAmount converts the entered amount to litres at scale 2, half up, and
// stores both figures for the approval step.
func (e *Engine) fuelAmount(d *dialog, raw string) ussd.Response {
	digits := sanitizeDigits(raw)
	if digits == "" {
		return ussd.End("Invalid amount. Ending.")
	}
	amount := scratchDecimal(digits, "0")
	pricePerLitre := scratchDecimal(d.sess.Get(keyPricePerLitre), "250")
	litres := amount.DivRound(pricePerLitre, 2)

	d.sess.Set(keyPurchaseAmount, amount.String())
	d.sess.Set(keyPurchaseLitres, litres.StringFixed(2))

	return ussd.Con(
		fmt.Sprintf("You are buying %s L of %s for ₦%s.", litres.StringFixed(2), d.sess.Get(keyFuelType), formatAmount(amount)),
		"1. Approve & pay",
		"2. Cancel",
		"0. Back",
	)
}

func (e *Engine) fuelDecision(d *dialog, choice string) ussd.Response {
	switch choice {
	case "1":
		amount := scratchDecimal(d.sess.Get(keyPurchaseAmount), "0")
		if err := e.ledgers.Debit(d.ctx, d.phone, ledger.AccountWallet, amount); err != nil {
			e.notify.PaymentLink(d.ctx, d.phone, amount)
			return ussd.End("Insufficient funds. A payment link has been sent by SMS (demo).")
		}
		e.notify.SMS(d.ctx, d.phone, fmt.Sprintf("Fuel order confirmed: %s L of %s at %s.",
			d.sess.Get(keyPurchaseLitres), d.sess.Get(keyFuelType), d.sess.Get(keyStation)))
		return ussd.End("Order confirmed! Delivery selected. ETA: 25 mins. Tracking SMS sent.")
	case "2":
		return ussd.End("Order cancelled.")
	default:
		return ussd.End("Invalid option.")
	}
}

func (e *Engine) goodsMenu(_ *dialog, _ string) ussd.Response {
	lines := []string{"Available products:"}
	for i, p := range catalog.Accessories() {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Label))
	}
	lines = append(lines, "3. Back", "0. Back")
	return ussd.Con(lines...)
}

func (e *Engine) goodsPick(_ *dialog, pick string) ussd.Response {
	if _, ok := catalog.AccessoryAt(pick); !ok {
		return ussd.End("Invalid option.")
	}
	return ussd.Con("Enter quantity (e.g. 2):", "0. Back")
}

// goodsQuantity totals the order from the catalog unit price. The product
// pick is re-read from the resubmitted path: menu picks live in the path,
// scratch holds computed values only.
func (e *Engine) goodsQuantity(d *dialog, raw string) ussd.Response {
	digits := sanitizeDigits(raw)
	if digits == "" {
		return ussd.End("Invalid quantity.")
	}
	qty := scratchDecimal(digits, "0")

	p, ok := catalog.AccessoryAt(d.path[2])
	if !ok {
		return ussd.End("Invalid option.")
	}
	total := p.UnitPrice.Mul(qty)

	return ussd.Con(
		"Total ₦"+formatAmount(total)+".",
		"1. Approve & pay",
		"2. Cancel",
		"0. Back",
	)
}

// goodsDecision always accepts an approval: the demo scope places the order
// without a ledger check, and any non-approval token cancels.
func (e *Engine) goodsDecision(d *dialog, choice string) ussd.Response {
	if choice == "1" {
		e.notify.SMS(d.ctx, d.phone, "Order placed, delivery within 48hrs.")
		return ussd.End("Order placed. ETA: 48hrs. Tracking SMS sent.")
	}
	return ussd.End("Order cancelled.")
}
