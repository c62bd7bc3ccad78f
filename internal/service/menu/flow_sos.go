package menu

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/harmony2k/balancee-ussd/internal/model/catalog"
	"github.com/harmony2k/balancee-ussd/internal/model/directory"
	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
)

// Scratch keys written by the SOS flow.
const (
	keySOSLocation  = "sos_location"
	keySOSDistance  = "sos_distance"
	keySOSCost      = "sos_cost"
	keySOSDeposit   = "sos_deposit"
	keyMechLandmark = "mechanic_search_landmark"
)

func (e *Engine) sosFlow() *flow {
	return &flow{
		menu: e.sosMenu,
		branches: map[string]*branch{
			"1": {
				steps:      map[int]stepFn{2: e.sosHelpPrompt, 3: e.sosQuote},
				final:      e.sosDecision,
				finalDepth: 4,
			},
			"2": {
				steps:      map[int]stepFn{2: e.mechanicPrompt, 3: e.mechanicList},
				final:      e.mechanicPick,
				finalDepth: 4,
			},
		},
		invalid: "Invalid option in SOS menu.",
	}
}

func (e *Engine) sosMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Press:",
		"1. SOS help",
		"2. Find a mechanic near you",
		"0. Back",
	)
}

func (e *Engine) sosHelpPrompt(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Press 1 for SOS towing help.",
		"Please enter your location or nearest landmark:",
		"0. Back",
	)
}

// sosQuote prices the tow from the free-text location and stores the quote
// so the approval step works off the same numbers.
func (e *Engine) sosQuote(d *dialog, location string) ussd.Response {
	distanceKm := e.distance.DistanceKm(location)
	cost := catalog.TowingCost(distanceKm)
	deposit := cost.DivRound(decimal.NewFromInt(2), 0)

	d.sess.Set(keySOSLocation, location)
	d.sess.Set(keySOSDistance, strconv.Itoa(distanceKm))
	d.sess.Set(keySOSCost, cost.String())
	d.sess.Set(keySOSDeposit, deposit.String())

	return ussd.Con(
		fmt.Sprintf("SOS towing estimated cost: ₦%s (distance: %dkm).", formatAmount(cost), distanceKm),
		fmt.Sprintf("1. Approve and pay 50%% deposit (₦%s)", formatAmount(deposit)),
		"2. Cancel",
		"0. Back",
	)
}

func (e *Engine) sosDecision(d *dialog, choice string) ussd.Response {
	switch choice {
	case "1":
		cost := scratchDecimal(d.sess.Get(keySOSCost), "5000")
		deposit := d.sess.Get(keySOSDeposit)
		amount := scratchDecimal(deposit, cost.DivRound(decimal.NewFromInt(2), 0).String())

		err := e.ledgers.Debit(d.ctx, d.phone, ledger.AccountWallet, amount)
		if err != nil {
			e.notify.PaymentLink(d.ctx, d.phone, amount)
			return ussd.End("Insufficient funds. A payment link has been sent by SMS to complete deposit (demo).")
		}
		e.notify.SMS(d.ctx, d.phone, fmt.Sprintf("SOS tow confirmed, deposit ₦%s received.", formatAmount(amount)))
		return ussd.End(fmt.Sprintf("Deposit paid: ₦%s. SOS confirmed! You will receive SMS with driver and tracking info.", formatAmount(amount)))
	case "2":
		return ussd.End("SOS request cancelled. Stay safe.")
	default:
		return ussd.End("Invalid option. Ending session.")
	}
}

func (e *Engine) mechanicPrompt(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Please enter your current location or closest landmark:",
		"0. Back",
	)
}

// mechanicList materializes the candidate list into scratch data keyed by
// 1-based index so the next turn's numeric pick resolves to a record.
func (e *Engine) mechanicList(d *dialog, landmark string) ussd.Response {
	d.sess.Set(keyMechLandmark, landmark)

	list := e.mechanics.FindNearby(d.ctx, landmark)
	lines := []string{"Closest mechanics:"}
	for i, m := range list {
		d.sess.Set(fmt.Sprintf("mechanic_%d", i+1), m.Encode())
		lines = append(lines, fmt.Sprintf("%d. %s - %d mins", i+1, m.Name, m.ETAMinutes))
	}
	lines = append(lines, "0. Back")
	return ussd.Con(lines...)
}

// mechanicPick treats a parse failure and an out-of-range index identically:
// the same terminal message, with no further scratch mutation.
func (e *Engine) mechanicPick(d *dialog, pick string) ussd.Response {
	idx, err := strconv.Atoi(pick)
	if err != nil {
		return ussd.End("Invalid selection. Ending session.")
	}
	enc := d.sess.Get(fmt.Sprintf("mechanic_%d", idx))
	if enc == "" {
		return ussd.End("Invalid selection. Ending session.")
	}
	m, err := directory.Decode(enc)
	if err != nil {
		return ussd.End("Invalid selection. Ending session.")
	}

	e.notify.SMS(d.ctx, d.phone, fmt.Sprintf("Mechanic %s, phone %s, ETA %d mins.", m.Name, m.Phone, m.ETAMinutes))
	return ussd.End(fmt.Sprintf("Mechanic selected: %s. Details sent via SMS. ETA: %d mins. Phone: %s", m.Name, m.ETAMinutes, m.Phone))
}
