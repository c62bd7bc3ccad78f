package menu

import "github.com/harmony2k/balancee-ussd/internal/model/ussd"

func (e *Engine) agentFlow() *flow {
	return &flow{
		menu: e.agentMenu,
		// No sub-branching: any second token resolves to the decision step.
		wildcard: &branch{
			final:      e.agentDecision,
			finalDepth: 2,
		},
		invalid: "Invalid option.",
	}
}

func (e *Engine) agentMenu(_ *dialog, _ string) ussd.Response {
	return ussd.Con(
		"Talk to an Agent. Charges: ₦7.50 per 20 seconds.",
		"1. Start call",
		"2. Cancel",
		"0. Back",
	)
}

func (e *Engine) agentDecision(d *dialog, pick string) ussd.Response {
	if pick == "1" {
		e.notify.VoiceCall(d.ctx, d.phone)
		return ussd.End("Connecting you to an Agent. You will receive a call shortly. Post-call SMS summary will be sent.")
	}
	return ussd.End("Cancelled.")
}
