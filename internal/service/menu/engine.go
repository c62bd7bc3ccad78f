package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/harmony2k/balancee-ussd/internal/model/directory"
	sessionmodel "github.com/harmony2k/balancee-ussd/internal/model/session"
	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/geo"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
	"github.com/harmony2k/balancee-ussd/internal/service/notify"
	"github.com/harmony2k/balancee-ussd/internal/service/session"
)

// dialog is the per-request view a step operates on: the popped token path,
// the caller, and the session whose scratch data survives between turns.
type dialog struct {
	ctx   context.Context
	phone string
	path  []string
	sess  *sessionmodel.Session
}

// stepFn consumes the token that advanced the dialog to this step and
// returns the next frame. Steps touch session scratch data and the injected
// collaborators only.
type stepFn func(d *dialog, token string) ussd.Response

// branch is one second-level wizard: steps keyed by the number of path
// tokens present when the step fires. The final step, when set, absorbs any
// deeper path so that a replayed confirmation token still resolves to it;
// its input is the token at its own depth, not the newest one.
type branch struct {
	steps      map[int]stepFn
	final      stepFn
	finalDepth int
}

// flow is one top-level wizard. menu fires when only the flow token is
// present; branches dispatch on the second token. wildcard, when set,
// handles any second token (the agent flow has no sub-branching). invalid
// is the flow's terminal message for unreachable states.
type flow struct {
	menu     stepFn
	branches map[string]*branch
	wildcard *branch
	invalid  string
}

func (f *flow) dispatch(d *dialog) ussd.Response {
	depth := len(d.path)
	if depth == 1 {
		return f.menu(d, d.path[0])
	}

	br := f.branches[d.path[1]]
	if br == nil {
		br = f.wildcard
	}
	if br == nil {
		return ussd.End(f.invalid)
	}
	if fn, ok := br.steps[depth]; ok {
		return fn(d, d.path[depth-1])
	}
	if br.final != nil && depth >= br.finalDepth {
		return br.final(d, d.path[br.finalDepth-1])
	}
	return ussd.End(f.invalid)
}

// Engine is the dialog state machine. Each request is resolved against the
// flow tables using the resubmitted path and the session's scratch data.
type Engine struct {
	sessions  *session.Store
	ledgers   ledger.Store
	mechanics directory.Finder
	distance  geo.Estimator
	notify    notify.Dispatcher

	flows map[string]*flow
	now   func() time.Time
}

// NewEngine wires the engine to its collaborators and builds the flow
// tables.
func NewEngine(sessions *session.Store, ledgers ledger.Store, mechanics directory.Finder, distance geo.Estimator, dispatcher notify.Dispatcher) *Engine {
	e := &Engine{
		sessions:  sessions,
		ledgers:   ledgers,
		mechanics: mechanics,
		distance:  distance,
		notify:    dispatcher,
		now:       time.Now,
	}
	e.flows = map[string]*flow{
		"1": e.sosFlow(),
		"2": e.moneyFlow(),
		"3": e.productsFlow(),
		"4": e.agentFlow(),
	}
	return e
}

// Handle resolves one gateway callback into a response frame. Expired
// sessions are swept before lookup; a terminal frame destroys the session
// immediately rather than waiting for the sweep.
func (e *Engine) Handle(ctx context.Context, req ussd.Request) ussd.Response {
	phone := req.Phone
	if phone == "" {
		phone = "unknown"
	}
	// The gateway supplies the session id; synthesize one for local tests.
	id := req.SessionID
	if id == "" {
		id = fmt.Sprintf("%s-%d", phone, e.now().UnixMilli())
	}

	e.sessions.SweepExpired()
	sess := e.sessions.GetOrCreate(id)

	path := Tokenize(req.Text)
	if len(path) == 0 {
		return ussd.Con(
			"Welcome to Balanceè. Press:",
			"1. SOS or repairs",
			"2. Money matters",
			"3. Product purchase and delivery",
			"4. Talk to an Agent",
		)
	}

	d := &dialog{ctx: ctx, phone: phone, path: path, sess: sess}

	var resp ussd.Response
	if f, ok := e.flows[path[0]]; ok {
		resp = f.dispatch(d)
	} else {
		resp = ussd.End("Invalid option. Thank you for using Balanceè.")
	}

	if resp.Terminal {
		e.sessions.Remove(id)
	}
	return resp
}
