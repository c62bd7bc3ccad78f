package menu_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/harmony2k/balancee-ussd/internal/model/directory"
	"github.com/harmony2k/balancee-ussd/internal/model/ussd"
	"github.com/harmony2k/balancee-ussd/internal/service/geo"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
	"github.com/harmony2k/balancee-ussd/internal/service/menu"
	"github.com/harmony2k/balancee-ussd/internal/service/notify"
	"github.com/harmony2k/balancee-ussd/internal/service/session"
)

const demoPhone = "+2348000000000"

// recordingDispatcher captures outbound dispatches for assertions.
type recordingDispatcher struct {
	mu           sync.Mutex
	sms          []string
	paymentLinks []decimal.Decimal
	voiceCalls   int
}

func (d *recordingDispatcher) SMS(_ context.Context, _ string, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sms = append(d.sms, message)
}

func (d *recordingDispatcher) PaymentLink(_ context.Context, _ string, amount decimal.Decimal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paymentLinks = append(d.paymentLinks, amount)
}

func (d *recordingDispatcher) VoiceCall(_ context.Context, _ string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.voiceCalls++
}

var _ notify.Dispatcher = (*recordingDispatcher)(nil)

type fixture struct {
	engine     *menu.Engine
	sessions   *session.Store
	ledgers    *ledger.MemoryStore
	dispatcher *recordingDispatcher
}

func newFixture() *fixture {
	sessions := session.NewStore(90 * time.Second)
	ledgers := ledger.NewMemoryStore(ledger.Seed())
	dispatcher := &recordingDispatcher{}
	engine := menu.NewEngine(sessions, ledgers, directory.NewStaticFinder(directory.Seed()), geo.NewKeywordEstimator(), dispatcher)
	return &fixture{engine: engine, sessions: sessions, ledgers: ledgers, dispatcher: dispatcher}
}

// drive replays one dialog turn by turn, as the gateway does, and returns
// the final frame.
func (f *fixture) drive(id, phone string, texts ...string) ussd.Response {
	var resp ussd.Response
	for _, text := range texts {
		resp = f.engine.Handle(context.Background(), ussd.Request{SessionID: id, Phone: phone, Text: text})
	}
	return resp
}

func TestMainMenuOnEmptyPath(t *testing.T) {
	f := newFixture()

	resp := f.drive("s1", demoPhone, "")

	require.False(t, resp.Terminal)
	require.Len(t, resp.Lines, 5) // header plus exactly four options
	require.Equal(t, "Welcome to Balanceè. Press:", resp.Lines[0])
	require.Equal(t, "CON Welcome to Balanceè. Press:\n1. SOS or repairs\n2. Money matters\n3. Product purchase and delivery\n4. Talk to an Agent", resp.Render())
}

func TestTrailingBackOnEmptyPathIsNoOp(t *testing.T) {
	f := newFixture()

	resp := f.drive("s1", demoPhone, "0")

	require.False(t, resp.Terminal)
	require.Equal(t, "Welcome to Balanceè. Press:", resp.Lines[0])
}

func TestBackReturnsToPreviousMenu(t *testing.T) {
	f := newFixture()

	// Enter the SOS flow, then back out of the help prompt.
	resp := f.drive("s1", demoPhone, "1", "1*1", "1*1*0")

	require.False(t, resp.Terminal)
	require.Equal(t, "Press:", resp.Lines[0])
	require.Equal(t, "1. SOS help", resp.Lines[1])
}

func TestUnknownTopLevelOptionIsTerminal(t *testing.T) {
	f := newFixture()

	resp := f.drive("s1", demoPhone, "9")

	require.True(t, resp.Terminal)
	require.Equal(t, "END Invalid option. Thank you for using Balanceè.", resp.Render())

	_, ok := f.sessions.Get("s1")
	require.False(t, ok, "terminal frame must destroy the session")
}

func TestContinueFrameKeepsSessionAlive(t *testing.T) {
	f := newFixture()

	resp := f.drive("s1", demoPhone, "1")

	require.False(t, resp.Terminal)
	_, ok := f.sessions.Get("s1")
	require.True(t, ok)
}

func TestMissingSessionIDIsSynthesized(t *testing.T) {
	f := newFixture()

	resp := f.engine.Handle(context.Background(), ussd.Request{Phone: demoPhone, Text: ""})

	require.False(t, resp.Terminal)
	require.Equal(t, 1, f.sessions.Len())
}

func TestExpiredSessionsSweptBeforeRouting(t *testing.T) {
	sessions := session.NewStore(time.Millisecond)
	ledgers := ledger.NewMemoryStore(ledger.Seed())
	engine := menu.NewEngine(sessions, ledgers, directory.NewStaticFinder(directory.Seed()), geo.NewKeywordEstimator(), &recordingDispatcher{})

	engine.Handle(context.Background(), ussd.Request{SessionID: "stale", Phone: demoPhone, Text: "1"})
	time.Sleep(10 * time.Millisecond)

	// A request for an unrelated id still evicts the idle session.
	engine.Handle(context.Background(), ussd.Request{SessionID: "other", Phone: demoPhone, Text: ""})

	_, ok := sessions.Get("stale")
	require.False(t, ok, "stale session should have been swept")
	_, ok = sessions.Get("other")
	require.True(t, ok)
}

func TestAgentFlow(t *testing.T) {
	f := newFixture()

	resp := f.drive("s1", demoPhone, "4")
	require.False(t, resp.Terminal)
	require.Equal(t, "Talk to an Agent. Charges: ₦7.50 per 20 seconds.", resp.Lines[0])

	resp = f.drive("s1", demoPhone, "4*1")
	require.True(t, resp.Terminal)
	require.Equal(t, "END Connecting you to an Agent. You will receive a call shortly. Post-call SMS summary will be sent.", resp.Render())
	require.Equal(t, 1, f.dispatcher.voiceCalls)

	resp = f.drive("s2", demoPhone, "4*7")
	require.True(t, resp.Terminal)
	require.Equal(t, "END Cancelled.", resp.Render())
	require.Equal(t, 1, f.dispatcher.voiceCalls)
}
