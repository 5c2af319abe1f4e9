package posixsignal

// FakeSignaler is a deterministic Signaler test double: WaitForSIGCHLD
// returns as soon as Deliver has been called at least as many times as
// WaitForSIGCHLD, simulating a kernel that has already queued the
// notification rather than blocking forever in a unit test.
type FakeSignaler struct {
	blocked   int
	delivered chan struct{}
}

// NewFakeSignaler returns a ready-to-use FakeSignaler.
func NewFakeSignaler() *FakeSignaler {
	return &FakeSignaler{delivered: make(chan struct{}, 64)}
}

func (f *FakeSignaler) BlockSIGCHLDAndSIGHUP()   { f.blocked++ }
func (f *FakeSignaler) UnblockSIGCHLDAndSIGHUP() { f.blocked-- }

// Deliver simulates a SIGCHLD arriving, waking one pending WaitForSIGCHLD.
func (f *FakeSignaler) Deliver() {
	f.delivered <- struct{}{}
}

func (f *FakeSignaler) WaitForSIGCHLD() {
	<-f.delivered
}

func (f *FakeSignaler) SignalName(signum int) string {
	return signalName(signum)
}

// Blocked reports whether SIGCHLD/SIGHUP are currently blocked (Block
// calls outnumber Unblock calls), for tests asserting the race-free
// protocol's bracketing.
func (f *FakeSignaler) Blocked() bool {
	return f.blocked > 0
}
