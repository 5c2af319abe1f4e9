// Package posixsignal provides the signal-subsystem primitives the
// job-control core consumes: blocking/unblocking SIGCHLD and SIGHUP around
// a blocking wait, an atomic sleep-until-SIGCHLD primitive, and signal-name
// lookup. It is the signal subsystem spec.md §6 describes as an input the
// core consumes but does not implement.
//
// The block/unblock split (rather than a single process-wide mask toggle)
// is inspired by the SignalSet abstraction in the teacher repo's simulated
// process manager, adapted here to operate on the real kernel signal mask
// via golang.org/x/sys/unix instead of an in-memory pending-signal queue.
package posixsignal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Signaler is the interface the job-control core's blocking waiter
// consumes. BlockSIGCHLDAndSIGHUP/UnblockSIGCHLDAndSIGHUP bracket a
// check-then-sleep loop so no wakeup is lost; WaitForSIGCHLD sleeps until a
// SIGCHLD is delivered or already pending, after which the caller runs the
// reaper. SignalName maps a signal number to its
// bare symbolic name (no "SIG" prefix), for the status formatter.
type Signaler interface {
	BlockSIGCHLDAndSIGHUP()
	UnblockSIGCHLDAndSIGHUP()
	WaitForSIGCHLD()
	SignalName(signum int) string
}

// RealSignaler implements Signaler against the real kernel signal mask.
type RealSignaler struct {
	notifyCh chan os.Signal
}

// NewRealSignaler returns a Signaler wired to the current process's real
// SIGCHLD/SIGHUP delivery.
func NewRealSignaler() *RealSignaler {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCHLD)
	return &RealSignaler{notifyCh: ch}
}

// BlockSIGCHLDAndSIGHUP blocks SIGCHLD and SIGHUP delivery to this thread,
// per spec §4.4 step 1.
func (s *RealSignaler) BlockSIGCHLDAndSIGHUP() {
	set := blockedSet()
	_ = unix.SigprocMask(unix.SIG_BLOCK, &set, nil)
}

// UnblockSIGCHLDAndSIGHUP unblocks SIGCHLD and SIGHUP, per spec §4.4 step
// 3.
func (s *RealSignaler) UnblockSIGCHLDAndSIGHUP() {
	set := blockedSet()
	_ = unix.SigprocMask(unix.SIG_UNBLOCK, &set, nil)
}

// WaitForSIGCHLD sleeps until a SIGCHLD is delivered (or already pending).
// It does not unblock or re-block SIGCHLD in the signal mask: it drains the
// buffered notification channel, which
// os/signal keeps fed regardless of the process-wide signal mask, giving
// the same "can't miss a delivery between check and sleep" guarantee spec
// §4.4/§5 require without racing on the mask itself.
func (s *RealSignaler) WaitForSIGCHLD() {
	<-s.notifyCh
}

// SignalName returns the bare (no "SIG" prefix) symbolic name for signum,
// e.g. 20 -> "TSTP" on Linux.
func (s *RealSignaler) SignalName(signum int) string {
	return signalName(signum)
}

func blockedSet() unix.Sigset_t {
	var set unix.Sigset_t
	addSignal(&set, unix.SIGCHLD)
	addSignal(&set, unix.SIGHUP)
	return set
}
