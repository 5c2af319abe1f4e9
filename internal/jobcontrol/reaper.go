package jobcontrol

import (
	"errors"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
)

// OSWaiter performs one non-blocking waitpid-equivalent call. Wait4 should
// request WUNTRACED|WNOHANG, plus WCONTINUED when continued is true.
//
// Its three return shapes match spec §4.3 step 1:
//   - pid == 0, err == nil: no more pending events right now.
//   - pid > 0, err == nil: a child changed state; status describes it.
//   - err != nil: one of ErrInterrupted, ErrNoChildren, ErrInvalidArgument,
//     or some other error to be logged and treated as fatal to this drain.
type OSWaiter interface {
	Wait4(continued bool) (pid int, status WaitStatus, err error)
}

// Reaper drains pending child-status events into a Table, implementing
// do_wait (spec §4.3). It is safe to invoke eagerly at any callable-safe
// point (spec §5) because it relies entirely on WNOHANG and never blocks.
type Reaper struct {
	Table  *Table
	Waiter OSWaiter
	Logger *slog.Logger

	continuedSupported bool
}

// NewReaper returns a Reaper that initially assumes the platform's
// WCONTINUED works, dropping it permanently the first time the OS rejects
// it with EINVAL.
func NewReaper(table *Table, waiter OSWaiter, logger *slog.Logger) *Reaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{
		Table:              table,
		Waiter:             waiter,
		Logger:             logger,
		continuedSupported: true,
	}
}

// DoWait drains every currently-pending child event and returns. It never
// blocks the caller on a live child (spec §4.3).
func (r *Reaper) DoWait() {
	for {
		pid, status, err := r.Waiter.Wait4(r.continuedSupported)
		switch {
		case err == nil && pid == 0:
			return
		case errors.Is(err, ErrInterrupted):
			continue
		case errors.Is(err, ErrNoChildren):
			return
		case errors.Is(err, ErrInvalidArgument) && r.continuedSupported:
			r.continuedSupported = false
			continue
		case err != nil:
			r.Logger.Error("waitpid failed",
				"error", pkgerrors.Wrap(err, "do_wait"))
			return
		}

		r.applyEvent(pid, status)
	}
}

func (r *Reaper) applyEvent(pid int, status WaitStatus) {
	job, proc := r.Table.FindProcess(pid)
	if job == nil {
		// No job claims this pid (e.g. it was disowned). Expected and
		// silently ignored per spec §4.3 step g.
		return
	}
	proc.ApplyWaitStatus(status)
	job.RecomputeState()
}
