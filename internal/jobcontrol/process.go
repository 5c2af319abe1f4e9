// Package jobcontrol implements the job-control core of the yash shell: it
// tracks asynchronously executing pipelines, reconciles their state with the
// operating system via non-blocking child-status reaping, maintains the
// POSIX notion of a current and previous job, and renders job status in the
// format required by the jobs/fg/bg/wait builtins.
//
// The parser, the executor that forks processes, and terminal
// foreground-group management are external collaborators; this package only
// consumes them through the interfaces described in its exported API.
package jobcontrol

// ProcessState is the three-state lifecycle of a single process within a
// job.
type ProcessState int

const (
	// ProcessRunning means the process is executing or has never been
	// reaped into a terminal state.
	ProcessRunning ProcessState = iota
	// ProcessStopped means the process was stopped by a signal (e.g.
	// SIGTSTP) and has not since continued or exited.
	ProcessStopped
	// ProcessDone means the process exited or was terminated by a signal.
	ProcessDone
)

func (s ProcessState) String() string {
	switch s {
	case ProcessRunning:
		return "Running"
	case ProcessStopped:
		return "Stopped"
	case ProcessDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Process is a snapshot of one child within a job.
type Process struct {
	// PID is the OS process identifier. Only meaningful when Forked is
	// true.
	PID int
	// Forked is false when this process never actually forked (a
	// subshell-absorbed command whose status was computed in-shell and
	// stored directly in RawStatus). Keeping this as its own field keeps
	// the "never forked" sentinel distinct from the wait syscall's own
	// pid == 0 ("no pending event") return value.
	Forked bool
	// RawStatus is the last integer wait status observed for this
	// process (or, if !Forked, the status computed directly). It is kept
	// as an opaque WaitStatus and decoded at the boundary, since the
	// core-dump flag and signal number are only recoverable from the raw
	// encoding.
	RawStatus WaitStatus
	// State is the process's derived three-state lifecycle position.
	State ProcessState
	// Name is the process's display string (e.g. "grep foo").
	Name string
}

// NewForkedProcess returns a Process for a child that has actually been
// forked and is currently running.
func NewForkedProcess(pid int, name string) *Process {
	return &Process{
		PID:    pid,
		Forked: true,
		State:  ProcessRunning,
		Name:   name,
	}
}

// NewAbsorbedProcess returns a Process for a pipeline stage that never
// forked (e.g. a builtin run in a subshell position) and whose status is
// already known.
func NewAbsorbedProcess(status WaitStatus, name string) *Process {
	p := &Process{
		Forked:    false,
		RawStatus: status,
		Name:      name,
	}
	p.State = ProcessDone
	return p
}

// ApplyWaitStatus updates the process's raw status and derived state from a
// freshly observed OS wait status. It implements spec §4.3 step 2.
func (p *Process) ApplyWaitStatus(status WaitStatus) {
	p.RawStatus = status
	switch {
	case status.Exited(), status.Signaled():
		p.State = ProcessDone
	case status.Stopped():
		p.State = ProcessStopped
	case status.Continued():
		p.State = ProcessRunning
	}
}
