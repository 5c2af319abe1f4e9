package jobcontrol

import "errors"

// Sentinel wait-syscall classifications, matching spec §4.3's branches on
// the underlying waitpid's errno. OSWaiter implementations translate the
// platform's actual error into one of these (or leave err as some other
// error, which the reaper logs and treats as the drain's terminal error).
var (
	// ErrInterrupted corresponds to EINTR: the reaper retries.
	ErrInterrupted = errors.New("jobcontrol: wait interrupted")
	// ErrNoChildren corresponds to ECHILD: the reaper's drain ends.
	ErrNoChildren = errors.New("jobcontrol: no child processes")
	// ErrInvalidArgument corresponds to EINVAL, which on some platforms
	// means WCONTINUED was requested but rejected at runtime even
	// though it is defined at compile time. The reaper drops WCONTINUED
	// permanently and retries (spec §4.3 step e).
	ErrInvalidArgument = errors.New("jobcontrol: invalid wait argument")
)
