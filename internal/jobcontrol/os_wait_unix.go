//go:build unix

package jobcontrol

import (
	"golang.org/x/sys/unix"
)

// unixWaitStatus adapts golang.org/x/sys/unix.WaitStatus to the WaitStatus
// interface so the rest of the core never imports unix directly.
type unixWaitStatus struct {
	ws unix.WaitStatus
}

func (u unixWaitStatus) Exited() bool    { return u.ws.Exited() }
func (u unixWaitStatus) Signaled() bool  { return u.ws.Signaled() }
func (u unixWaitStatus) Stopped() bool   { return u.ws.Stopped() }
func (u unixWaitStatus) Continued() bool { return u.ws.Continued() }
func (u unixWaitStatus) ExitStatus() int { return u.ws.ExitStatus() }
func (u unixWaitStatus) Signal() int     { return int(u.ws.Signal()) }
func (u unixWaitStatus) StopSignal() int { return int(u.ws.StopSignal()) }
func (u unixWaitStatus) CoreDump() bool  { return u.ws.CoreDump() }

// UnixWaiter implements OSWaiter against the real kernel via
// golang.org/x/sys/unix.Wait4, the same WUNTRACED|WNOHANG[|WCONTINUED]
// contract described in spec §4.3/§6.
type UnixWaiter struct{}

// Wait4 performs one non-blocking waitpid(-1, ...) call.
func (UnixWaiter) Wait4(continued bool) (int, WaitStatus, error) {
	flags := unix.WUNTRACED | unix.WNOHANG
	if continued {
		flags |= unix.WCONTINUED
	}

	var ws unix.WaitStatus
	pid, err := unix.Wait4(-1, &ws, flags, nil)
	if err != nil {
		return 0, nil, classifyWaitError(err)
	}
	if pid == 0 {
		return 0, nil, nil
	}
	return pid, unixWaitStatus{ws: ws}, nil
}

func classifyWaitError(err error) error {
	switch err {
	case unix.EINTR:
		return ErrInterrupted
	case unix.ECHILD:
		return ErrNoChildren
	case unix.EINVAL:
		return ErrInvalidArgument
	default:
		return err
	}
}
