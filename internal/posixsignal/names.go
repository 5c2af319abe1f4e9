package posixsignal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// signalNames maps the POSIX signal numbers a shell's job control actually
// needs to report (stop/continue/terminate signals and the common
// fatal/core-dumping ones) to their bare symbolic name.
var signalNames = map[int]string{
	int(unix.SIGHUP):  "HUP",
	int(unix.SIGINT):  "INT",
	int(unix.SIGQUIT): "QUIT",
	int(unix.SIGILL):  "ILL",
	int(unix.SIGTRAP): "TRAP",
	int(unix.SIGABRT): "ABRT",
	int(unix.SIGBUS):  "BUS",
	int(unix.SIGFPE):  "FPE",
	int(unix.SIGKILL): "KILL",
	int(unix.SIGUSR1): "USR1",
	int(unix.SIGSEGV): "SEGV",
	int(unix.SIGUSR2): "USR2",
	int(unix.SIGPIPE): "PIPE",
	int(unix.SIGALRM): "ALRM",
	int(unix.SIGTERM): "TERM",
	int(unix.SIGCHLD): "CHLD",
	int(unix.SIGCONT): "CONT",
	int(unix.SIGSTOP): "STOP",
	int(unix.SIGTSTP): "TSTP",
	int(unix.SIGTTIN): "TTIN",
	int(unix.SIGTTOU): "TTOU",
}

// signalName returns the bare symbolic name for signum, or "signum" if it
// is not one of the signals job control reports.
func signalName(signum int) string {
	if name, ok := signalNames[signum]; ok {
		return name
	}
	return fmt.Sprintf("%d", signum)
}
