package jobcontrol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func nameSig(signum int) string {
	return fmt.Sprintf("SIG%d", signum)
}

func TestFormatProcess_Running(t *testing.T) {
	p := &Process{State: ProcessRunning}
	require.Equal(t, "Running", FormatProcess(p, nameSig))
}

func TestFormatProcess_Stopped(t *testing.T) {
	p := NewForkedProcess(1, "vim")
	p.ApplyWaitStatus(SimpleStatus{Kind: StatusStopped, Code: 19})

	require.Equal(t, "Stopped(SIGSIG19)", FormatProcess(p, nameSig))
}

func TestFormatProcess_DoneZeroExit(t *testing.T) {
	p := NewForkedProcess(1, "true")
	p.ApplyWaitStatus(SimpleStatus{Kind: StatusExited, Code: 0})

	require.Equal(t, "Done", FormatProcess(p, nameSig))
}

func TestFormatProcess_DoneNonzeroExit(t *testing.T) {
	p := NewForkedProcess(1, "false")
	p.ApplyWaitStatus(SimpleStatus{Kind: StatusExited, Code: 1})

	require.Equal(t, "Done(1)", FormatProcess(p, nameSig))
}

func TestFormatProcess_KilledBySignal(t *testing.T) {
	p := NewForkedProcess(1, "sleep")
	p.ApplyWaitStatus(SimpleStatus{Kind: StatusSignaled, Code: 9})

	require.Equal(t, "Killed (SIGSIG9)", FormatProcess(p, nameSig))
}

func TestFormatProcess_KilledBySignalWithCoreDump(t *testing.T) {
	p := NewForkedProcess(1, "prog")
	p.ApplyWaitStatus(SimpleStatus{Kind: StatusSignaled, Code: 11, HasCore: true})

	require.Equal(t, "Killed (SIGSIG11: core dumped)", FormatProcess(p, nameSig))
}

func TestFormatJob_RunningIgnoresProcessDetail(t *testing.T) {
	job := NewJob(&Process{State: ProcessRunning})
	require.Equal(t, "Running", FormatJob(job, nameSig))
}

func TestFormatJob_StoppedUsesLastStoppedProcess(t *testing.T) {
	p1 := NewForkedProcess(1, "a")
	p1.ApplyWaitStatus(SimpleStatus{Kind: StatusStopped, Code: 19})
	job := NewJob(p1)

	require.Equal(t, "Stopped(SIGSIG19)", FormatJob(job, nameSig))
}

func TestFormatJob_DoneUsesLastProcess(t *testing.T) {
	p1 := NewForkedProcess(1, "a")
	p1.ApplyWaitStatus(SimpleStatus{Kind: StatusExited, Code: 0})
	p2 := NewForkedProcess(2, "b")
	p2.ApplyWaitStatus(SimpleStatus{Kind: StatusExited, Code: 3})
	job := NewJob(p1, p2)

	require.Equal(t, "Done(3)", FormatJob(job, nameSig))
}
