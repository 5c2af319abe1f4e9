package jobcontrol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unrealapex/yash/internal/posixsignal"
)

func TestWaitForJob_ReturnsImmediatelyWhenAlreadyDone(t *testing.T) {
	job := NewJob(&Process{Forked: true, State: ProcessDone})
	signaler := posixsignal.NewFakeSignaler()

	calls := 0
	WaitForJob(job, false, signaler, func() { calls++ })

	require.Equal(t, 0, calls)
}

func TestWaitForJob_LoopsUntilDoWaitMarksJobDone(t *testing.T) {
	p := &Process{Forked: true, State: ProcessRunning}
	job := NewJob(p)
	signaler := posixsignal.NewFakeSignaler()
	signaler.Deliver()
	signaler.Deliver()

	calls := 0
	WaitForJob(job, false, signaler, func() {
		calls++
		if calls == 2 {
			p.State = ProcessDone
			job.RecomputeState()
		}
	})

	require.Equal(t, 2, calls)
	require.Equal(t, JobDone, job.State)
}

func TestWaitForJob_ReturnOnStopStopsAtStoppedState(t *testing.T) {
	p := &Process{Forked: true, State: ProcessRunning}
	job := NewJob(p)
	signaler := posixsignal.NewFakeSignaler()
	signaler.Deliver()

	WaitForJob(job, true, signaler, func() {
		p.State = ProcessStopped
		job.RecomputeState()
	})

	require.Equal(t, JobStopped, job.State)
}

func TestWaitForJob_BlocksSignalsForDurationOfWaitThenUnblocks(t *testing.T) {
	p := &Process{Forked: true, State: ProcessRunning}
	job := NewJob(p)
	signaler := posixsignal.NewFakeSignaler()
	signaler.Deliver()

	var blockedDuringWait bool
	WaitForJob(job, false, signaler, func() {
		blockedDuringWait = signaler.Blocked()
		p.State = ProcessDone
		job.RecomputeState()
	})

	require.True(t, blockedDuringWait)
	require.False(t, signaler.Blocked())
}
