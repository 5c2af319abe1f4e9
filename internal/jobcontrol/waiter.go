package jobcontrol

import "github.com/unrealapex/yash/internal/posixsignal"

// WaitForJob suspends the caller until job reaches Done, or — if
// returnOnStop is true — Done or Stopped. It returns immediately if job is
// already in the target state. doWait is invoked inside the loop so that a
// SIGCHLD delivered while this goroutine sleeps is reaped promptly; callers
// typically pass the same Reaper.DoWait bound to the table being waited on.
//
// This implements the race-free protocol of spec §4.4: SIGCHLD and SIGHUP
// are blocked for the duration of the check-then-sleep loop, and the sleep
// primitive atomically unblocks SIGCHLD while sleeping so no wakeup between
// the state check and the sleep call is lost.
func WaitForJob(job *Job, returnOnStop bool, signaler posixsignal.Signaler, doWait func()) {
	signaler.BlockSIGCHLDAndSIGHUP()
	defer signaler.UnblockSIGCHLDAndSIGHUP()

	for !reachedTarget(job, returnOnStop) {
		signaler.WaitForSIGCHLD()
		doWait()
	}
}

func reachedTarget(job *Job, returnOnStop bool) bool {
	if job.State == JobDone {
		return true
	}
	return returnOnStop && job.State == JobStopped
}
