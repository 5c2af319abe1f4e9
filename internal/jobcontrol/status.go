package jobcontrol

// TermSigOffset is the shell convention added to a signal number when
// expressing it as an exit status, chosen so that signal-derived statuses
// (384-511) are distinguishable from exit codes (0-255).
const TermSigOffset = 384

// CalcStatusOfJob computes the reportable exit status for a Done job, or
// the pseudo-status for a Stopped job (used by "$?" after `bg`/`fg` report
// a stop). Calling it for a Running job is a programming error and panics,
// per spec §4.5 and §7 — the aggregate-state invariant (I2) guarantees a
// Running job has at least one Running process, for which no exit status
// exists yet.
func CalcStatusOfJob(j *Job) int {
	switch j.State {
	case JobDone:
		return calcDoneStatus(j)
	case JobStopped:
		return calcStoppedStatus(j)
	default:
		panic("jobcontrol: CalcStatusOfJob called on a Running job")
	}
}

func calcDoneStatus(j *Job) int {
	last := j.LastProcess()
	if !last.Forked {
		return last.RawStatus.ExitStatus()
	}
	switch {
	case last.RawStatus.Exited():
		return last.RawStatus.ExitStatus() & 0xFF
	case last.RawStatus.Signaled():
		return last.RawStatus.Signal() + TermSigOffset
	default:
		// Unreachable given I2/§3: a Done process is always either
		// exited or signalled. Defensive fallback rather than a
		// release-mode panic, per spec §9's assert(false) guidance.
		return 0
	}
}

func calcStoppedStatus(j *Job) int {
	last := j.LastStoppedProcess()
	if last == nil {
		// Unreachable: JobStopped implies at least one Stopped
		// process (I2).
		return 0
	}
	return last.RawStatus.StopSignal() + TermSigOffset
}
