package jobcontrol

import "fmt"

// SignalNamer maps a signal number to its bare symbolic name, without the
// "SIG" prefix (e.g. 20 -> "TSTP" on Linux) — callers format it as
// "SIG<name>" per spec §4.6, the way the signal subsystem's signal_name
// does.
type SignalNamer func(signum int) string

// FormatProcess renders a single process's status string per the table in
// spec §4.6.
func FormatProcess(p *Process, signalName SignalNamer) string {
	switch p.State {
	case ProcessRunning:
		return "Running"
	case ProcessStopped:
		return fmt.Sprintf("Stopped(SIG%s)", signalName(p.RawStatus.StopSignal()))
	case ProcessDone:
		return formatDoneProcess(p, signalName)
	default:
		return "Unknown"
	}
}

func formatDoneProcess(p *Process, signalName SignalNamer) string {
	if !p.Forked || p.RawStatus.Exited() {
		code := p.RawStatus.ExitStatus()
		if code == 0 {
			return "Done"
		}
		return fmt.Sprintf("Done(%d)", code)
	}
	if p.RawStatus.Signaled() {
		name := signalName(p.RawStatus.Signal())
		if p.RawStatus.CoreDump() {
			return fmt.Sprintf("Killed (SIG%s: core dumped)", name)
		}
		return fmt.Sprintf("Killed (SIG%s)", name)
	}
	return "Done"
}

// FormatJob renders a job's status string: Running -> "Running"; Stopped ->
// the string of the last Stopped process; Done -> the string of the last
// process.
func FormatJob(j *Job, signalName SignalNamer) string {
	switch j.State {
	case JobRunning:
		return "Running"
	case JobStopped:
		if last := j.LastStoppedProcess(); last != nil {
			return FormatProcess(last, signalName)
		}
		return "Stopped"
	case JobDone:
		if last := j.LastProcess(); last != nil {
			return FormatProcess(last, signalName)
		}
		return "Done"
	default:
		return "Unknown"
	}
}
