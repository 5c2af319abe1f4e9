package jobcontrol

import "strings"

// JobState is the aggregate three-state lifecycle of a job, derived from
// its member processes per spec invariant I2.
type JobState int

const (
	JobRunning JobState = iota
	JobStopped
	JobDone
)

func (s JobState) String() string {
	switch s {
	case JobRunning:
		return "Running"
	case JobStopped:
		return "Stopped"
	case JobDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Job is an ordered list of process records plus aggregate state.
type Job struct {
	// Processes is the non-empty ordered sequence of process records.
	// Processes[len-1] is the last process; its exit status is the
	// job's exit status.
	Processes []*Process
	// State is the aggregate job state, recomputed by RecomputeState.
	State JobState
	// StatusChanged is a sticky flag set whenever State changes and
	// cleared by the printer.
	StatusChanged bool
	// Loop indicates the pipeline forms a loop (last stage feeds back
	// into the first). Display-only.
	Loop bool
}

// NewJob returns a Job wrapping the given non-empty process list. The
// caller must have already populated PID/name for every forked process.
func NewJob(processes ...*Process) *Job {
	j := &Job{Processes: processes}
	j.RecomputeState()
	return j
}

// RecomputeState derives the aggregate state from member processes
// (spec invariant I2: Running iff any member is Running, else Stopped iff
// any member is Stopped, else Done) and sets StatusChanged if it differs
// from the previous aggregate state.
func (j *Job) RecomputeState() {
	next := deriveAggregateState(j.Processes)
	if next != j.State {
		j.State = next
		j.StatusChanged = true
	}
}

func deriveAggregateState(processes []*Process) JobState {
	anyStopped := false
	for _, p := range processes {
		switch p.State {
		case ProcessRunning:
			return JobRunning
		case ProcessStopped:
			anyStopped = true
		}
	}
	if anyStopped {
		return JobStopped
	}
	return JobDone
}

// LastProcess returns the job's last process, whose exit status is the
// job's reportable exit status.
func (j *Job) LastProcess() *Process {
	if len(j.Processes) == 0 {
		return nil
	}
	return j.Processes[len(j.Processes)-1]
}

// LastStoppedProcess scans from the end for the last Stopped process,
// used by exit-status and status-string computation for Stopped jobs.
func (j *Job) LastStoppedProcess() *Process {
	for i := len(j.Processes) - 1; i >= 0; i-- {
		if j.Processes[i].State == ProcessStopped {
			return j.Processes[i]
		}
	}
	return nil
}

// Name returns the job's display name: a single process's name verbatim,
// or pipeline stage names joined by " | ", prefixed with "| " when the
// job is a loop pipeline.
func (j *Job) Name() string {
	names := make([]string, len(j.Processes))
	for i, p := range j.Processes {
		names[i] = p.Name
	}
	name := strings.Join(names, " | ")
	if j.Loop {
		name = "| " + name
	}
	return name
}
