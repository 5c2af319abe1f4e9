package jobcontrol

import (
	"fmt"
	"io"
)

// PrintJobStatus prints the job(s) named by selector (a specific job number
// or All) to sink, in the POSIX-mandated format of spec §4.7/§6. It is the
// sole collector of completed jobs: after a Done job is printed, it is
// removed from the table, which is what lets `wait`/"$?" observe
// completion before the job disappears.
//
// changedOnly restricts output to jobs whose StatusChanged flag is set
// (used by the shell's between-prompt notification pass). verbose selects
// the process-wise format; posixlyCorrect, meaningful only in verbose mode,
// suppresses the per-process status string on continuation lines while
// still reserving its column width.
func PrintJobStatus(t *Table, selector int, changedOnly, verbose, posixlyCorrect bool, sink io.Writer, signalName SignalNamer) {
	if selector == All {
		for n := 1; n < t.Len(); n++ {
			printOne(t, n, changedOnly, verbose, posixlyCorrect, sink, signalName)
		}
		return
	}
	printOne(t, selector, changedOnly, verbose, posixlyCorrect, sink, signalName)
}

func printOne(t *Table, n int, changedOnly, verbose, posixlyCorrect bool, sink io.Writer, signalName SignalNamer) {
	job := t.Get(n)
	if job == nil {
		return
	}
	if changedOnly && !job.StatusChanged {
		return
	}

	marker := currentMarker(t, n)
	if verbose {
		printVerbose(n, marker, job, posixlyCorrect, sink, signalName)
	} else {
		fmt.Fprintf(sink, "[%d] %c %-20s %s\n", n, marker, FormatJob(job, signalName), job.Name())
	}

	job.StatusChanged = false
	if job.State == JobDone {
		t.Remove(n)
	}
}

func currentMarker(t *Table, n int) byte {
	switch n {
	case t.Current():
		return '+'
	case t.Previous():
		return '-'
	default:
		return ' '
	}
}

func printVerbose(n int, marker byte, job *Job, posixlyCorrect bool, sink io.Writer, signalName SignalNamer) {
	pipeMark := byte(' ')
	if len(job.Processes) > 1 {
		pipeMark = '|'
	}

	first := job.Processes[0]
	fmt.Fprintf(sink, "[%d] %c %5d %-20s %c %s\n",
		n, marker, first.PID, FormatProcess(first, signalName), pipeMark, first.Name)

	for _, p := range job.Processes[1:] {
		status := FormatProcess(p, signalName)
		if posixlyCorrect {
			status = ""
		}
		fmt.Fprintf(sink, "      %5d %-20s | %s\n", p.PID, status, p.Name)
	}
}
