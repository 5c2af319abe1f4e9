// Package main implements yash, a POSIX-flavored interactive shell.
// This file bridges started *exec.Cmd processes into the job-control core.
package main

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/unrealapex/yash/internal/jobcontrol"
)

// publishJob starts every command in cmds (already pipe-connected by
// connectPipeline), registers the resulting job in the shell's table, and
// returns its job number along with the jobcontrol.Job itself.
func (s *Shell) publishJob(cmds []*exec.Cmd, name string) (int, *jobcontrol.Job, error) {
	markProcessGroupLeader(cmds[0])
	if err := cmds[0].Start(); err != nil {
		return 0, nil, fmt.Errorf("%s: %w", name, err)
	}
	pgid := cmds[0].Process.Pid

	for _, cmd := range cmds[1:] {
		joinProcessGroup(cmd, pgid)
		if err := cmd.Start(); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	closePipeEnds(cmds)

	processes := make([]*jobcontrol.Process, len(cmds))
	for i, cmd := range cmds {
		processes[i] = jobcontrol.NewForkedProcess(cmd.Process.Pid, cmd.Args[0])
	}

	job := jobcontrol.NewJob(processes...)
	s.Table.SetActive(job)
	n := s.Table.AddJob(true)
	return n, job, nil
}

// runForeground waits for job to finish or stop, announcing a stop the way
// an interactive shell reports one, and returns the job's reportable exit
// status (spec.md §4.5/§7).
func (s *Shell) runForeground(n int, job *jobcontrol.Job) int {
	jobcontrol.WaitForJob(job, true, s.Signaler, s.Reaper.DoWait)

	status := jobcontrol.CalcStatusOfJob(job)
	if job.State == jobcontrol.JobStopped {
		fmt.Fprintf(s.Stdout, "[%d]+  %s\n", n, jobcontrol.FormatJob(job, s.Signaler.SignalName))
		return status
	}
	s.Table.Remove(n)
	return status
}

// announceBackground prints the POSIX "[n] pid" line `&` produces and
// leaves the job in the table for the reaper/`jobs`/`wait` to observe.
func (s *Shell) announceBackground(n int, job *jobcontrol.Job) {
	fmt.Fprintf(s.Stdout, "[%d] %d\n", n, job.Processes[0].PID)
}

// signalJobGroup sends sig to every process in the job's process group,
// using the group leader's PID as -pgid (the leader is always
// Processes[0] since markProcessGroupLeader makes it the group's founder).
func signalJobGroup(job *jobcontrol.Job, sig syscall.Signal) error {
	if len(job.Processes) == 0 || !job.Processes[0].Forked {
		return fmt.Errorf("job has no process group")
	}
	return syscall.Kill(-job.Processes[0].PID, sig)
}
