// Package main implements yash, a POSIX-flavored interactive shell.
// This file connects a pipeline's commands with pipes and process groups.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// connectPipeline wires stdout->stdin pipes between consecutive commands,
// leaving a single command's stdio untouched.
func connectPipeline(cmds []*exec.Cmd) error {
	for i := 0; i < len(cmds)-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			return fmt.Errorf("failed to create pipe: %w", err)
		}
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
	}
	return nil
}

// markProcessGroupLeader flags cmd to found a new process group (its pgid
// becomes its own pid once started), so SIGCONT/SIGSTOP/SIGTERM delivered
// with a negative PID reach every stage at once (spec.md §10 supplemented
// feature: the core's Non-goals exclude terminal foreground-group
// *management*, not the executor's group *creation*).
func markProcessGroupLeader(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// joinProcessGroup flags cmd to join the already-running pgid, so every
// stage of a pipeline shares one process group.
func joinProcessGroup(cmd *exec.Cmd, pgid int) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
	cmd.SysProcAttr.Pgid = pgid
}

// closePipeEnds closes the parent's copies of the write/read pipe ends
// connecting consecutive commands, once every command has started.
func closePipeEnds(cmds []*exec.Cmd) {
	for i := 0; i < len(cmds)-1; i++ {
		if w, ok := cmds[i].Stdout.(*os.File); ok {
			w.Close()
		}
		if r, ok := cmds[i+1].Stdin.(*os.File); ok {
			r.Close()
		}
	}
}
