// Package main implements yash, a POSIX-flavored interactive shell.
// This file provides built-in commands, including the job-control builtins
// (jobs, fg, bg, wait, disown) that drive internal/jobcontrol.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unrealapex/yash/internal/jobcontrol"
)

// BuiltinFunc is a function type for built-in commands. args[0] is the
// command name itself, matching argv conventions.
type BuiltinFunc func(s *Shell, args []string) int

// BuiltinCommand represents a built-in command.
type BuiltinCommand struct {
	Name string
	Func BuiltinFunc
	Help string
}

var builtins = []BuiltinCommand{
	{"cd", builtinCd, "Change the current directory"},
	{"pwd", builtinPwd, "Print the current working directory"},
	{"echo", builtinEcho, "Display a line of text"},
	{"export", builtinExport, "Set environment variables"},
	{"set", builtinSet, "Set shell options"},
	{"alias", builtinAlias, "Create an alias"},
	{"unalias", builtinUnalias, "Remove an alias"},
	{"history", builtinHistory, "Display command history"},
	{"jobs", builtinJobs, "List background jobs"},
	{"fg", builtinFg, "Bring a job to the foreground"},
	{"bg", builtinBg, "Resume a job in the background"},
	{"wait", builtinWait, "Wait for a job or all jobs to complete"},
	{"disown", builtinDisown, "Remove a job from the table without waiting for it"},
	{"exit", builtinExit, "Exit the shell"},
	{"help", builtinHelp, "Show this help message"},
}

var builtinMap = make(map[string]*BuiltinCommand)

func init() {
	for i := range builtins {
		builtinMap[builtins[i].Name] = &builtins[i]
	}
}

// GetBuiltin returns the built-in command with the given name.
func GetBuiltin(name string) *BuiltinCommand {
	return builtinMap[name]
}

// IsBuiltin returns true if the command is a built-in.
func IsBuiltin(name string) bool {
	_, ok := builtinMap[name]
	return ok
}

func builtinCd(s *Shell, args []string) int {
	dir := os.Getenv("HOME")
	switch {
	case len(args) > 1 && args[1] == "-":
		dir = os.Getenv("OLDPWD")
		if dir == "" {
			fmt.Fprintln(s.Stderr, "cd: OLDPWD not set")
			return 1
		}
	case len(args) > 1:
		dir = args[1]
	}

	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.Stderr, "cd: %s: %s\n", dir, err)
		return 1
	}
	os.Setenv("OLDPWD", old)
	os.Setenv("PWD", dir)
	return 0
}

func builtinPwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.Stderr, "pwd: %s\n", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, wd)
	return 0
}

func builtinEcho(s *Shell, args []string) int {
	n := false
	start := 1
	for i := 1; i < len(args); i++ {
		if args[i] == "-n" {
			n = true
			start = i + 1
		} else {
			break
		}
	}

	if start < len(args) {
		fmt.Fprint(s.Stdout, strings.Join(args[start:], " "))
	}
	if !n {
		fmt.Fprintln(s.Stdout)
	}
	return 0
}

func builtinExport(s *Shell, args []string) int {
	if len(args) == 1 {
		for _, env := range os.Environ() {
			fmt.Fprintln(s.Stdout, env)
		}
		return 0
	}

	for i := 1; i < len(args); i++ {
		parts := strings.SplitN(args[i], "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(s.Stderr, "export: %s: not a valid assignment\n", args[i])
			return 1
		}
		os.Setenv(parts[0], parts[1])
	}
	return 0
}

func builtinSet(s *Shell, args []string) int {
	if len(args) == 1 {
		fmt.Fprintln(s.Stdout, "set: shell options (not fully implemented)")
		return 0
	}
	for _, arg := range args[1:] {
		switch {
		case strings.HasPrefix(arg, "-o") && arg == "-o posix":
			s.Config.PosixlyCorrect = true
		case arg == "posix":
			s.Config.PosixlyCorrect = true
		}
	}
	return 0
}

func builtinAlias(s *Shell, args []string) int {
	if len(args) == 1 {
		for name, value := range s.Aliases {
			fmt.Fprintf(s.Stdout, "alias %s='%s'\n", name, value)
		}
		return 0
	}

	for i := 1; i < len(args); i++ {
		parts := strings.SplitN(args[i], "=", 2)
		if len(parts) == 2 {
			s.Aliases[parts[0]] = parts[1]
			continue
		}
		if alias, ok := s.Aliases[args[i]]; ok {
			fmt.Fprintf(s.Stdout, "alias %s='%s'\n", args[i], alias)
		} else {
			fmt.Fprintf(s.Stderr, "alias: %s: not found\n", args[i])
		}
	}
	return 0
}

func builtinUnalias(s *Shell, args []string) int {
	if len(args) == 1 {
		fmt.Fprintln(s.Stderr, "unalias: missing operand")
		return 1
	}
	for i := 1; i < len(args); i++ {
		delete(s.Aliases, args[i])
	}
	return 0
}

func builtinHistory(s *Shell, args []string) int {
	if len(args) > 1 && args[1] == "-c" {
		s.History = make([]string, 0)
		if s.Config.HistoryFile != "" {
			os.Remove(s.Config.HistoryFile)
		}
		return 0
	}

	if len(s.History) == 0 && s.Config.HistoryFile != "" {
		if f, err := os.Open(s.Config.HistoryFile); err == nil {
			defer f.Close()
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				s.History = append(s.History, scanner.Text())
			}
		}
	}

	start := 0
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 && n < len(s.History) {
			start = len(s.History) - n
		}
	}
	for i := start; i < len(s.History); i++ {
		fmt.Fprintf(s.Stdout, "%d  %s\n", i+1, s.History[i])
	}
	return 0
}

// builtinJobs implements the `jobs` builtin via jobcontrol.PrintJobStatus.
func builtinJobs(s *Shell, args []string) int {
	verbose := false
	for _, a := range args[1:] {
		if a == "-l" {
			verbose = true
		}
	}
	jobcontrol.PrintJobStatus(s.Table, jobcontrol.All, false, verbose, s.Config.PosixlyCorrect, s.Stdout, s.Signaler.SignalName)
	return 0
}

// builtinFg resumes a job and brings it to the foreground.
func builtinFg(s *Shell, args []string) int {
	spec := ""
	if len(args) > 1 {
		spec = args[1]
	}
	n, err := resolveJobSpec(s, spec)
	if err != nil {
		fmt.Fprintf(s.Stderr, "fg: %s\n", err)
		return 1
	}

	job := s.Table.Get(n)
	fmt.Fprintln(s.Stdout, job.Name())
	if job.State == jobcontrol.JobStopped {
		if err := signalJobGroup(job, syscall.SIGCONT); err != nil {
			fmt.Fprintf(s.Stderr, "fg: %s\n", err)
			return 1
		}
		for _, p := range job.Processes {
			if p.State == jobcontrol.ProcessStopped {
				p.State = jobcontrol.ProcessRunning
			}
		}
		job.RecomputeState()
	}
	s.Table.SetCurrent(n)
	return s.runForeground(n, job)
}

// builtinBg resumes a stopped job in the background.
func builtinBg(s *Shell, args []string) int {
	spec := ""
	if len(args) > 1 {
		spec = args[1]
	}
	n, err := resolveJobSpec(s, spec)
	if err != nil {
		fmt.Fprintf(s.Stderr, "bg: %s\n", err)
		return 1
	}

	job := s.Table.Get(n)
	if job.State != jobcontrol.JobStopped {
		fmt.Fprintf(s.Stderr, "bg: job %d already in background\n", n)
		return 1
	}
	if err := signalJobGroup(job, syscall.SIGCONT); err != nil {
		fmt.Fprintf(s.Stderr, "bg: %s\n", err)
		return 1
	}
	for _, p := range job.Processes {
		if p.State == jobcontrol.ProcessStopped {
			p.State = jobcontrol.ProcessRunning
		}
	}
	job.RecomputeState()
	fmt.Fprintf(s.Stdout, "[%d] %s\n", n, job.Name())
	return 0
}

// builtinWait implements `wait [jobspec]`: with no argument, blocks until
// every tracked job is Done; with one, blocks until that job is.
func builtinWait(s *Shell, args []string) int {
	if len(args) > 1 {
		n, err := resolveJobSpec(s, args[1])
		if err != nil {
			fmt.Fprintf(s.Stderr, "wait: %s\n", err)
			return 127
		}
		job := s.Table.Get(n)
		jobcontrol.WaitForJob(job, false, s.Signaler, s.Reaper.DoWait)
		status := jobcontrol.CalcStatusOfJob(job)
		s.Table.Remove(n)
		return status
	}

	status := 0
	for _, n := range s.Table.NumberedJobs() {
		job := s.Table.Get(n)
		jobcontrol.WaitForJob(job, false, s.Signaler, s.Reaper.DoWait)
		status = jobcontrol.CalcStatusOfJob(job)
		s.Table.Remove(n)
	}
	return status
}

// builtinDisown removes a job from the table without waiting for it,
// leaving its processes to run free of this shell's bookkeeping.
func builtinDisown(s *Shell, args []string) int {
	spec := ""
	if len(args) > 1 {
		spec = args[1]
	}
	n, err := resolveJobSpec(s, spec)
	if err != nil {
		fmt.Fprintf(s.Stderr, "disown: %s\n", err)
		return 1
	}
	s.Table.Remove(n)
	return 0
}

func builtinExit(s *Shell, args []string) int {
	code := s.LastStatus
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			code = n
		}
	}
	os.Exit(code)
	return 0 // unreachable
}

func builtinHelp(s *Shell, args []string) int {
	fmt.Fprintln(s.Stdout, "yash built-in commands:")
	for _, b := range builtins {
		fmt.Fprintf(s.Stdout, "  %-10s %s\n", b.Name, b.Help)
	}
	return 0
}

// resolveJobSpec parses a job specifier (empty meaning current, "%%"/"%+",
// "%-", "%n" job number, "%name" prefix match, or a bare number) into a job
// number.
func resolveJobSpec(s *Shell, spec string) (int, error) {
	if spec == "" || spec == "%%" || spec == "%+" {
		if n := s.Table.Current(); n != 0 {
			return n, nil
		}
		return 0, fmt.Errorf("no current job")
	}
	if spec == "%-" {
		if n := s.Table.Previous(); n != 0 {
			return n, nil
		}
		return 0, fmt.Errorf("no previous job")
	}
	if strings.HasPrefix(spec, "%") {
		name := spec[1:]
		if n, err := strconv.Atoi(name); err == nil {
			if s.Table.Get(n) == nil {
				return 0, fmt.Errorf("no such job: %s", spec)
			}
			return n, nil
		}
		for _, n := range s.Table.NumberedJobs() {
			if job := s.Table.Get(n); job != nil && strings.HasPrefix(job.Name(), name) {
				return n, nil
			}
		}
		return 0, fmt.Errorf("no such job: %s", spec)
	}

	n, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid job specification: %s", spec)
	}
	if s.Table.Get(n) == nil {
		return 0, fmt.Errorf("no such job: %d", n)
	}
	return n, nil
}
