// Package main implements yash, a POSIX-flavored interactive shell built
// around an internal/jobcontrol job table.
// This file provides the main shell loop and interface.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/unrealapex/yash/internal/jobcontrol"
	"github.com/unrealapex/yash/internal/posixsignal"
	"github.com/unrealapex/yash/internal/yashconfig"
	"github.com/unrealapex/yash/pkg/parser"
)

// Shell represents the interactive shell.
type Shell struct {
	Prompt      string
	Config      *yashconfig.Config
	Eval        *Evaluator
	Table       *jobcontrol.Table
	Reaper      *jobcontrol.Reaper
	Signaler    posixsignal.Signaler
	Aliases     map[string]string
	History     []string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
	LastStatus  int
}

// NewShell creates a new Shell instance wired with cfg.
func NewShell(cfg *yashconfig.Config) *Shell {
	table := jobcontrol.NewTable()
	s := &Shell{
		Prompt:      cfg.Prompt,
		Config:      cfg,
		Table:       table,
		Reaper:      jobcontrol.NewReaper(table, jobcontrol.UnixWaiter{}, slog.Default()),
		Signaler:    posixsignal.NewRealSignaler(),
		Aliases:     make(map[string]string),
		History:     make([]string, 0),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isInteractive(),
	}
	s.Eval = NewEvaluator(s)
	return s
}

// isInteractive checks if stdin is a terminal.
func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// Run starts the shell and runs the main loop.
func (s *Shell) Run() error {
	if !s.Interactive {
		return s.runNonInteractive()
	}

	scanner := bufio.NewScanner(s.Stdin)
	for {
		// Reap eagerly before every prompt so `jobs` and the notification
		// pass below always see up-to-date state (spec.md §5: do_wait is
		// safe and expected at any callable-safe point).
		s.Reaper.DoWait()
		s.notifyChangedJobs()

		fmt.Fprint(s.Stdout, s.Prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			break // EOF
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.recordHistory(line)

		if err := s.execute(line); err != nil {
			fmt.Fprintf(s.Stderr, "yash: %s\n", err)
		}
	}

	return nil
}

// runNonInteractive executes commands from stdin.
func (s *Shell) runNonInteractive() error {
	scanner := bufio.NewScanner(s.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := s.execute(line); err != nil {
			fmt.Fprintf(s.Stderr, "yash: %s\n", err)
			return err
		}
	}
	return nil
}

// notifyChangedJobs prints any job whose status changed since it was last
// reported, per the jobs-builtin-adjacent "async notification" behavior.
func (s *Shell) notifyChangedJobs() {
	jobcontrol.PrintJobStatus(s.Table, jobcontrol.All, true, false, s.Config.PosixlyCorrect, s.Stdout, s.Signaler.SignalName)
}

// execute parses and executes a command line.
func (s *Shell) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if alias, ok := s.Aliases[fields[0]]; ok {
		line = alias + " " + strings.TrimPrefix(line, fields[0])
	}

	p := parser.NewParser(line)
	list, err := p.Parse()
	if err != nil {
		return err
	}

	result, err := s.Eval.Eval(list)
	if err != nil {
		return err
	}

	s.LastStatus = result.Status
	os.Setenv("?", fmt.Sprintf("%d", result.Status))
	return nil
}

// ExecuteString executes a command string and returns the result, for
// non-interactive `-c` invocation.
func (s *Shell) ExecuteString(cmd string) (int, error) {
	if err := s.execute(cmd); err != nil {
		return 1, err
	}
	return s.LastStatus, nil
}

// recordHistory appends cmd to in-memory history and the history file.
func (s *Shell) recordHistory(cmd string) {
	s.History = append(s.History, cmd)

	path := s.Config.HistoryFile
	if path == "" {
		return
	}
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		fmt.Fprintln(f, cmd)
		f.Close()
	}
}
