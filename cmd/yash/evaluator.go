// Package main implements yash, a POSIX-flavored interactive shell.
// This file provides command evaluation: turning a parsed list of
// pipelines into started processes and jobs.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/unrealapex/yash/pkg/parser"
)

// EvalResult represents the result of command evaluation.
type EvalResult struct {
	Status int
}

// Evaluator evaluates shell commands against a Shell's job table and
// environment.
type Evaluator struct {
	shell *Shell
	Env   map[string]string
}

// NewEvaluator creates an Evaluator bound to shell.
func NewEvaluator(shell *Shell) *Evaluator {
	return &Evaluator{shell: shell, Env: make(map[string]string)}
}

// GetEnv gets an environment variable, checking the evaluator's overlay
// first and falling back to the process environment.
func (e *Evaluator) GetEnv(key string) string {
	if val, ok := e.Env[key]; ok {
		return val
	}
	return os.Getenv(key)
}

// Eval evaluates a parsed command list.
func (e *Evaluator) Eval(list *parser.ListNode) (*EvalResult, error) {
	return e.evalList(list)
}

func (e *Evaluator) evalList(list *parser.ListNode) (*EvalResult, error) {
	result := &EvalResult{Status: 0}
	for i, pipeline := range list.Elements {
		background := i < len(list.Sep) && list.Sep[i] == parser.TokenBackground

		var err error
		result, err = e.evalPipeline(pipeline, background)
		if err != nil {
			return result, err
		}

		if pipeline.And && result.Status != 0 {
			return result, nil
		}
		if pipeline.Or && result.Status == 0 {
			return result, nil
		}
	}
	return result, nil
}

func (e *Evaluator) evalPipeline(pipeline *parser.PipelineNode, background bool) (*EvalResult, error) {
	if len(pipeline.Commands) == 0 {
		return &EvalResult{Status: 0}, nil
	}

	if len(pipeline.Commands) == 1 {
		if builtin := GetBuiltin(pipeline.Commands[0].Name); builtin != nil {
			return e.evalBuiltin(builtin, pipeline.Commands[0])
		}
	}

	cmds := make([]*exec.Cmd, len(pipeline.Commands))
	for i, cmd := range pipeline.Commands {
		cmds[i] = e.buildCommand(cmd)
	}
	if err := connectPipeline(cmds); err != nil {
		return &EvalResult{Status: 1}, err
	}

	name := pipeline.String()
	n, job, err := e.shell.publishJob(cmds, name)
	if err != nil {
		fmt.Fprintf(e.shell.Stderr, "yash: %s\n", err)
		return &EvalResult{Status: 127}, nil
	}

	if background {
		e.shell.announceBackground(n, job)
		return &EvalResult{Status: 0}, nil
	}
	return &EvalResult{Status: e.shell.runForeground(n, job)}, nil
}

// buildCommand builds an exec.Cmd from a CommandNode, with variables
// expanded and stdio inherited from the shell by default (pipeline stages
// overwrite Stdin/Stdout via connectPipeline).
func (e *Evaluator) buildCommand(cmd *parser.CommandNode) *exec.Cmd {
	args := make([]string, 0, len(cmd.Args)+1)
	args = append(args, cmd.Name)
	for _, arg := range cmd.Args {
		args = append(args, e.expandVariable(arg))
	}

	execCmd := exec.Command(args[0], args[1:]...)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	execCmd.Dir = e.GetEnv("PWD")

	env := os.Environ()
	for k, v := range e.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	execCmd.Env = env

	return execCmd
}

func (e *Evaluator) evalBuiltin(builtin *BuiltinCommand, cmd *parser.CommandNode) (*EvalResult, error) {
	args := append([]string{cmd.Name}, e.ExpandVariables(cmd.Args)...)
	status := builtin.Func(e.shell, args)
	return &EvalResult{Status: status}, nil
}

// expandVariable expands environment variables in a string.
func (e *Evaluator) expandVariable(s string) string {
	result := make([]byte, 0, len(s))
	i := 0

	for i < len(s) {
		if s[i] == '$' && i+1 < len(s) {
			switch s[i+1] {
			case '$':
				result = append(result, '$')
				i += 2
			case '?':
				result = append(result, []byte(fmt.Sprintf("%d", e.shell.LastStatus))...)
				i += 2
			case '{':
				end := strings.Index(s[i+2:], "}")
				if end == -1 {
					result = append(result, s[i:]...)
					return string(result)
				}
				varName := s[i+2 : i+2+end]
				if val := e.GetEnv(varName); val != "" {
					result = append(result, val...)
				}
				i += 2 + end + 1
			default:
				start := i + 1
				for start < len(s) && (s[start] == '_' || (s[start] >= 'a' && s[start] <= 'z') ||
					(s[start] >= 'A' && s[start] <= 'Z') || (s[start] >= '0' && s[start] <= '9')) {
					start++
				}
				varName := s[i+1 : start]
				if val := e.GetEnv(varName); val != "" {
					result = append(result, val...)
				}
				i = start
			}
		} else {
			result = append(result, s[i])
			i++
		}
	}

	return string(result)
}

// ExpandVariables expands all variables in a slice of strings.
func (e *Evaluator) ExpandVariables(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = e.expandVariable(arg)
	}
	return result
}
