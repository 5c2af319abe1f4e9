// yash is a POSIX-flavored interactive shell with job control.
//
// Usage:
//
//	yash [flags] [command_file]
//
// Flags:
//
//	-c, --command string   Execute command and exit
//	    --config string     Path to a YAML configuration file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unrealapex/yash/internal/yashconfig"
)

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yash: %s\n", err)
		os.Exit(1)
	}
}

func buildRootCommand() *cobra.Command {
	var command string
	var configPath string

	root := &cobra.Command{
		Use:     "yash [command_file]",
		Short:   "yash: a POSIX-flavored shell with job control",
		Version: "1.0.0",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := yashconfig.Load(configPath)
			if err != nil {
				return err
			}
			shell := NewShell(cfg)

			if command != "" {
				status, err := shell.ExecuteString(command)
				os.Exit(status)
				return err
			}

			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				defer f.Close()
				shell.Stdin = f
				shell.Interactive = false
			}

			return shell.Run()
		},
	}

	root.Flags().StringVarP(&command, "command", "c", "", "execute command and exit")
	root.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")

	return root
}
