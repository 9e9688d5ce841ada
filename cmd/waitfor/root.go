package main

import (
	"bytes"
	"log"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coder/waitfor"
)

// newRootCmd creates the waitfor command.
func newRootCmd() *cobra.Command {
	w := waitfor.New(waitfor.DefaultTimeout, waitfor.DefaultInterval)
	var verbose bool

	cmd := &cobra.Command{
		Use:   "waitfor [flags] -- command [args...]",
		Short: "Run a command until it succeeds",
		Long: "waitfor runs the command every --interval until it exits 0.\n" +
			"If it is still failing once --timeout has passed, waitfor prints the\n" +
			"last failure and exits 1.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				w.Logf = log.New(cmd.ErrOrStderr(), "", log.LstdFlags).Printf
			}
			return w.Wait(cmd.Context(), commandExpectation(args[0], args[1:]))
		},
	}

	// Flags after the command name belong to the command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().DurationVar(&w.Timeout, "timeout", w.Timeout, "give up once this much time has passed and the command still fails")
	cmd.Flags().DurationVar(&w.Interval, "interval", w.Interval, "delay between runs")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every failed run")

	return cmd
}

// commandExpectation runs name with args and fails unless it exits 0.
func commandExpectation(name string, args []string) waitfor.Expectation {
	return func() error {
		var out bytes.Buffer
		c := exec.Command(name, args...)
		c.Stdout = &out
		c.Stderr = &out
		if err := c.Run(); err != nil {
			msg := strings.TrimSpace(out.String())
			if msg == "" {
				return errors.Wrapf(err, "%s", name)
			}
			return errors.Wrapf(err, "%s: %s", name, msg)
		}
		return nil
	}
}
