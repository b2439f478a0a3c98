package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"prockill/internal/app"
	"prockill/internal/config"
	"prockill/internal/proc"

	"github.com/spf13/cobra"
)

var (
	listMode   bool
	tuiMode    bool
	configPath string
	sourceKind string
	procRoot   string
	noSpinner  bool
	verbose    bool
)

func init() {
	rootCmd.Flags().BoolVar(&listMode, "list", false, "List matches and choose which to terminate by number")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "With --list, choose matches in an interactive picker")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to JSON or YAML config file")
	rootCmd.Flags().StringVar(&sourceKind, "source", "", "Process source: auto, procfs or gopsutil")
	rootCmd.Flags().StringVar(&procRoot, "proc-root", "", "procfs mount point (procfs source only)")
	rootCmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Do not show a spinner while scanning")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped processes and kill errors to stderr")
}

// controllerAPI is the part of app.App the command drives.
type controllerAPI interface {
	Find(ctx context.Context, params app.FindParams) ([]proc.Process, error)
	Kill(params app.KillParams) app.KillResult
}

var controllerFactory = func(cfg config.Config, logger *log.Logger) (controllerAPI, error) {
	src, err := proc.NewSource(cfg.Source, cfg.ProcRoot, logger)
	if err != nil {
		return nil, err
	}
	logger.Printf("using %s process source", cfg.Source)
	return app.New(app.Options{Source: src}), nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	out := cmd.OutOrStdout()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	ctrl, err := controllerFactory(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stop := startSpinner(cmd.ErrOrStderr(), cfg.Spinner)
	matches, err := ctrl.Find(ctx, app.FindParams{Pattern: pattern})
	stop()
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(out, "No processes found with the partial name \"%s\".\n", pattern)
		return nil
	}

	if listMode {
		return runList(cmd, ctrl, matches, logger)
	}
	return runConfirmAll(cmd, ctrl, matches, logger)
}

func runList(cmd *cobra.Command, ctrl controllerAPI, matches []proc.Process, logger *log.Logger) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var numbers []int
	if tuiMode {
		picked, err := pickFunc(matches, cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		numbers = picked
	} else {
		fmt.Fprintln(out, "Found the following processes:")
		for i, p := range matches {
			fmt.Fprintf(out, "%d. %s (PID: %d)\n", i+1, p.Name, p.PID)
		}
		fmt.Fprint(out, "Enter the numbers of the processes you want to terminate (comma-separated): ")

		line, err := app.NewLinePrompt(cmd.InOrStdin()).ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read selection: %w", err)
		}
		sel := app.ParseSelection(line)
		for _, bad := range sel.Invalid {
			fmt.Fprintf(errOut, "Invalid number: %s\n", bad.Token)
		}
		numbers = sel.Numbers
	}

	res := ctrl.Kill(app.KillParams{Matches: matches, Numbers: numbers})
	reportKill(out, errOut, res, logger)
	return nil
}

func runConfirmAll(cmd *cobra.Command, ctrl controllerAPI, matches []proc.Process, logger *log.Logger) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fmt.Fprint(out, "Do you want to terminate all found processes? (y/n): ")
	answer, err := app.NewLinePrompt(cmd.InOrStdin()).ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !app.Confirmed(answer) {
		fmt.Fprintln(out, "No processes were terminated.")
		return nil
	}

	res := ctrl.Kill(app.KillParams{Matches: matches, All: true})
	reportKill(out, errOut, res, logger)
	return nil
}

func reportKill(out, errOut io.Writer, res app.KillResult, logger *log.Logger) {
	for _, event := range res.Events {
		switch event.Kind {
		case app.EventSuccess:
			fmt.Fprintf(out, "Terminated process %s (PID: %d)\n", event.Proc.Name, event.Proc.PID)
		case app.EventKillFailure:
			fmt.Fprintf(errOut, "Failed to terminate process %s (PID: %d)\n", event.Proc.Name, event.Proc.PID)
			logger.Printf("%v", event.Err)
		case app.EventOutOfRange:
			fmt.Fprintf(errOut, "Invalid process number: %d\n", event.Number)
		}
	}
}

// resolveConfig layers flag values over the loaded config.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if sourceKind != "" {
		cfg.Source = sourceKind
	}
	if procRoot != "" {
		cfg.ProcRoot = procRoot
	}
	if noSpinner {
		cfg.Spinner = false
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, enabled bool) *log.Logger {
	if !enabled {
		w = io.Discard
	}
	return log.New(w, "prockill: ", 0)
}
