package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: prockill <partial_process_name> [--list]"

var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:   "prockill <partial_process_name> [--list]",
	Short: "prockill: find processes by name and force-kill them",
	Long: `prockill lists running processes whose name contains the given text and
terminates them with SIGKILL. By default it asks once before killing every
match; with --list it prints the matches and lets you pick by number.

A name that starts with a dash must follow "--", as in: prockill -- -bash`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("prockill: ")

	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode reports err on stderr and returns the process exit status.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usageLine)
	default:
		fmt.Fprintf(stderr, "prockill: %v\n", err)
	}
	return 1
}
