package cli

import (
	"errors"

	"github.com/spf13/cobra"

	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

// Exit codes reported by shiftctl
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitIneligible = 2
)

// RootCmd returns the shiftctl command tree
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shiftctl",
		Short: "Query shift eligibility from the command line",
		Long: `shiftctl resolves which open shifts a worker may claim, reading either
PostgreSQL or a YAML fixture file, and manages the standing cache.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(EligibleCmd())
	rootCmd.AddCommand(CacheCmd())

	return rootCmd
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeIneligible {
		return ExitIneligible
	}
	return ExitFailure
}
