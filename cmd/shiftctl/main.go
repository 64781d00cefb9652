package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/shiftboard/internal/cli"
)

func main() {
	// Keep stdout for command output
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := cli.RootCmd().Execute(); err != nil {
		code := cli.ExitCode(err)
		if code != cli.ExitIneligible {
			color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(code)
	}
}
