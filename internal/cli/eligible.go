package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zatekoja/shiftboard/internal/adapters/database"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/application/services"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/shiftboard/pkg/config"
)

// EligibleCmd returns the eligible command
func EligibleCmd() *cobra.Command {
	var (
		workerFlag   string
		facilityFlag string
		startFlag    string
		endFlag      string
		fixtures     string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "eligible",
		Short: "List the open shifts a worker may claim at a facility",
		Long: `List the open shifts a worker may claim at a facility within a time window.

Timestamps use "YYYY-MM-DD HH:MM" (UTC). Without --fixtures the command reads
PostgreSQL using the DB_* environment variables.

Exit codes: 0 success, 2 worker or facility ineligible, 1 any other failure.

Examples:
  shiftctl eligible --worker 4 --facility 5 --start "2023-01-01 00:00" --end "2023-01-31 23:59"
  shiftctl eligible --worker 4 --facility 5 --start 2023-01-01 --end 2023-02-01 --fixtures fixtures/scenario.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := entities.ParseWorkerID(workerFlag)
			if err != nil {
				return err
			}
			facilityID, err := entities.ParseFacilityID(facilityFlag)
			if err != nil {
				return err
			}
			window, err := entities.ParseTimeWindow(startFlag, endFlag)
			if err != nil {
				return err
			}

			gateway, closeGateway, err := openGateway(fixtures)
			if err != nil {
				return err
			}
			defer closeGateway()

			service := services.NewEligibilityService(gateway, nil)
			shifts, err := service.ListEligibleShifts(cmd.Context(), workerID, facilityID, window)
			if err != nil {
				reason, ok := services.IneligibilityReasonOf(err)
				if !ok {
					return err
				}
				if asJSON {
					if werr := writeJSON(cmd.OutOrStdout(), ineligibleOutput{Type: "INELIGIBLE", Reason: reason}); werr != nil {
						return werr
					}
					return err
				}
				color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(),
					"worker %s is ineligible at facility %s: %s\n", workerID, facilityID, reason)
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toShiftOutput(shifts))
			}
			writeTable(cmd.OutOrStdout(), shifts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workerFlag, "worker", "w", "", "Worker id")
	cmd.Flags().StringVarP(&facilityFlag, "facility", "f", "", "Facility id")
	cmd.Flags().StringVar(&startFlag, "start", "", "Window start")
	cmd.Flags().StringVar(&endFlag, "end", "", "Window end")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "Read from a YAML fixture file instead of PostgreSQL")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print shifts as JSON")
	_ = cmd.MarkFlagRequired("worker")
	_ = cmd.MarkFlagRequired("facility")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// openGateway returns the fixture store when a path is given, PostgreSQL otherwise
func openGateway(fixtures string) (repositories.ShiftLookupRepository, func(), error) {
	if fixtures != "" {
		store, err := memory.NewShiftLookupAdapterFromFile(fixtures)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return database.NewShiftLookupAdapter(client), func() { _ = client.Close() }, nil
}

type shiftOutput struct {
	ID    entities.ShiftID `json:"id"`
	Start string           `json:"start"`
	End   string           `json:"end"`
}

type ineligibleOutput struct {
	Type   string                       `json:"type"`
	Reason entities.IneligibilityReason `json:"reason"`
}

func toShiftOutput(shifts []entities.EligibleShift) []shiftOutput {
	out := make([]shiftOutput, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, shiftOutput{
			ID:    s.ID,
			Start: s.Start.UTC().Format(entities.TimestampLayout),
			End:   s.End.UTC().Format(entities.TimestampLayout),
		})
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, shifts []entities.EligibleShift) {
	if len(shifts) == 0 {
		color.New(color.FgHiBlack).Fprintln(w, "No eligible shifts.")
		return
	}

	header := color.New(color.Bold)
	header.Fprintf(w, "%-8s %-16s %-16s\n", "ID", "START", "END")
	fmt.Fprintln(w, "──────────────────────────────────────────")
	idColor := color.New(color.FgCyan)
	for _, s := range shifts {
		fmt.Fprintf(w, "%s %-16s %-16s\n",
			idColor.Sprintf("%-8s", s.ID),
			s.Start.UTC().Format(entities.TimestampLayout),
			s.End.UTC().Format(entities.TimestampLayout),
		)
	}
	fmt.Fprintln(w)
	color.New(color.FgGreen).Fprintf(w, "%d eligible shift(s)\n", len(shifts))
}
