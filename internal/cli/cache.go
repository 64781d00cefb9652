package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zatekoja/shiftboard/internal/adapters/cache"
	"github.com/zatekoja/shiftboard/internal/adapters/events"
	"github.com/zatekoja/shiftboard/internal/application/services"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/providers"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
	"github.com/zatekoja/shiftboard/pkg/config"
)

// CacheCmd returns the cache command for the standing cache kept in Redis
func CacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the facility and worker standing cache",
	}

	cmd.AddCommand(cacheFlushCmd())
	cmd.AddCommand(cachePublishCmd())

	return cmd
}

func cacheFlushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Evict every cached facility and worker standing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openRedis()
			if err != nil {
				return err
			}
			defer client.Close()

			invalidator := services.NewCacheInvalidationService(cache.NewRedisAdapter(client), nil)
			if err := invalidator.InvalidateAll(cmd.Context()); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Standing cache flushed")
			return nil
		},
	}
}

func cachePublishCmd() *cobra.Command {
	var (
		facilityFlag string
		workerFlag   string
		active       bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Announce a facility or worker standing change to running API servers",
		Long: `Publish a standing change on the Redis event bus. Every API server
subscribed to the bus evicts the cached entry for that facility or worker.

Examples:
  shiftctl cache publish --facility 4 --active
  shiftctl cache publish --worker 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := standingEventFromFlags(facilityFlag, workerFlag, active)
			if err != nil {
				return err
			}

			client, err := openRedis()
			if err != nil {
				return err
			}
			defer client.Close()

			bus := events.NewRedisEventBus(client)
			defer bus.Close()

			if err := bus.Publish(cmd.Context(), providers.EventChannelStandingUpdates, event); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Published %s %d standing (active=%t)\n",
				event.Kind, event.EntityID, event.IsActive)
			return nil
		},
	}

	cmd.Flags().StringVarP(&facilityFlag, "facility", "f", "", "Facility id")
	cmd.Flags().StringVarP(&workerFlag, "worker", "w", "", "Worker id")
	cmd.Flags().BoolVar(&active, "active", false, "New standing")
	cmd.MarkFlagsMutuallyExclusive("facility", "worker")
	cmd.MarkFlagsOneRequired("facility", "worker")

	return cmd
}

func standingEventFromFlags(facilityFlag, workerFlag string, active bool) (*entities.StandingEvent, error) {
	switch {
	case facilityFlag != "" && workerFlag != "":
		return nil, errors.New("use either --facility or --worker, not both")
	case facilityFlag != "":
		id, err := entities.ParseFacilityID(facilityFlag)
		if err != nil {
			return nil, err
		}
		return entities.NewFacilityStandingEvent(id, active), nil
	case workerFlag != "":
		id, err := entities.ParseWorkerID(workerFlag)
		if err != nil {
			return nil, err
		}
		return entities.NewWorkerStandingEvent(id, active), nil
	default:
		return nil, errors.New("one of --facility or --worker is required")
	}
}

func openRedis() (*redis.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("standing cache unavailable: %w", err)
	}
	return client, nil
}
