package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
)

// Seeder loads reference data sets into the schema from migrations/.
// It is used by the seed script and integration tests; the service itself
// never writes.
type Seeder struct {
	db *goqu.Database
}

// NewSeeder creates a new seeder
func NewSeeder(client *postgres.Client) *Seeder {
	return &Seeder{db: goqu.New("postgres", client.DB())}
}

// Reset removes every facility, worker and shift
func (s *Seeder) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `TRUNCATE TABLE "Shift", "Worker", "Facility" RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to reset tables: %w", err)
	}
	return nil
}

// Seed upserts the given rows by id in a single transaction and advances the
// id sequences past the highest seeded id
func (s *Seeder) Seed(ctx context.Context, facilities []entities.Facility, workers []entities.Worker, shifts []entities.Shift) error {
	return s.db.WithTx(func(tx *goqu.TxDatabase) error {
		if len(facilities) > 0 {
			rows := make([]interface{}, 0, len(facilities))
			for _, f := range facilities {
				rows = append(rows, goqu.Record{"id": int64(f.ID), "is_active": f.IsActive})
			}
			_, err := tx.Insert(facilityTable).Rows(rows...).
				OnConflict(goqu.DoUpdate("id", goqu.Record{"is_active": goqu.I("excluded.is_active")})).
				Executor().ExecContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed facilities: %w", err)
			}
		}

		if len(workers) > 0 {
			rows := make([]interface{}, 0, len(workers))
			for _, w := range workers {
				rows = append(rows, goqu.Record{
					"id":         int64(w.ID),
					"profession": string(w.Profession),
					"is_active":  w.IsActive,
				})
			}
			_, err := tx.Insert(workerTable).Rows(rows...).
				OnConflict(goqu.DoUpdate("id", goqu.Record{
					"profession": goqu.I("excluded.profession"),
					"is_active":  goqu.I("excluded.is_active"),
				})).
				Executor().ExecContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed workers: %w", err)
			}
		}

		if len(shifts) > 0 {
			rows := make([]interface{}, 0, len(shifts))
			for _, sh := range shifts {
				var workerID interface{}
				if sh.ClaimedBy != nil {
					workerID = int64(*sh.ClaimedBy)
				}
				rows = append(rows, goqu.Record{
					"id":          int64(sh.ID),
					"facility_id": int64(sh.FacilityID),
					"start":       sh.Start.UTC(),
					"end":         sh.End.UTC(),
					"profession":  string(sh.Profession),
					"is_deleted":  sh.IsDeleted,
					"worker_id":   workerID,
				})
			}
			_, err := tx.Insert(shiftTable).Rows(rows...).
				OnConflict(goqu.DoUpdate("id", goqu.Record{
					"facility_id": goqu.I("excluded.facility_id"),
					"start":       goqu.I("excluded.start"),
					"end":         goqu.I("excluded.end"),
					"profession":  goqu.I("excluded.profession"),
					"is_deleted":  goqu.I("excluded.is_deleted"),
					"worker_id":   goqu.I("excluded.worker_id"),
				})).
				Executor().ExecContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed shifts: %w", err)
			}
		}

		for _, table := range []string{facilityTable, workerTable, shiftTable} {
			_, err := tx.ExecContext(ctx, fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('"%[1]s"', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM "%[1]s"), 1))`,
				table,
			))
			if err != nil {
				return fmt.Errorf("failed to advance %s id sequence: %w", table, err)
			}
		}
		return nil
	})
}
