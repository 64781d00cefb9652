package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

// Table names match the shared schema, which uses quoted PascalCase identifiers.
const (
	facilityTable = "Facility"
	workerTable   = "Worker"
	shiftTable    = "Shift"
)

// ShiftLookupAdapter implements ShiftLookupRepository against PostgreSQL
type ShiftLookupAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.ShiftLookupRepository = (*ShiftLookupAdapter)(nil)

// NewShiftLookupAdapter creates a new shift lookup adapter
func NewShiftLookupAdapter(client *postgres.Client) *ShiftLookupAdapter {
	return &ShiftLookupAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

type shiftRow struct {
	ID         int64         `db:"id"`
	FacilityID int64         `db:"facility_id"`
	Start      time.Time     `db:"start"`
	End        time.Time     `db:"end"`
	Profession string        `db:"profession"`
	IsDeleted  bool          `db:"is_deleted"`
	WorkerID   sql.NullInt64 `db:"worker_id"`
}

func (r shiftRow) toEntity() entities.Shift {
	shift := entities.Shift{
		ID:         entities.ShiftID(r.ID),
		FacilityID: entities.FacilityID(r.FacilityID),
		Start:      r.Start.UTC(),
		End:        r.End.UTC(),
		Profession: entities.Profession(r.Profession),
		IsDeleted:  r.IsDeleted,
	}
	if r.WorkerID.Valid {
		worker := entities.WorkerID(r.WorkerID.Int64)
		shift.ClaimedBy = &worker
	}
	return shift
}

// GetFacilityActive returns whether the facility is active
func (a *ShiftLookupAdapter) GetFacilityActive(ctx context.Context, id entities.FacilityID) (bool, error) {
	query, args, err := a.db.From(facilityTable).
		Select("is_active").
		Where(goqu.Ex{"id": int64(id)}).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build facility query", err)
	}

	var active bool
	err = a.client.DB().GetContext(ctx, &active, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, apperrors.NewNotFoundError(fmt.Sprintf("facility with id %s not found", id))
	}
	if err != nil {
		return false, apperrors.NewInternalError("failed to get facility", err)
	}

	return active, nil
}

// GetWorker returns the worker's standing and profession
func (a *ShiftLookupAdapter) GetWorker(ctx context.Context, id entities.WorkerID) (*entities.Worker, error) {
	query, args, err := a.db.From(workerTable).
		Select("id", "profession", "is_active").
		Where(goqu.Ex{"id": int64(id)}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build worker query", err)
	}

	worker := &entities.Worker{}
	err = a.client.DB().GetContext(ctx, worker, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("worker with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get worker", err)
	}

	return worker, nil
}

// QueryEligibleShifts selects open shifts and filters out the ones that
// collide with a shift the worker already holds, all in a single statement.
func (a *ShiftLookupAdapter) QueryEligibleShifts(ctx context.Context, q repositories.ShiftQuery) ([]entities.Shift, error) {
	query, args, err := a.eligibleShiftsDataset(q).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build shift query", err)
	}

	var rows []shiftRow
	if err := a.client.DB().SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to query shifts", err)
	}

	shifts := make([]entities.Shift, 0, len(rows))
	for _, row := range rows {
		shifts = append(shifts, row.toEntity())
	}
	return shifts, nil
}

func (a *ShiftLookupAdapter) eligibleShiftsDataset(q repositories.ShiftQuery) *goqu.SelectDataset {
	// Half-open overlap: held.start < candidate.end AND held.end > candidate.start
	held := a.db.From(goqu.T(shiftTable).As("held")).
		Select(goqu.L("1")).
		Where(
			goqu.I("held.worker_id").Eq(int64(q.WorkerID)),
			goqu.I("held.is_deleted").IsFalse(),
			goqu.I("held.start").Lt(goqu.I("s.end")),
			goqu.I("held.end").Gt(goqu.I("s.start")),
		)

	return a.db.From(goqu.T(shiftTable).As("s")).
		Select(
			goqu.I("s.id"),
			goqu.I("s.facility_id"),
			goqu.I("s.start"),
			goqu.I("s.end"),
			goqu.I("s.profession"),
			goqu.I("s.is_deleted"),
			goqu.I("s.worker_id"),
		).
		Where(
			goqu.I("s.facility_id").Eq(int64(q.FacilityID)),
			goqu.I("s.start").Gte(q.Window.Start),
			goqu.I("s.end").Lte(q.Window.End),
			goqu.I("s.profession").Eq(string(q.Profession)),
			goqu.I("s.is_deleted").IsFalse(),
			goqu.I("s.worker_id").IsNull(),
			goqu.L("NOT EXISTS ?", held),
		).
		Order(goqu.I("s.start").Asc(), goqu.I("s.id").Asc())
}
