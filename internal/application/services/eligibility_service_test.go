package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/application/services"
	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/domain/repositories/mocks"
	apperrors "github.com/zatekoja/shiftboard/pkg/errors"
)

func mustWindow(t *testing.T, start, end string) entities.TimeWindow {
	t.Helper()
	window, err := entities.ParseTimeWindow(start, end)
	require.NoError(t, err)
	return window
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := entities.ParseTimestamp(s)
	require.NoError(t, err)
	return ts
}

func eligibleIDs(shifts []entities.EligibleShift) []entities.ShiftID {
	ids := make([]entities.ShiftID, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	return ids
}

func assertReason(t *testing.T, err error, want entities.IneligibilityReason) {
	t.Helper()
	require.Error(t, err)
	reason, ok := services.IneligibilityReasonOf(err)
	require.True(t, ok, "expected an ineligibility error, got %v", err)
	assert.Equal(t, want, reason)
}

func TestEligibilityService_GateOrder(t *testing.T) {
	ctx := context.Background()
	window := mustWindow(t, "2023-01-01 00:00", "2023-01-31 23:59")

	t.Run("inactive facility stops before worker lookup", func(t *testing.T) {
		repo := mocks.NewMockShiftLookupRepository(t)
		repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(4)).Return(false, nil).Once()

		shifts, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 4, 4, window)

		assert.Nil(t, shifts)
		assertReason(t, err, entities.IneligibilityReasonInactiveFacility)
		repo.AssertNotCalled(t, "GetWorker", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "QueryEligibleShifts", mock.Anything, mock.Anything)
	})

	t.Run("inactive worker stops before shift query", func(t *testing.T) {
		repo := mocks.NewMockShiftLookupRepository(t)
		repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(5)).Return(true, nil).Once()
		repo.EXPECT().GetWorker(mock.Anything, entities.WorkerID(5)).
			Return(&entities.Worker{ID: 5, Profession: entities.ProfessionRN, IsActive: false}, nil).Once()

		shifts, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 5, 5, window)

		assert.Nil(t, shifts)
		assertReason(t, err, entities.IneligibilityReasonInactiveWorker)
		repo.AssertNotCalled(t, "QueryEligibleShifts", mock.Anything, mock.Anything)
	})

	t.Run("facility lookup failure is a database error", func(t *testing.T) {
		repo := mocks.NewMockShiftLookupRepository(t)
		cause := apperrors.NewNotFoundError("facility with id 5000 not found")
		repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(5000)).Return(false, cause).Once()

		_, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 4, 5000, window)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabase))
		assert.ErrorIs(t, err, cause)
		_, ineligible := services.IneligibilityReasonOf(err)
		assert.False(t, ineligible)
	})

	t.Run("worker lookup failure is a database error", func(t *testing.T) {
		repo := mocks.NewMockShiftLookupRepository(t)
		repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(5)).Return(true, nil).Once()
		repo.EXPECT().GetWorker(mock.Anything, entities.WorkerID(5000)).
			Return(nil, apperrors.NewNotFoundError("worker with id 5000 not found")).Once()

		_, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 5000, 5, window)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabase))
	})

	t.Run("shift query failure is a database error with no partial result", func(t *testing.T) {
		repo := mocks.NewMockShiftLookupRepository(t)
		repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(5)).Return(true, nil).Once()
		repo.EXPECT().GetWorker(mock.Anything, entities.WorkerID(4)).
			Return(&entities.Worker{ID: 4, Profession: entities.ProfessionRN, IsActive: true}, nil).Once()
		repo.EXPECT().QueryEligibleShifts(mock.Anything, mock.Anything).
			Return([]entities.Shift{{ID: 1}}, errors.New("connection reset")).Once()

		shifts, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 4, 5, window)

		assert.Nil(t, shifts)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDatabase))
	})
}

func TestEligibilityService_QueriesWithWorkerProfession(t *testing.T) {
	ctx := context.Background()
	window := mustWindow(t, "2023-01-01 00:00", "2023-01-31 23:59")

	repo := mocks.NewMockShiftLookupRepository(t)
	repo.EXPECT().GetFacilityActive(mock.Anything, entities.FacilityID(5)).Return(true, nil).Once()
	repo.EXPECT().GetWorker(mock.Anything, entities.WorkerID(2)).
		Return(&entities.Worker{ID: 2, Profession: entities.ProfessionLVN, IsActive: true}, nil).Once()
	repo.EXPECT().QueryEligibleShifts(mock.Anything, repositories.ShiftQuery{
		FacilityID: 5,
		Window:     window,
		Profession: entities.ProfessionLVN,
		WorkerID:   2,
	}).Return([]entities.Shift{
		{ID: 8, FacilityID: 5, Start: mustTime(t, "2023-01-09 08:00"), End: mustTime(t, "2023-01-09 16:00"), Profession: entities.ProfessionLVN},
		{ID: 3, FacilityID: 5, Start: mustTime(t, "2023-01-02 08:00"), End: mustTime(t, "2023-01-02 16:00"), Profession: entities.ProfessionLVN},
		{ID: 2, FacilityID: 5, Start: mustTime(t, "2023-01-09 08:00"), End: mustTime(t, "2023-01-09 12:00"), Profession: entities.ProfessionLVN},
	}, nil).Once()

	shifts, err := services.NewEligibilityService(repo, nil).ListEligibleShifts(ctx, 2, 5, window)

	require.NoError(t, err)
	assert.Equal(t, []entities.ShiftID{3, 2, 8}, eligibleIDs(shifts))
	assert.Equal(t, mustTime(t, "2023-01-09 12:00"), shifts[1].End)
}

func TestEligibilityService_EmptyResultIsSuccess(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockShiftLookupRepository(t)
	repo.EXPECT().GetFacilityActive(mock.Anything, mock.Anything).Return(true, nil)
	repo.EXPECT().GetWorker(mock.Anything, mock.Anything).
		Return(&entities.Worker{ID: 4, Profession: entities.ProfessionRN, IsActive: true}, nil)
	repo.EXPECT().QueryEligibleShifts(mock.Anything, mock.Anything).Return(nil, nil)

	shifts, err := services.NewEligibilityService(repo, nil).
		ListEligibleShifts(ctx, 4, 5, mustWindow(t, "2023-01-01 00:00", "2023-01-01 00:00"))

	require.NoError(t, err)
	assert.NotNil(t, shifts)
	assert.Empty(t, shifts)
}

func TestEligibilityService_Scenario(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewShiftLookupAdapterFromFile("../../../fixtures/scenario.yaml")
	require.NoError(t, err)
	service := services.NewEligibilityService(store, nil)
	january := mustWindow(t, "2023-01-01 00:00", "2023-01-31 23:59")

	tests := []struct {
		name       string
		worker     entities.WorkerID
		facility   entities.FacilityID
		wantIDs    []entities.ShiftID
		wantReason entities.IneligibilityReason
		wantType   apperrors.ErrorType
	}{
		{name: "inactive facility", worker: 4, facility: 4, wantReason: entities.IneligibilityReasonInactiveFacility},
		{name: "inactive facility wins over inactive worker", worker: 5, facility: 4, wantReason: entities.IneligibilityReasonInactiveFacility},
		{name: "inactive worker", worker: 5, facility: 5, wantReason: entities.IneligibilityReasonInactiveWorker},
		{name: "unknown worker", worker: 5000, facility: 5, wantType: apperrors.ErrorTypeDatabase},
		{name: "unknown facility", worker: 4, facility: 5000, wantType: apperrors.ErrorTypeDatabase},
		{name: "unknown facility wins over unknown worker", worker: 5000, facility: 5000, wantType: apperrors.ErrorTypeDatabase},
		{name: "eligible registered nurse", worker: 4, facility: 5, wantIDs: []entities.ShiftID{1, 9, 3, 12}},
		{name: "no shifts at facility", worker: 4, facility: 1, wantIDs: []entities.ShiftID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shifts, err := service.ListEligibleShifts(ctx, tt.worker, tt.facility, january)

			switch {
			case tt.wantReason != "":
				assertReason(t, err, tt.wantReason)
				assert.Nil(t, shifts)
			case tt.wantType != "":
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, tt.wantType))
				assert.Nil(t, shifts)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantIDs, eligibleIDs(shifts))
			}
		})
	}
}

func TestEligibilityService_ReflectsStandingChanges(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewShiftLookupAdapterFromFile("../../../fixtures/scenario.yaml")
	require.NoError(t, err)
	service := services.NewEligibilityService(store, nil)
	window := mustWindow(t, "2023-01-01 00:00", "2023-01-31 23:59")

	store.SetFacilityActive(4, true)
	shifts, err := service.ListEligibleShifts(ctx, 4, 4, window)
	require.NoError(t, err)
	assert.Equal(t, []entities.ShiftID{13}, eligibleIDs(shifts))

	require.NoError(t, store.SetWorkerActive(4, false))
	_, err = service.ListEligibleShifts(ctx, 4, 4, window)
	assertReason(t, err, entities.IneligibilityReasonInactiveWorker)
}

func TestIneligibilityReasonOf(t *testing.T) {
	_, ok := services.IneligibilityReasonOf(nil)
	assert.False(t, ok)

	_, ok = services.IneligibilityReasonOf(errors.New("plain"))
	assert.False(t, ok)

	reason, ok := services.IneligibilityReasonOf(
		apperrors.NewIneligibleError(string(entities.IneligibilityReasonInactiveWorker), "worker 5 is not active"),
	)
	assert.True(t, ok)
	assert.Equal(t, entities.IneligibilityReasonInactiveWorker, reason)
}
