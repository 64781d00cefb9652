package memory

import (
	"fmt"
	"os"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// Fixtures is a complete data set for the in-memory store
type Fixtures struct {
	Facilities []entities.Facility
	Workers    []entities.Worker
	Shifts     []entities.Shift
}

type fixtureFile struct {
	Facilities []facilityRecord `yaml:"facilities"`
	Workers    []workerRecord   `yaml:"workers"`
	Shifts     []shiftRecord    `yaml:"shifts"`
}

type facilityRecord struct {
	ID       int64 `yaml:"id"`
	IsActive bool  `yaml:"is_active"`
}

type workerRecord struct {
	ID         int64  `yaml:"id"`
	Profession string `yaml:"profession"`
	IsActive   bool   `yaml:"is_active"`
}

type shiftRecord struct {
	ID         int64  `yaml:"id"`
	FacilityID int64  `yaml:"facility_id"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	Profession string `yaml:"profession"`
	IsDeleted  bool   `yaml:"is_deleted"`
	WorkerID   *int64 `yaml:"worker_id"`
}

// LoadFixtures reads and validates a YAML fixture file
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	fixtures, err := ParseFixtures(data)
	if err != nil {
		return nil, fmt.Errorf("invalid fixtures %s: %w", path, err)
	}
	return fixtures, nil
}

// ParseFixtures decodes YAML fixtures. Timestamps use the "2006-01-02 15:04" layout.
// Shifts must reference facilities and workers defined in the same document.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	fixtures := &Fixtures{
		Facilities: make([]entities.Facility, 0, len(file.Facilities)),
		Workers:    make([]entities.Worker, 0, len(file.Workers)),
		Shifts:     make([]entities.Shift, 0, len(file.Shifts)),
	}

	seenFacilities := make(map[int64]struct{}, len(file.Facilities))
	for _, r := range file.Facilities {
		if _, dup := seenFacilities[r.ID]; dup {
			return nil, fmt.Errorf("duplicate facility id %d", r.ID)
		}
		seenFacilities[r.ID] = struct{}{}
		fixtures.Facilities = append(fixtures.Facilities, entities.Facility{
			ID:       entities.FacilityID(r.ID),
			IsActive: r.IsActive,
		})
	}

	seenWorkers := make(map[int64]struct{}, len(file.Workers))
	for _, r := range file.Workers {
		if _, dup := seenWorkers[r.ID]; dup {
			return nil, fmt.Errorf("duplicate worker id %d", r.ID)
		}
		seenWorkers[r.ID] = struct{}{}
		profession, err := entities.ParseProfession(r.Profession)
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", r.ID, err)
		}
		fixtures.Workers = append(fixtures.Workers, entities.Worker{
			ID:         entities.WorkerID(r.ID),
			Profession: profession,
			IsActive:   r.IsActive,
		})
	}

	seenShifts := make(map[int64]struct{}, len(file.Shifts))
	for _, r := range file.Shifts {
		if _, dup := seenShifts[r.ID]; dup {
			return nil, fmt.Errorf("duplicate shift id %d", r.ID)
		}
		seenShifts[r.ID] = struct{}{}
		if _, ok := seenFacilities[r.FacilityID]; !ok {
			return nil, fmt.Errorf("shift %d: unknown facility id %d", r.ID, r.FacilityID)
		}
		if r.WorkerID != nil {
			if _, ok := seenWorkers[*r.WorkerID]; !ok {
				return nil, fmt.Errorf("shift %d: unknown worker id %d", r.ID, *r.WorkerID)
			}
		}
		shift, err := r.toEntity()
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", r.ID, err)
		}
		fixtures.Shifts = append(fixtures.Shifts, shift)
	}

	return fixtures, nil
}

func (r shiftRecord) toEntity() (entities.Shift, error) {
	span, err := entities.ParseTimeWindow(r.Start, r.End)
	if err != nil {
		return entities.Shift{}, err
	}
	profession, err := entities.ParseProfession(r.Profession)
	if err != nil {
		return entities.Shift{}, err
	}

	shift := entities.Shift{
		ID:         entities.ShiftID(r.ID),
		FacilityID: entities.FacilityID(r.FacilityID),
		Start:      span.Start,
		End:        span.End,
		Profession: profession,
		IsDeleted:  r.IsDeleted,
	}
	if r.WorkerID != nil {
		worker := entities.WorkerID(*r.WorkerID)
		shift.ClaimedBy = &worker
	}
	return shift, nil
}
