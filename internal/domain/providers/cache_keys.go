package providers

import (
	"fmt"

	"github.com/zatekoja/shiftboard/internal/domain/entities"
)

// Cache key prefixes for standing lookups
const (
	CacheKeyPrefixFacilityStanding = "standing:facility:"
	CacheKeyPrefixWorkerStanding   = "standing:worker:"
)

// FacilityStandingKey returns the cache key holding a facility's standing
func FacilityStandingKey(id entities.FacilityID) string {
	return fmt.Sprintf("%s%d", CacheKeyPrefixFacilityStanding, int64(id))
}

// WorkerStandingKey returns the cache key holding a worker's standing and profession
func WorkerStandingKey(id entities.WorkerID) string {
	return fmt.Sprintf("%s%d", CacheKeyPrefixWorkerStanding, int64(id))
}
