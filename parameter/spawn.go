package parameter

import (
	"time"
)

// Pickup spawning
const (
	// SpawnIntervalMin is the shortest wait between two spawn attempts
	SpawnIntervalMin = 3 * time.Second

	// SpawnIntervalMax is the longest wait between two spawn attempts
	SpawnIntervalMax = 5 * time.Second

	// SpawnMaxLive caps simultaneous pickups in the arena
	SpawnMaxLive = 4

	// SpawnMinPlayerDistanceFloat is the exclusion radius around each active player
	SpawnMinPlayerDistanceFloat = 1.0

	// SpawnPlacementAttempts is candidate points tried before abandoning a spawn
	SpawnPlacementAttempts = 10

	// SpawnOccupancyRadiusFloat is the probe radius used to reject points on top of other pickups
	SpawnOccupancyRadiusFloat = 0.5
)
