package input

import "pontbot/internal/domain/entities"

// StatsQuery exposes the relay counters to administrative surfaces.
type StatsQuery interface {
	Snapshot() entities.StatsSnapshot
}
