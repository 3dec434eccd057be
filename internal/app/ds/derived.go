package ds

import (
	"math"
	"time"
)

// CalculateEfficiency scores the ship from 100 down. Understaffed crews
// cost 20, overdue maintenance 30, any non-active status 50; the penalties
// stack and the result never goes below 0.
func (s *Ship) CalculateEfficiency(now time.Time) int {
	efficiency := 100

	if s.Crew.TotalCrew < s.Crew.RequiredCrew {
		efficiency -= 20
	}
	if s.Maintenance.NextMaintenance != nil && now.After(*s.Maintenance.NextMaintenance) {
		efficiency -= 30
	}
	if s.Status != StatusActive {
		efficiency -= 50
	}

	if efficiency < 0 {
		efficiency = 0
	}
	return efficiency
}

// CalculateOperationalDays counts whole days since the last maintenance,
// rounding partial days up. Without a last maintenance date it is 0. The
// difference is taken absolute, so a future-dated last maintenance still
// yields a positive count.
func (s *Ship) CalculateOperationalDays(now time.Time) int {
	if s.Maintenance.LastMaintenance == nil {
		return 0
	}
	diff := now.Sub(*s.Maintenance.LastMaintenance)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// RecalculateDerived refreshes both derived fields. Called by the
// repository before every persist.
func (s *Ship) RecalculateDerived(now time.Time) {
	s.Efficiency = s.CalculateEfficiency(now)
	s.OperationalDays = s.CalculateOperationalDays(now)
}
