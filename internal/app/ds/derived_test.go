package ds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCalculateEfficiency(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name string
		ship Ship
		want int
	}{
		{
			name: "active fully crewed no maintenance due",
			ship: Ship{
				Status: StatusActive,
				Crew:   Crew{TotalCrew: 20, RequiredCrew: 20},
			},
			want: 100,
		},
		{
			name: "understaffed crew",
			ship: Ship{
				Status: StatusActive,
				Crew:   Crew{TotalCrew: 10, RequiredCrew: 20},
			},
			want: 80,
		},
		{
			name: "overdue maintenance",
			ship: Ship{
				Status:      StatusActive,
				Crew:        Crew{TotalCrew: 20, RequiredCrew: 20},
				Maintenance: Maintenance{NextMaintenance: timePtr(past)},
			},
			want: 70,
		},
		{
			name: "maintenance scheduled in the future is not a penalty",
			ship: Ship{
				Status:      StatusActive,
				Crew:        Crew{TotalCrew: 20, RequiredCrew: 20},
				Maintenance: Maintenance{NextMaintenance: timePtr(future)},
			},
			want: 100,
		},
		{
			name: "not active",
			ship: Ship{
				Status: StatusDocked,
				Crew:   Crew{TotalCrew: 20, RequiredCrew: 20},
			},
			want: 50,
		},
		{
			name: "all penalties stack and clamp at zero",
			ship: Ship{
				Status:      StatusOutOfService,
				Crew:        Crew{TotalCrew: 10, RequiredCrew: 20},
				Maintenance: Maintenance{NextMaintenance: timePtr(past)},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ship.CalculateEfficiency(now))
		})
	}
}

func TestCalculateOperationalDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no last maintenance", func(t *testing.T) {
		ship := Ship{}
		assert.Equal(t, 0, ship.CalculateOperationalDays(now))
	})

	t.Run("whole days", func(t *testing.T) {
		ship := Ship{Maintenance: Maintenance{LastMaintenance: timePtr(now.Add(-10 * 24 * time.Hour))}}
		assert.Equal(t, 10, ship.CalculateOperationalDays(now))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		ship := Ship{Maintenance: Maintenance{LastMaintenance: timePtr(now.Add(-(3*24 + 1) * time.Hour))}}
		assert.Equal(t, 4, ship.CalculateOperationalDays(now))
	})

	// Quirk carried over from the original system: a future-dated last
	// maintenance counts by absolute difference.
	t.Run("future last maintenance counts absolute", func(t *testing.T) {
		ship := Ship{Maintenance: Maintenance{LastMaintenance: timePtr(now.Add(5 * 24 * time.Hour))}}
		assert.Equal(t, 5, ship.CalculateOperationalDays(now))
	})
}

func TestRecalculateDerived(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ship := Ship{
		Status:          StatusActive,
		Crew:            Crew{TotalCrew: 20, RequiredCrew: 20},
		Maintenance:     Maintenance{LastMaintenance: timePtr(now.Add(-24 * time.Hour))},
		Efficiency:      7,   // client-supplied garbage
		OperationalDays: 999, // client-supplied garbage
	}

	ship.RecalculateDerived(now)

	assert.Equal(t, 100, ship.Efficiency)
	assert.Equal(t, 1, ship.OperationalDays)
}
