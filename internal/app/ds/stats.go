package ds

// FleetStats is the aggregate computed over the whole collection,
// unfiltered and unpaginated.
type FleetStats struct {
	TotalShips       int64 `json:"totalShips"`
	ActiveShips      int64 `json:"activeShips"`
	MaintenanceShips int64 `json:"maintenanceShips"`
	DockedShips      int64 `json:"dockedShips"`
	AvgEfficiency    int   `json:"avgEfficiency"`
}
