package repository

import (
	"math"
	"time"

	"shipsy/internal/app/ds"
	"shipsy/internal/app/query"

	"gorm.io/gorm"
)

// shipQuery applies the descriptor's filter to a fresh ships query.
// Both the count and the page fetch go through here so pagination totals
// always match the filter.
func (r *Repository) shipQuery(q query.ShipListing) *gorm.DB {
	db := r.db.Model(&ds.Ship{})
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Type != "" {
		db = db.Where("type = ?", q.Type)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where(
			"name ILIKE ? OR crew_captain ILIKE ? OR loc_current_port ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return db
}

// ListShips returns one page of ships plus the total number of matches.
func (r *Repository) ListShips(q query.ShipListing) ([]ds.Ship, int64, error) {
	var total int64
	if err := r.shipQuery(q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ships []ds.Ship
	err := r.shipQuery(q).
		Order(q.OrderClause()).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&ships).Error
	if err != nil {
		return nil, 0, err
	}
	return ships, total, nil
}

func (r *Repository) GetShip(id string) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("ship_id = ?", id).First(&ship).Error
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// CreateShip recomputes the derived fields and persists a new ship.
func (r *Repository) CreateShip(ship *ds.Ship) error {
	ship.RecalculateDerived(time.Now())
	return r.db.Create(ship).Error
}

// UpdateShip recomputes the derived fields and writes the full record.
func (r *Repository) UpdateShip(ship *ds.Ship) error {
	ship.RecalculateDerived(time.Now())
	return r.db.Save(ship).Error
}

// DeleteShip removes the ship permanently. Returns gorm.ErrRecordNotFound
// if the identifier does not resolve.
func (r *Repository) DeleteShip(id string) error {
	res := r.db.Where("ship_id = ?", id).Delete(&ds.Ship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FleetStats aggregates counts and the average efficiency over the whole
// collection.
func (r *Repository) FleetStats() (ds.FleetStats, error) {
	stats := ds.FleetStats{}

	if err := r.db.Model(&ds.Ship{}).Count(&stats.TotalShips).Error; err != nil {
		return ds.FleetStats{}, err
	}
	if err := r.db.Model(&ds.Ship{}).Where("status = ?", ds.StatusActive).Count(&stats.ActiveShips).Error; err != nil {
		return ds.FleetStats{}, err
	}
	if err := r.db.Model(&ds.Ship{}).Where("status = ?", ds.StatusMaintenance).Count(&stats.MaintenanceShips).Error; err != nil {
		return ds.FleetStats{}, err
	}
	if err := r.db.Model(&ds.Ship{}).Where("status = ?", ds.StatusDocked).Count(&stats.DockedShips).Error; err != nil {
		return ds.FleetStats{}, err
	}

	var avg float64
	err := r.db.Model(&ds.Ship{}).
		Select("COALESCE(AVG(efficiency), 0)").
		Scan(&avg).Error
	if err != nil {
		return ds.FleetStats{}, err
	}
	stats.AvgEfficiency = int(math.Round(avg))

	return stats, nil
}
