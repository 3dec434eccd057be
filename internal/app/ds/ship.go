package ds

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ship statuses.
const (
	StatusActive       = "Active"
	StatusMaintenance  = "Maintenance"
	StatusDocked       = "Docked"
	StatusOutOfService = "Out of Service"
)

// ShipTypes is the closed set of accepted vessel types.
var ShipTypes = []string{
	"Container Ship",
	"Bulk Carrier",
	"Tanker",
	"Passenger Ship",
	"Fishing Vessel",
	"Other",
}

// ShipStatuses is the closed set of accepted statuses.
var ShipStatuses = []string{
	StatusActive,
	StatusMaintenance,
	StatusDocked,
	StatusOutOfService,
}

type Specifications struct {
	Length    float64 `gorm:"column:length" json:"length"`
	Width     float64 `gorm:"column:width" json:"width"`
	Height    float64 `gorm:"column:height" json:"height"`
	Draft     float64 `gorm:"column:draft" json:"draft"`
	YearBuilt int     `gorm:"column:year_built" json:"yearBuilt"`
	Flag      string  `gorm:"column:flag" json:"flag"`
	HomePort  string  `gorm:"column:home_port" json:"homePort"`
}

type Crew struct {
	Captain      string `gorm:"column:captain" json:"captain"`
	TotalCrew    int    `gorm:"column:total" json:"totalCrew"`
	RequiredCrew int    `gorm:"column:required" json:"requiredCrew"`
}

type Coordinates struct {
	Latitude  float64 `gorm:"column:lat" json:"latitude"`
	Longitude float64 `gorm:"column:lon" json:"longitude"`
}

type Location struct {
	CurrentPort      string      `gorm:"column:current_port" json:"currentPort"`
	NextPort         string      `gorm:"column:next_port" json:"nextPort"`
	EstimatedArrival *time.Time  `gorm:"column:estimated_arrival" json:"estimatedArrival,omitempty"`
	Coordinates      Coordinates `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
}

type MaintenanceRecord struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
}

// MaintenanceHistory is stored as a single jsonb column.
type MaintenanceHistory []MaintenanceRecord

func (h MaintenanceHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

func (h *MaintenanceHistory) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported maintenance history column type %T", src)
	}
	return json.Unmarshal(data, h)
}

type Maintenance struct {
	LastMaintenance *time.Time         `gorm:"column:last" json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time         `gorm:"column:next" json:"nextMaintenance,omitempty"`
	History         MaintenanceHistory `gorm:"column:history;type:jsonb" json:"maintenanceHistory"`
}

// Ship is one vessel of the fleet. Efficiency and OperationalDays are
// derived from the other fields before every persist and are never taken
// from client input.
type Ship struct {
	ID              string         `gorm:"primaryKey;column:ship_id" json:"id"`
	Name            string         `gorm:"column:name;size:100" json:"name"`
	Type            string         `gorm:"column:type" json:"type"`
	Capacity        string         `gorm:"column:capacity" json:"capacity"`
	Status          string         `gorm:"column:status;default:Active" json:"status"`
	Specifications  Specifications `gorm:"embedded;embeddedPrefix:spec_" json:"specifications"`
	Crew            Crew           `gorm:"embedded;embeddedPrefix:crew_" json:"crew"`
	Location        Location       `gorm:"embedded;embeddedPrefix:loc_" json:"location"`
	Maintenance     Maintenance    `gorm:"embedded;embeddedPrefix:maint_" json:"maintenance"`
	Efficiency      int            `gorm:"column:efficiency" json:"efficiency"`
	OperationalDays int            `gorm:"column:operational_days" json:"operationalDays"`
	PhotoURL        string         `gorm:"column:photo_url" json:"photoUrl,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

func (Ship) TableName() string {
	return "ships"
}

// BeforeCreate assigns the store identifier.
func (s *Ship) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func ValidShipType(t string) bool {
	for _, v := range ShipTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidShipStatus(st string) bool {
	for _, v := range ShipStatuses {
		if v == st {
			return true
		}
	}
	return false
}
