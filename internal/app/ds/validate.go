package ds

import (
	"strings"
	"time"
)

// ValidationError carries the names of the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// Validate checks the ship shape at the service boundary. Required fields
// must be present, enums must hold, optional numeric sub-fields must stay
// in range when set. Returns *ValidationError listing every offending field.
func (s *Ship) Validate() error {
	var fields []string

	if strings.TrimSpace(s.Name) == "" {
		fields = append(fields, "name")
	} else if len(s.Name) > 100 {
		fields = append(fields, "name")
	}
	if s.Type == "" || !ValidShipType(s.Type) {
		fields = append(fields, "type")
	}
	if strings.TrimSpace(s.Capacity) == "" {
		fields = append(fields, "capacity")
	}
	if s.Status != "" && !ValidShipStatus(s.Status) {
		fields = append(fields, "status")
	}

	if s.Specifications.Length < 0 {
		fields = append(fields, "specifications.length")
	}
	if s.Specifications.Width < 0 {
		fields = append(fields, "specifications.width")
	}
	if s.Specifications.Height < 0 {
		fields = append(fields, "specifications.height")
	}
	if s.Specifications.Draft < 0 {
		fields = append(fields, "specifications.draft")
	}
	if yb := s.Specifications.YearBuilt; yb != 0 && (yb < 1900 || yb > time.Now().Year()) {
		fields = append(fields, "specifications.yearBuilt")
	}

	if s.Crew.TotalCrew < 0 {
		fields = append(fields, "crew.totalCrew")
	}
	if s.Crew.RequiredCrew < 0 {
		fields = append(fields, "crew.requiredCrew")
	}

	if lat := s.Location.Coordinates.Latitude; lat < -90 || lat > 90 {
		fields = append(fields, "location.coordinates.latitude")
	}
	if lon := s.Location.Coordinates.Longitude; lon < -180 || lon > 180 {
		fields = append(fields, "location.coordinates.longitude")
	}

	for _, rec := range s.Maintenance.History {
		if rec.Cost < 0 {
			fields = append(fields, "maintenance.maintenanceHistory.cost")
			break
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
