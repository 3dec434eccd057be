package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps page size; the dashboard never asks for more and an
	// unbounded limit lets a single request scan the whole table.
	MaxLimit = 100
)

// FilterAll is the sentinel that turns a status/type filter off.
const FilterAll = "all"

// sortColumns whitelists API sort fields against ships table columns.
// The descriptor ends up in an ORDER BY clause, so nothing outside this
// map may pass through.
var sortColumns = map[string]string{
	"name":            "name",
	"type":            "type",
	"status":          "status",
	"capacity":        "capacity",
	"efficiency":      "efficiency",
	"operationalDays": "operational_days",
	"yearBuilt":       "spec_year_built",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

// ShipListing is the validated descriptor for a ships listing request.
// Zero-valued Status/Type/Search mean "no constraint".
type ShipListing struct {
	Page       int
	Limit      int
	Status     string
	Type       string
	Search     string
	SortColumn string
	SortDesc   bool
}

// ParseShipListing turns raw query parameters into a descriptor.
// Unparseable or non-positive numbers fall back to their defaults and
// limit is capped at MaxLimit. An unknown sortBy keeps the default
// newest-first ordering.
func ParseShipListing(values url.Values) ShipListing {
	q := ShipListing{
		Page:       positiveInt(values.Get("page"), DefaultPage),
		Limit:      positiveInt(values.Get("limit"), DefaultLimit),
		Search:     values.Get("search"),
		SortColumn: "created_at",
		SortDesc:   true,
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	if status := values.Get("status"); status != "" && status != FilterAll {
		q.Status = status
	}
	if shipType := values.Get("type"); shipType != "" && shipType != FilterAll {
		q.Type = shipType
	}

	if sortBy := values.Get("sortBy"); sortBy != "" {
		if column, ok := sortColumns[sortBy]; ok {
			q.SortColumn = column
			q.SortDesc = values.Get("sortOrder") == "desc"
		}
	}

	return q
}

// Offset is the number of rows skipped before the requested page.
func (q ShipListing) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause renders the validated sort as an ORDER BY expression.
func (q ShipListing) OrderClause() string {
	if q.SortDesc {
		return q.SortColumn + " DESC"
	}
	return q.SortColumn + " ASC"
}

// positiveInt falls back on anything that does not parse to a positive
// integer. For page the fallback is 1, so this doubles as the clamp.
func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
