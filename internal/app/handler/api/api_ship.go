package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"shipsy/internal/app/ds"
	"shipsy/internal/app/query"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

type ShipRepository interface {
	ListShips(q query.ShipListing) ([]ds.Ship, int64, error)
	GetShip(id string) (ds.Ship, error)
	CreateShip(ship *ds.Ship) error
	UpdateShip(ship *ds.Ship) error
	DeleteShip(id string) error
	FleetStats() (ds.FleetStats, error)
}

type ShipHandler struct {
	Repository  ShipRepository
	MinioClient *minio.Client
	MinioBucket string
}

// @Summary List ships
// @Description Ships with pagination, filtering, search and sorting
// @Tags ships
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param status query string false "Status filter, 'all' disables"
// @Param type query string false "Type filter, 'all' disables"
// @Param search query string false "Substring match on name, captain or current port"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} object "message, ships, pagination"
// @Failure 500 {object} object "message, error?"
// @Router /api/ships [get]
func (h *ShipHandler) ListShipsAPI(c *gin.Context) {
	q := query.ParseShipListing(c.Request.URL.Query())

	ships, total, err := h.Repository.ListShips(q)
	if err != nil {
		serverError(c, err)
		return
	}
	if ships == nil {
		ships = []ds.Ship{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Ships retrieved successfully",
		"ships":      ships,
		"pagination": query.NewPagination(q.Page, q.Limit, total),
	})
}

// @Summary Get ship
// @Tags ships
// @Produce json
// @Param id path string true "Ship ID"
// @Success 200 {object} object "message, ship"
// @Failure 400 {object} object "invalid ID format"
// @Failure 404 {object} object "not found"
// @Router /api/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ship not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship retrieved successfully",
		"ship":    ship,
	})
}

// @Summary Create ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.Ship true "Ship"
// @Success 201 {object} object "message, ship"
// @Failure 400 {object} object "message, required"
// @Failure 401 {object} object "auth required"
// @Router /api/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var ship ds.Ship
	if err := c.BindJSON(&ship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if ship.Status == "" {
		ship.Status = ds.StatusActive
	}
	if err := ship.Validate(); err != nil {
		validationError(c, err)
		return
	}

	// Identity, timestamps and derived fields are never taken from the
	// client.
	ship.ID = ""
	ship.Efficiency = 0
	ship.OperationalDays = 0
	ship.CreatedAt = time.Time{}
	ship.UpdatedAt = time.Time{}

	if err := h.Repository.CreateShip(&ship); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ship created successfully",
		"ship":    ship,
	})
}

// @Summary Update ship
// @Description Partial update; efficiency and operationalDays are recomputed, client values discarded
// @Tags ships
// @Accept json
// @Produce json
// @Param id path string true "Ship ID"
// @Param ship body ds.Ship true "Fields to update"
// @Success 200 {object} object "message, ship"
// @Failure 400 {object} object "invalid ID or body"
// @Failure 404 {object} object "not found"
// @Router /api/ships/{id} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ship not found"})
			return
		}
		serverError(c, err)
		return
	}

	createdAt := ship.CreatedAt
	// Merge the partial body over the stored record: absent fields keep
	// their values, present ones overwrite.
	if err := c.BindJSON(&ship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	ship.ID = id
	ship.CreatedAt = createdAt

	// The stored record always carries a status; an explicit empty one in
	// the body is an enum violation, not a request to re-default.
	if ship.Status == "" {
		validationError(c, &ds.ValidationError{Fields: []string{"status"}})
		return
	}

	if err := ship.Validate(); err != nil {
		validationError(c, err)
		return
	}

	if err := h.Repository.UpdateShip(&ship); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship updated successfully",
		"ship":    ship,
	})
}

// @Summary Delete ship
// @Tags ships
// @Produce json
// @Param id path string true "Ship ID"
// @Success 200 {object} object "message, shipId"
// @Failure 400 {object} object "invalid ID format"
// @Failure 404 {object} object "not found"
// @Router /api/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}

	if err := h.Repository.DeleteShip(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ship not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship deleted successfully",
		"shipId":  id,
	})
}

// @Summary Fleet statistics
// @Tags ships
// @Produce json
// @Success 200 {object} object "message, stats"
// @Router /api/ships/stats/overview [get]
func (h *ShipHandler) FleetStatsAPI(c *gin.Context) {
	stats, err := h.Repository.FleetStats()
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fleet statistics retrieved successfully",
		"stats":   stats,
	})
}

// @Summary Upload ship photo
// @Tags ships
// @Accept mpfd
// @Produce json
// @Param id path string true "Ship ID"
// @Param file formData file true "Image file"
// @Success 200 {object} object "message, ship"
// @Router /api/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, ok := shipID(c)
	if !ok {
		return
	}
	if h.MinioClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image storage not available"})
		return
	}

	ship, err := h.Repository.GetShip(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ship not found"})
			return
		}
		serverError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
			return
		}
	}
	defer file.Close()

	objectName := "img/" + uuid.NewString() + filepath.Ext(header.Filename)
	_, err = h.MinioClient.PutObject(
		c.Request.Context(),
		h.MinioBucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
	)
	if err != nil {
		serverError(c, err)
		return
	}

	if ship.PhotoURL != "" {
		h.MinioClient.RemoveObject(context.Background(), h.MinioBucket, ship.PhotoURL, minio.RemoveObjectOptions{})
	}

	ship.PhotoURL = objectName
	if err := h.Repository.UpdateShip(&ship); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"ship":    ship,
	})
}

// shipID parses the path identifier; a malformed one gets its own 400
// rather than a generic not-found.
func shipID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ship ID format"})
		return "", false
	}
	return id, true
}
