package main

// Loads the sample fleet and demo accounts. Wipes both tables first.

import (
	"time"

	"shipsy/internal/app/config"
	"shipsy/internal/app/ds"
	"shipsy/internal/app/dsn"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func sampleUsers() []ds.User {
	return []ds.User{
		{Username: "admin", Email: "admin@shipsy.com", Password: "admin123", Role: "admin", FirstName: "Admin", LastName: "User"},
		{Username: "manager", Email: "manager@shipsy.com", Password: "manager123", Role: "manager", FirstName: "Fleet", LastName: "Manager"},
		{Username: "operator", Email: "operator@shipsy.com", Password: "operator123", Role: "user", FirstName: "Ship", LastName: "Operator"},
	}
}

func sampleShips(now time.Time) []ds.Ship {
	days := func(n int) *time.Time {
		t := now.Add(time.Duration(n) * 24 * time.Hour)
		return &t
	}

	return []ds.Ship{
		{
			Name: "Ocean Voyager", Type: "Container Ship", Capacity: "5000 TEU", Status: ds.StatusActive,
			Specifications: ds.Specifications{Length: 300, Width: 40, Height: 25, Draft: 15, YearBuilt: 2018, Flag: "Panama", HomePort: "Rotterdam"},
			Crew:           ds.Crew{Captain: "Capt. John Smith", TotalCrew: 25, RequiredCrew: 20},
			Location:       ds.Location{CurrentPort: "Pacific Ocean", NextPort: "Port of Los Angeles", EstimatedArrival: days(7)},
			Maintenance:    ds.Maintenance{LastMaintenance: days(-30), NextMaintenance: days(60)},
		},
		{
			Name: "Sea Explorer", Type: "Bulk Carrier", Capacity: "80000 DWT", Status: ds.StatusMaintenance,
			Specifications: ds.Specifications{Length: 280, Width: 45, Height: 22, Draft: 18, YearBuilt: 2019, Flag: "Liberia", HomePort: "Singapore"},
			Crew:           ds.Crew{Captain: "Capt. Maria Garcia", TotalCrew: 18, RequiredCrew: 15},
			Location:       ds.Location{CurrentPort: "Port of Singapore", NextPort: "Port of Shanghai", EstimatedArrival: days(14)},
			Maintenance:    ds.Maintenance{LastMaintenance: days(-15), NextMaintenance: days(5)},
		},
		{
			Name: "Maritime Star", Type: "Tanker", Capacity: "120000 DWT", Status: ds.StatusDocked,
			Specifications: ds.Specifications{Length: 320, Width: 50, Height: 28, Draft: 20, YearBuilt: 2017, Flag: "Marshall Islands", HomePort: "Rotterdam"},
			Crew:           ds.Crew{Captain: "Capt. David Wilson", TotalCrew: 22, RequiredCrew: 18},
			Location:       ds.Location{CurrentPort: "Port of Rotterdam", NextPort: "Port of Hamburg", EstimatedArrival: days(3)},
			Maintenance:    ds.Maintenance{LastMaintenance: days(-45), NextMaintenance: days(30)},
		},
		{
			Name: "Pacific Pioneer", Type: "Container Ship", Capacity: "6000 TEU", Status: ds.StatusActive,
			Specifications: ds.Specifications{Length: 310, Width: 42, Height: 26, Draft: 16, YearBuilt: 2020, Flag: "Panama", HomePort: "Los Angeles"},
			Crew:           ds.Crew{Captain: "Capt. Sarah Johnson", TotalCrew: 28, RequiredCrew: 22},
			Location:       ds.Location{CurrentPort: "Atlantic Ocean", NextPort: "Port of New York", EstimatedArrival: days(5)},
			Maintenance:    ds.Maintenance{LastMaintenance: days(-20), NextMaintenance: days(70)},
		},
		{
			Name: "Atlantic Voyager", Type: "Passenger Ship", Capacity: "2000 Passengers", Status: ds.StatusActive,
			Specifications: ds.Specifications{Length: 250, Width: 35, Height: 30, Draft: 12, YearBuilt: 2021, Flag: "Bahamas", HomePort: "Miami"},
			Crew:           ds.Crew{Captain: "Capt. Michael Brown", TotalCrew: 35, RequiredCrew: 30},
			Location:       ds.Location{CurrentPort: "Caribbean Sea", NextPort: "Port of Miami", EstimatedArrival: days(2)},
			Maintenance:    ds.Maintenance{LastMaintenance: days(-10), NextMaintenance: days(80)},
		},
	}
}

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ds.Ship{}).Error; err != nil {
		logrus.Fatalf("error clearing ships: %v", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ds.User{}).Error; err != nil {
		logrus.Fatalf("error clearing users: %v", err)
	}

	for _, user := range sampleUsers() {
		if err := db.Create(&user).Error; err != nil {
			logrus.Fatalf("error seeding user %s: %v", user.Username, err)
		}
		logrus.Infof("created user %s", user.Username)
	}

	now := time.Now()
	for _, ship := range sampleShips(now) {
		ship.RecalculateDerived(now)
		if err := db.Create(&ship).Error; err != nil {
			logrus.Fatalf("error seeding ship %s: %v", ship.Name, err)
		}
		logrus.Infof("created ship %s", ship.Name)
	}

	logrus.Info("Database seeded")
}
