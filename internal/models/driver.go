package models

import (
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// Driver extends the rider contact fields with vehicle, presence and earnings.
type Driver struct {
	ID              ID        `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phoneNumber"`
	EmailAddress    string    `json:"emailAddress"`
	Gender          string    `json:"gender"`
	IsActive        Flag      `json:"isActive"`
	IsPhoneVerified Flag      `json:"isPhoneVerified"`
	IsEmailVerified Flag      `json:"isEmailVerified"`
	VehicleType     string    `json:"vehicleType"`
	VehicleColor    string    `json:"vehicleColor"`
	LicensePlate    string    `json:"licensePlate"`
	IsOnline        Flag      `json:"isOnline"`
	IsAvailable     Flag      `json:"isAvailable"`
	LastOnline      Timestamp `json:"lastOnline"`
	CurrentLat      string    `json:"currentLat"`
	CurrentLng      string    `json:"currentLng"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
	TotalRides      Count     `json:"totalRides"`
	CompletedRides  Count     `json:"completedRides"`
	CancelledRides  Count     `json:"cancelledRides"`
	AverageRating   Amount    `json:"averageRating"`
	TotalEarnings   Amount    `json:"totalEarnings"`
}

// Location returns the last known position as a WGS84 point, or false when
// the driver has never reported coordinates.
func (d Driver) Location() (*geom.Point, bool) {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(d.CurrentLat), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(d.CurrentLng), 64)
	if errLat != nil || errLng != nil {
		return nil, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, false
	}
	// GeoJSON order is lng, lat.
	return geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{lng, lat}).SetSRID(4326), true
}

// LocationFeature wraps the last known position in a GeoJSON feature with
// enough properties for a map popup.
func (d Driver) LocationFeature() (*gjson.Feature, bool) {
	pt, ok := d.Location()
	if !ok {
		return nil, false
	}
	return &gjson.Feature{
		ID:       d.ID.String(),
		Geometry: pt,
		Properties: map[string]interface{}{
			"name":         d.Name,
			"licensePlate": d.LicensePlate,
			"isOnline":     d.IsOnline.Bool(),
			"isAvailable":  d.IsAvailable.Bool(),
			"lastOnline":   d.LastOnline.String(),
		},
	}, true
}
