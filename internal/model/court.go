package model

import "fmt"

// Court is a public court listing.
type Court struct {
	Base
	Name        string   `db:"name" json:"name"`
	Location    string   `db:"location" json:"location"`
	Country     string   `db:"country" json:"country"`
	CourtCount  int      `db:"court_count" json:"court_count"`
	Contact     string   `db:"contact" json:"contact"`
	Description string   `db:"description" json:"description"`
	Lat         *float64 `db:"lat" json:"lat,omitempty"`
	Lng         *float64 `db:"lng" json:"lng,omitempty"`
	Status      Status   `db:"status" json:"status"`
}

func (c *Court) Coords() (GeoPoint, bool) {
	if c.Lat == nil || c.Lng == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *c.Lat, Lng: *c.Lng}, true
}

func (c *Court) MapMarker() (Marker, bool) {
	coords, ok := c.Coords()
	if !ok {
		return Marker{}, false
	}
	return Marker{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		Coords:   coords,
		Popup:    fmt.Sprintf("%s, %s | %d courts | Contact: %s", c.Location, c.Country, c.CourtCount, c.Contact),
	}, true
}
