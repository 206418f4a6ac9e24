package model

import "fmt"

// Club is a community club listing. Clubs carry the location facets of the
// directory but no tier, continent or date span.
type Club struct {
	Base
	Name        string   `db:"name" json:"name"`
	Email       string   `db:"email" json:"email"`
	Contact     string   `db:"contact" json:"contact"`
	Location    string   `db:"location" json:"location"`
	Country     string   `db:"country" json:"country"`
	BookingLink string   `db:"booking_link" json:"booking_link,omitempty"`
	ImageURL    string   `db:"image_url" json:"image_url"`
	LogoURL     string   `db:"logo_url" json:"logo_url"`
	Description string   `db:"description" json:"description"`
	Lat         *float64 `db:"lat" json:"lat,omitempty"`
	Lng         *float64 `db:"lng" json:"lng,omitempty"`
	Status      Status   `db:"status" json:"status"`
}

func (c *Club) Coords() (GeoPoint, bool) {
	if c.Lat == nil || c.Lng == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *c.Lat, Lng: *c.Lng}, true
}

func (c *Club) MapMarker() (Marker, bool) {
	coords, ok := c.Coords()
	if !ok {
		return Marker{}, false
	}
	return Marker{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		Coords:   coords,
		Popup:    fmt.Sprintf("%s, %s | Contact: %s", c.Location, c.Country, c.Contact),
	}, true
}
