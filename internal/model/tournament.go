package model

import (
	"fmt"
	"time"
)

// Tournament is an event record in the public directory. StartDate and
// EndDate form an inclusive interval with EndDate >= StartDate. Lat/Lng are
// optional; records without coordinates stay in list views but are omitted
// from the map.
type Tournament struct {
	Base
	Name           string    `db:"name" json:"name"`
	Organizer      string    `db:"organizer" json:"organizer"`
	OrganizerEmail string    `db:"organizer_email" json:"organizer_email"`
	Location       string    `db:"location" json:"location"`
	Country        string    `db:"country" json:"country"`
	Continent      string    `db:"continent" json:"continent"`
	Tier           int       `db:"tier" json:"tier"`
	StartDate      time.Time `db:"start_date" json:"start_date"`
	EndDate        time.Time `db:"end_date" json:"end_date"`
	ImageURL       string    `db:"image_url" json:"image_url"`
	Description    string    `db:"description" json:"description"`
	Lat            *float64  `db:"lat" json:"lat,omitempty"`
	Lng            *float64  `db:"lng" json:"lng,omitempty"`
	Status         Status    `db:"status" json:"status"`
}

// Coords returns the record's map position, if it has one.
func (t *Tournament) Coords() (GeoPoint, bool) {
	if t.Lat == nil || t.Lng == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *t.Lat, Lng: *t.Lng}, true
}

// MapMarker projects the tournament onto the map view.
func (t *Tournament) MapMarker() (Marker, bool) {
	coords, ok := t.Coords()
	if !ok {
		return Marker{}, false
	}
	return Marker{
		ID:       t.ID,
		Name:     t.Name,
		Location: t.Location,
		Coords:   coords,
		Popup: fmt.Sprintf("%s, %s | %s to %s | Organizer: %s (%s)",
			t.Location, t.Country,
			t.StartDate.Format("Jan 2, 2006"), t.EndDate.Format("Jan 2, 2006"),
			t.Organizer, t.OrganizerEmail),
	}, true
}
