package model

import "github.com/lib/pq"

// Gender values mirror the registration form options.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// MinAthleteAge is the youngest age accepted into the player registry.
const MinAthleteAge = 10

// Athlete is a player registry entry. Athletes are curated by admins rather
// than moderated, so there is no status column.
type Athlete struct {
	Base
	Name      string         `db:"name" json:"name"`
	Age       int            `db:"age" json:"age"`
	Gender    Gender         `db:"gender" json:"gender"`
	Country   string         `db:"country" json:"country"`
	HeightCm  int            `db:"height_cm" json:"height_cm"`
	Points    int            `db:"points" json:"points"`
	TitlesWon pq.StringArray `db:"titles_won" json:"titles_won"`
	ImageURL  string         `db:"image_url" json:"image_url"`
}
