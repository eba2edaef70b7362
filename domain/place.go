package domain

import "time"

// CREATE TABLE public.places (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     external_id  TEXT UNIQUE NOT NULL,
//     name         TEXT NOT NULL,
//     photo_url    TEXT,
//     lat          DOUBLE PRECISION,
//     lng          DOUBLE PRECISION,
//     price_level  INTEGER,
//     rating       NUMERIC,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

// Place is owned by the catalog layer. ExternalID is the stable provider
// identifier and is what two users' saves are matched on.
type Place struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"column:external_id;uniqueIndex;not null" json:"external_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	PhotoURL   string    `gorm:"column:photo_url" json:"photo_url,omitempty"`
	Lat        *float64  `gorm:"column:lat" json:"lat"`
	Lng        *float64  `gorm:"column:lng" json:"lng"`
	PriceLevel *int      `gorm:"column:price_level" json:"price_level"`
	Rating     *float64  `gorm:"column:rating" json:"rating"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Place) TableName() string {
	return "places"
}

// HasCoordinates reports whether the place can be located on the map.
func (p *Place) HasCoordinates() bool {
	return p != nil && p.Lat != nil && p.Lng != nil
}
