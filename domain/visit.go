package domain

import "time"

const (
	VisitMethodGoNow  = "go_now"
	VisitMethodManual = "manual"
)

// Visit is upserted per (user_id, place_id); VerifiedAt moves forward on
// re-verification.
type Visit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:ux_visit_user_place,priority:1" json:"user_id"`
	PlaceID    uint      `gorm:"column:place_id;not null;uniqueIndex:ux_visit_user_place,priority:2" json:"place_id"`
	Place      *Place    `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
	Method     string    `gorm:"column:method;not null;default:manual" json:"method"`
	VerifiedAt time.Time `gorm:"column:verified_at;not null" json:"verified_at"`
}

func (Visit) TableName() string {
	return "visits"
}
