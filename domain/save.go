package domain

import "time"

type Save struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:ux_save_user_place,priority:1" json:"user_id"`
	PlaceID   uint      `gorm:"column:place_id;not null;uniqueIndex:ux_save_user_place,priority:2" json:"place_id"`
	Place     *Place    `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
	Intent    string    `gorm:"column:intent;not null" json:"intent"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Save) TableName() string {
	return "saves"
}
