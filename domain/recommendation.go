package domain

import "time"

type Recommendation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	PlaceID    uint      `gorm:"column:place_id;not null" json:"place_id"`
	Note       string    `gorm:"column:note" json:"note"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
