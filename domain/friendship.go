package domain

import "time"

const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
	FriendshipStatusDeclined = "declined"
)

// Friendship is directional while pending and undirected once accepted.
type Friendship struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Status     string    `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
