package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	BadgeCategoryExploration = "exploration"
	BadgeCategorySocial      = "social"
	BadgeCategoryCollection  = "collection"
	BadgeCategoryStreak      = "streak"
)

// BadgeDefinition is static configuration, keyed by Type.
type BadgeDefinition struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Requirement int    `json:"requirement"`
}

// EarnedBadge rows are append-only. The composite unique index is the only
// guard that holds across concurrent evaluations.
type EarnedBadge struct {
	ID        string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null;uniqueIndex:ux_user_badge,priority:1" json:"user_id"`
	BadgeType string            `gorm:"column:badge_type;not null;size:64;uniqueIndex:ux_user_badge,priority:2" json:"badge_type"`
	EarnedAt  time.Time         `gorm:"column:earned_at;not null" json:"earned_at"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (EarnedBadge) TableName() string {
	return "earned_badges"
}

// BadgeStatus is the catalog view of one badge for one user.
type BadgeStatus struct {
	BadgeDefinition
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
	Progress int        `json:"progress"`
}
