package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is one append-only audit record of a mutation made through the API.
// Action is "<entity>.<verb>", e.g. "student.create" or "fee.pay".
type ActivityLog struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	ActorID    uint              `gorm:"not null;index:idx_activity_actor" json:"actor_id"`
	ActorRole  string            `gorm:"size:16;not null" json:"actor_role"`
	Action     string            `gorm:"size:64;not null;index:idx_activity_action" json:"action"`
	EntityType string            `gorm:"size:32;not null;index:idx_activity_entity,priority:1" json:"entity_type"`
	EntityID   *uint             `gorm:"index:idx_activity_entity,priority:2" json:"entity_id"`
	RequestID  string            `gorm:"size:64" json:"request_id,omitempty"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
}
