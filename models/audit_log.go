package models

import "time"

// AuditLog is an append-only trail of operator actions: field definition
// CRUD, moderation status changes and accepts.
type AuditLog struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ActorID   uint   `json:"actor_id" gorm:"index"`
	ActorName string `json:"actor_name" gorm:"size:120"`
	Action    string `json:"action" gorm:"size:40;not null;index"` // create|update|delete|status_change|accept
	Entity    string `json:"entity" gorm:"size:40;not null"`       // admission_field|admission|...
	EntityID  uint   `json:"entity_id" gorm:"index"`
	Detail    string `json:"detail" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}
