package model

import "time"

type AuditAction string

const (
	AuditActionSetUserActive AuditAction = "SET_USER_ACTIVE"
	AuditActionForceLogout   AuditAction = "FORCE_LOGOUT"
)

type AuditResourceType string

const (
	AuditResourceUser AuditResourceType = "user"
)

// AuditLog records who changed what on which resource, with before/after JSON.
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID  int64             `gorm:"not null;index" json:"actor_user_id"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`
	BeforeJSON   string            `gorm:"type:text" json:"before_json"`
	AfterJSON    string            `gorm:"type:text" json:"after_json"`
	CreatedAt    time.Time         `gorm:"not null;index" json:"created_at"`
}
