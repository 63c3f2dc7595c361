package domain

import (
	"encoding/json"
	"time"
)

const JobTypePostInstall = "POST_INSTALL"

// Device job statuses. Jobs are written here and drained by the device agent
// through the jobs endpoints.
const (
	JobStatusQueued    = "queued"
	JobStatusDelivered = "delivered"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// DeviceJob is an append-only work item for a device agent.
type DeviceJob struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	DeviceID  string          `json:"device_id" gorm:"index;not null"`
	Type      string          `json:"type" gorm:"not null"`
	Payload   json.RawMessage `json:"payload" gorm:"type:jsonb"`
	Status    string          `json:"status" gorm:"index;default:queued"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DefaultWebFilters is the content-filter policy applied when a postinstall
// call does not supply one.
func DefaultWebFilters() map[string]any {
	return map[string]any{
		"schoolHoursEnabled":   false,
		"socialMediaBlocked":   true,
		"gamingBlocked":        false,
		"entertainmentBlocked": false,
	}
}
