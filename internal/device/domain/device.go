package domain

import "time"

// Device represents a managed child device. DeviceCode is the stable,
// human-typable identifier used during pairing and carried in device tokens;
// ID is the internal row id everything else references.
type Device struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	DeviceCode        string     `json:"device_code" gorm:"uniqueIndex;not null"`
	ParentID          string     `json:"parent_id" gorm:"index"`
	ChildID           *string    `json:"child_id"`
	PairingSecretHash string     `json:"-"` // bcrypt hash, never exposed
	LastClaimedAt     *time.Time `json:"last_claimed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Child struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ParentID  string    `json:"parent_id" gorm:"index"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
