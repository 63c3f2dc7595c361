package domain

import "time"

// App is a row in the managed app catalog.
type App struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`     // install type, e.g. "apk", "web"
	Platform  string    `json:"platform"` // "android", "ios", ...
	Essential bool      `json:"essential"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSelection marks an app as enabled for a child. The set for a child is
// replaced wholesale on every postinstall call, never merged.
type AppSelection struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ChildID   string    `json:"child_id" gorm:"index;not null"`
	AppID     string    `json:"app_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
