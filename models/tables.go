package models

import "time"

type User struct {
	ID           int    `gorm:"primary_key;autoIncrement" json:"id"`
	PasswordHash string `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
	Email        string `gorm:"unique;not null" json:"email"`
	Enabled      bool   `gorm:"default:true" json:"enabled"`
	IsSubAdmin   bool   `gorm:"default:false" json:"is_sub_admin"`
}

// SiteContent is the singleton row holding the whole published site aggregate.
// Key is always the fixed content key; Payload is the JSON-serialized
// aggregate. The row is only ever replaced wholesale, never patched.
type SiteContent struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Payload   string    `gorm:"type:text" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}
