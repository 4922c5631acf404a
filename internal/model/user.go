package model

import "time"

// User stores a Telegram user who opted into data retention via /save.
// The name is captured at opt-in time and never synced afterwards.
type User struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex"`
	Name       string
	CreatedAt  time.Time
}
