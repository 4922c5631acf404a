package model

import "time"

// Account is a savings box with a balance in a single currency.
// Only two rows exist: the pesos account and the dollars account.
type Account struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	Currency  string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name the bot has always used.
func (Account) TableName() string {
	return "cuentas"
}
