package models

import "time"

// ApiToken representa uma sessão autenticada. Revogação é apagar a linha
// (logout, ou reset de senha do dono).
type ApiToken struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"-"`
	UserID    int64      `gorm:"not null;index" json:"-"`
	Token     string     `gorm:"not null;unique_index" json:"token"`
	CreatedAt *time.Time `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}
