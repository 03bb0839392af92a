package models

import "time"

// User representa um jogador (ou mestre) no sistema.
// Password carrega o hash bcrypt e nunca é serializado (json:"-").
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Email     string     `gorm:"not null;unique_index" json:"email" form:"email"`
	Username  string     `gorm:"not null;unique_index" json:"username" form:"username"`
	Password  string     `gorm:"not null" json:"-"`
	Avatar    string     `gorm:"default:''" json:"avatar" form:"avatar"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
