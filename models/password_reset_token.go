package models

import "time"

// PasswordResetToken representa um token temporário do fluxo "esqueci minha
// senha". Uso único: o consumo (ou a detecção de expiração) apaga a linha,
// então um replay do mesmo token falha com NOT_FOUND.
type PasswordResetToken struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Token     string     `gorm:"not null;unique_index" json:"-"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (t PasswordResetToken) IsExpired(now time.Time, ttl time.Duration) bool {
	if t.CreatedAt == nil {
		return false
	}
	return now.Sub(*t.CreatedAt) > ttl
}
