package workflows

import (
	"context"
	"time"

	"roleplay/apperrors"
	"roleplay/mailer"
	"roleplay/models"
	"roleplay/tools"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// ResetTokenTTL é a validade de um token de recuperação de senha.
const ResetTokenTTL = 2 * time.Hour

// RequestReset emite um token de uso único e envia o link por e-mail.
// E-mail desconhecido devolve sucesso sem efeito colateral (anti-enumeração).
func RequestReset(ctx context.Context, db *gorm.DB, m mailer.Mailer, email, resetPasswordURL string) error {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil
		}
		return err
	}

	// Mantém no máximo um token ativo por usuário.
	if err := db.Where("user_id = ?", user.ID).Delete(&models.PasswordResetToken{}).Error; err != nil {
		return err
	}

	token := models.PasswordResetToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := db.Create(&token).Error; err != nil {
		return err
	}

	link := resetPasswordURL + "?token=" + token.Token
	return m.SendPasswordReset(ctx, user.Email, user.Username, link)
}

// ResetPassword consome um token e grava a nova senha do dono. Token expirado
// é apagado na hora da checagem, então um replay depois disso falha com
// NOT_FOUND — igual a um token já consumido.
func ResetPassword(db *gorm.DB, tokenValue, newPassword string) error {
	var token models.PasswordResetToken
	if err := db.Where("token = ?", tokenValue).First(&token).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return apperrors.NotFound("token not found")
		}
		return err
	}

	if token.IsExpired(time.Now(), ResetTokenTTL) {
		if err := db.Delete(&token).Error; err != nil {
			return err
		}
		return apperrors.TokenExpired("token has expired")
	}

	var user models.User
	if err := db.First(&user, token.UserID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return apperrors.NotFound("token not found")
		}
		return err
	}

	hash, err := tools.HashPassword(newPassword)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if err := tx.Model(&user).Update("password", hash).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&token).Error; err != nil {
		tx.Rollback()
		return err
	}
	// Revoga as sessões do usuário (força novo login com a senha nova).
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.ApiToken{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}
