package workflows

import (
	"roleplay/apperrors"
	"roleplay/models"
	"roleplay/tools"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// CreateSession autentica por email+senha e emite um token opaco persistido.
// Credencial inválida (usuário inexistente ou senha errada) é sempre o mesmo
// BAD_REQUEST, sem distinguir qual dos dois falhou.
func CreateSession(db *gorm.DB, email, password string) (*models.ApiToken, *models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, apperrors.BadRequest("invalid credentials")
		}
		return nil, nil, err
	}

	if !tools.CheckPasswordHash(password, user.Password) {
		return nil, nil, apperrors.BadRequest("invalid credentials")
	}

	token := models.ApiToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, nil, err
	}
	return &token, &user, nil
}

// DeleteSession revoga o token apagando a linha.
func DeleteSession(db *gorm.DB, tokenValue string) error {
	return db.Where("token = ?", tokenValue).Delete(&models.ApiToken{}).Error
}
