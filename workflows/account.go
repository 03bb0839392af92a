package workflows

import (
	"roleplay/apperrors"
	"roleplay/models"
	"roleplay/tools"

	"github.com/jinzhu/gorm"
)

type CreateUserInput struct {
	Email    string
	Username string
	Password string
	Avatar   string
}

// CreateUser cadastra um usuário novo. As checagens de existência rodam antes
// do insert para nomear o campo em conflito (email tem precedência); os
// unique_index de email/username seguram o caso de corrida.
func CreateUser(db *gorm.DB, in CreateUserInput) (*models.User, error) {
	var existing models.User

	err := db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("email already in use")
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	err = db.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("username already in use")
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	hash, err := tools.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    in.Email,
		Username: in.Username,
		Password: hash,
		Avatar:   in.Avatar,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserInput struct {
	Email    string
	Password string
	Avatar   string
}

// UpdateUser aplica um merge parcial no registro do usuário. Só o próprio
// usuário pode se atualizar; senha incluída é sempre re-hasheada.
func UpdateUser(db *gorm.DB, actorID, id int64, in UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}

	if actorID != user.ID {
		return nil, apperrors.Forbidden("cannot update another user")
	}

	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Password != "" {
		hash, err := tools.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
