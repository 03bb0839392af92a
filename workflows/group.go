package workflows

import (
	"roleplay/apperrors"
	"roleplay/models"

	"github.com/jinzhu/gorm"
)

type CreateGroupInput struct {
	Name        string
	Description string
	Schedule    string
	Location    string
	Chronic     string
	MasterID    int64
}

// CreateGroup cria uma mesa e adiciona o master ao conjunto de players na
// mesma transação (invariante: master sempre é membro).
func CreateGroup(db *gorm.DB, in CreateGroupInput) (*models.Group, error) {
	var master models.User
	if err := db.First(&master, in.MasterID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("master user not found")
		}
		return nil, err
	}

	group := models.Group{
		Name:        in.Name,
		Description: in.Description,
		Schedule:    in.Schedule,
		Location:    in.Location,
		Chronic:     in.Chronic,
		MasterID:    in.MasterID,
	}

	tx := db.Begin()
	if err := tx.Create(&group).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&group).Association("Players").Append(&master).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := db.Preload("Players").First(&group, group.ID).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
