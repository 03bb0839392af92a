package models

import "time"

// Group representa uma mesa de RPG. O master é sempre membro de Players
// (adicionado na criação do grupo).
type Group struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string     `gorm:"not null" json:"name" form:"name"`
	Description string     `gorm:"not null" json:"description" form:"description"`
	Schedule    string     `gorm:"not null" json:"schedule" form:"schedule"`
	Location    string     `gorm:"not null" json:"location" form:"location"`
	Chronic     string     `gorm:"not null" json:"chronic" form:"chronic"`
	MasterID    int64      `gorm:"column:master;not null;index" json:"master" form:"master"`
	Players     []User     `gorm:"many2many:group_players" json:"players,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (group Group) MissingFields() string {
	if group.Name == "" {
		return "name"
	} else if group.Description == "" {
		return "description"
	} else if group.Schedule == "" {
		return "schedule"
	} else if group.Location == "" {
		return "location"
	} else if group.Chronic == "" {
		return "chronic"
	} else if group.MasterID == 0 {
		return "master"
	}
	return ""
}
