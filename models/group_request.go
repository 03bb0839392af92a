package models

import "time"

/************************************************
/**** MARK: GROUP REQUEST STATUS ****/
/************************************************/
const GROUP_REQUEST_STATUS_PENDING = "PENDING"
const GROUP_REQUEST_STATUS_ACCEPTED = "ACCEPTED"
const GROUP_REQUEST_STATUS_REJECTED = "REJECTED"

// GroupRequest representa o pedido de um usuario para entrar em um grupo.
// O unique_index em (group_id, user_id) é a garantia final contra pedidos
// duplicados concorrentes; a checagem prévia no workflow existe só para
// devolver uma mensagem de erro limpa.
type GroupRequest struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	GroupID   int64      `gorm:"not null;unique_index:uix_group_requests_group_user" json:"groupId" form:"groupId"`
	UserID    int64      `gorm:"not null;unique_index:uix_group_requests_group_user" json:"userId" form:"userId"`
	Status    string     `gorm:"not null;default:'PENDING'" json:"status"`
	Group     *Group     `gorm:"foreignkey:GroupID" json:"group,omitempty"`
	User      *User      `gorm:"foreignkey:UserID" json:"user,omitempty"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (gr GroupRequest) IsPending() bool {
	return gr.Status == GROUP_REQUEST_STATUS_PENDING
}
