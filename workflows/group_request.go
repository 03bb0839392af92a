package workflows

import (
	"roleplay/apperrors"
	"roleplay/models"

	"github.com/jinzhu/gorm"
)

// SubmitRequest registra o pedido de entrada de um usuário em um grupo.
// A ordem das checagens importa: pedido duplicado (qualquer status) ganha de
// "já é membro". A checagem de duplicado não filtra por status de propósito —
// um pedido REJECTED continua bloqueando novo pedido para o mesmo par.
func SubmitRequest(db *gorm.DB, groupID, userID int64) (*models.GroupRequest, error) {
	var existing models.GroupRequest
	err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("group request already exists")
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	var memberships int
	if err := db.Table("group_players").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&memberships).Error; err != nil {
		return nil, err
	}
	if memberships > 0 {
		return nil, apperrors.BadRequest("user is already in group")
	}

	request := models.GroupRequest{
		GroupID: groupID,
		UserID:  userID,
		Status:  models.GROUP_REQUEST_STATUS_PENDING,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

type GroupSummary struct {
	Name   string `json:"name"`
	Master int64  `json:"master"`
}

type UserSummary struct {
	Username string `json:"username"`
}

// PendingRequest é a projeção reduzida devolvida na listagem do master.
type PendingRequest struct {
	ID      int64        `json:"id"`
	GroupID int64        `json:"groupId"`
	UserID  int64        `json:"userId"`
	Status  string       `json:"status"`
	Group   GroupSummary `json:"group"`
	User    UserSummary  `json:"user"`
}

// ListPendingRequests devolve os pedidos PENDING de todos os grupos cujo
// master é masterID. O filtro é só por master — o groupId da rota não entra
// na query (comportamento contratual da rota, coberto por teste).
func ListPendingRequests(db *gorm.DB, masterID int64) ([]PendingRequest, error) {
	var requests []models.GroupRequest
	err := db.
		Select("group_requests.*").
		Preload("Group").
		Preload("User").
		Joins("JOIN groups ON groups.id = group_requests.group_id").
		Where("groups.master = ? AND group_requests.status = ?", masterID, models.GROUP_REQUEST_STATUS_PENDING).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	out := make([]PendingRequest, 0, len(requests))
	for _, r := range requests {
		pr := PendingRequest{
			ID:      r.ID,
			GroupID: r.GroupID,
			UserID:  r.UserID,
			Status:  r.Status,
		}
		if r.Group != nil {
			pr.Group = GroupSummary{Name: r.Group.Name, Master: r.Group.MasterID}
		}
		if r.User != nil {
			pr.User = UserSummary{Username: r.User.Username}
		}
		out = append(out, pr)
	}
	return out, nil
}

// ResolveRequest aceita ou rejeita um pedido PENDING. Só o master do grupo
// pode resolver; aceitar adiciona o usuário aos players na mesma transação.
func ResolveRequest(db *gorm.DB, requestID, masterID int64, accept bool) (*models.GroupRequest, error) {
	var request models.GroupRequest
	if err := db.Preload("Group").First(&request, requestID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperrors.NotFound("group request not found")
		}
		return nil, err
	}

	if request.Group == nil || request.Group.MasterID != masterID {
		return nil, apperrors.Forbidden("only the group master can resolve requests")
	}
	if !request.IsPending() {
		return nil, apperrors.BadRequest("group request already resolved")
	}

	status := models.GROUP_REQUEST_STATUS_REJECTED
	if accept {
		status = models.GROUP_REQUEST_STATUS_ACCEPTED
	}

	tx := db.Begin()
	if err := tx.Model(&request).Update("status", status).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if accept {
		var user models.User
		if err := tx.First(&user, request.UserID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Model(request.Group).Association("Players").Append(&user).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	request.Status = status
	return &request, nil
}
