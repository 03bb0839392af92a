package controllers

import (
	"net/http"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/tools"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Avatar   string `json:"avatar" form:"avatar"`
}

func (r CreateUserRequest) MissingFields() string {
	if r.Email == "" {
		return "email"
	} else if r.Username == "" {
		return "username"
	} else if r.Password == "" {
		return "password"
	} else if tools.CheckPassword(r.Password) != "" {
		return tools.CheckPassword(r.Password)
	}
	return ""
}

// CreateUser handles POST /users.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	if missing := req.MissingFields(); missing != "" {
		RespondError(c, apperrors.BadRequest("missing or invalid field "+missing))
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, apperrors.BadRequest("invalid email"))
		return
	}

	db := dbpkg.DBInstance(c)
	user, err := workflows.CreateUser(db, workflows.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{"user": user})
}

type UpdateUserRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Avatar   string `json:"avatar" form:"avatar"`
}

// UpdateUser handles PUT /users/:id. Só o próprio usuário pode se atualizar;
// o workflow devolve Forbidden quando o ator não é o alvo.
func UpdateUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	logged, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	if req.Email == "" {
		RespondError(c, apperrors.BadRequest("missing or invalid field email"))
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, apperrors.BadRequest("invalid email"))
		return
	}
	if req.Password == "" || tools.CheckPassword(req.Password) != "" {
		RespondError(c, apperrors.BadRequest("missing or invalid field password"))
		return
	}

	db := dbpkg.DBInstance(c)
	user, err := workflows.UpdateUser(db, logged.ID, id, workflows.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{"user": user})
}
