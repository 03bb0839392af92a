package controllers

import (
	"net/http"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/mailer"
	"roleplay/tools"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
)

type ForgotPasswordRequest struct {
	Email            string `json:"email" form:"email"`
	ResetPasswordURL string `json:"resetPasswordUrl" form:"resetPasswordUrl"`
}

// ForgotPassword handles POST /forgot-password. E-mail desconhecido responde
// 204 igualzinho ao caso de sucesso (anti-enumeração).
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	if req.Email == "" || req.ResetPasswordURL == "" {
		RespondError(c, apperrors.BadRequest("email and resetPasswordUrl are required"))
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, apperrors.BadRequest("invalid email"))
		return
	}

	db := dbpkg.DBInstance(c)
	m := mailer.Instance(c)
	if err := workflows.RequestReset(c.Request.Context(), db, m, req.Email, req.ResetPasswordURL); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token"`
	Password string `json:"password" form:"password"`
}

// ResetPassword handles POST /reset-password.
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	if req.Token == "" || req.Password == "" {
		RespondError(c, apperrors.BadRequest("token and password are required"))
		return
	}
	if tools.CheckPassword(req.Password) != "" {
		RespondError(c, apperrors.BadRequest("missing or invalid field password"))
		return
	}

	db := dbpkg.DBInstance(c)
	if err := workflows.ResetPassword(db, req.Token, req.Password); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
