package controllers

import (
	"net/http"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// CreateSession handles POST /sessions.
func CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, apperrors.BadRequest("email and password are required"))
		return
	}

	db := dbpkg.DBInstance(c)
	token, user, err := workflows.CreateSession(db, req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{"token": token, "user": user})
}

// DeleteSession handles DELETE /sessions (sign out).
func DeleteSession(c *gin.Context) {
	tokenValue, ok := GetSessionToken(c)
	if !ok {
		RespondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}

	db := dbpkg.DBInstance(c)
	if err := workflows.DeleteSession(db, tokenValue); err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{})
}
