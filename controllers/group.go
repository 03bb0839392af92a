package controllers

import (
	"net/http"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/models"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
)

type CreateGroupRequestBody struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Schedule    string `json:"schedule" form:"schedule"`
	Location    string `json:"location" form:"location"`
	Chronic     string `json:"chronic" form:"chronic"`
	Master      int64  `json:"master" form:"master"`
}

// CreateGroup handles POST /groups.
func CreateGroup(c *gin.Context) {
	var req CreateGroupRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	probe := models.Group{
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		Location:    req.Location,
		Chronic:     req.Chronic,
		MasterID:    req.Master,
	}
	if missing := probe.MissingFields(); missing != "" {
		RespondError(c, apperrors.BadRequest("missing or invalid field "+missing))
		return
	}

	db := dbpkg.DBInstance(c)
	group, err := workflows.CreateGroup(db, workflows.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		Location:    req.Location,
		Chronic:     req.Chronic,
		MasterID:    req.Master,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{"group": group})
}
