package controllers

import (
	"net/http"
	"strconv"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
)

// CreateGroupRequest handles POST /groups/:groupId/requests.
func CreateGroupRequest(c *gin.Context) {
	groupID, ok := ParamID(c, "groupId")
	if !ok {
		return
	}

	logged, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}

	db := dbpkg.DBInstance(c)
	request, err := workflows.SubmitRequest(db, groupID, logged.ID)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{"groupRequest": request})
}

// ListGroupRequests handles GET /groups/:groupId/requests?master=ID.
// O groupId é validado mas não filtra a listagem: o resultado são os pedidos
// PENDING de todos os grupos do master informado (ver DESIGN.md).
func ListGroupRequests(c *gin.Context) {
	if _, ok := ParamID(c, "groupId"); !ok {
		return
	}

	masterQuery := c.Query("master")
	if masterQuery == "" {
		RespondError(c, apperrors.BadRequest("master query should be provided"))
		return
	}
	masterID, err := strconv.ParseInt(masterQuery, 10, 64)
	if err != nil {
		RespondError(c, apperrors.BadRequest("master must be an integer"))
		return
	}

	db := dbpkg.DBInstance(c)
	requests, err := workflows.ListPendingRequests(db, masterID)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{"groupRequest": requests})
}

// AcceptGroupRequest handles POST /groups/:groupId/requests/:requestId/accept.
func AcceptGroupRequest(c *gin.Context) {
	resolveGroupRequest(c, true)
}

// RejectGroupRequest handles POST /groups/:groupId/requests/:requestId/reject.
func RejectGroupRequest(c *gin.Context) {
	resolveGroupRequest(c, false)
}

func resolveGroupRequest(c *gin.Context, accept bool) {
	if _, ok := ParamID(c, "groupId"); !ok {
		return
	}
	requestID, ok := ParamID(c, "requestId")
	if !ok {
		return
	}

	logged, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}

	db := dbpkg.DBInstance(c)
	request, err := workflows.ResolveRequest(db, requestID, logged.ID, accept)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{"groupRequest": request})
}
