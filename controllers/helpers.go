package controllers

import (
	"strconv"

	"roleplay/apperrors"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, apperrors.BadRequest(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
