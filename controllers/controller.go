package controllers

import (
	"roleplay/apperrors"

	"github.com/gin-gonic/gin"
)

// RespondError traduz o tipo do erro para status + corpo {code,message,status}.
// Os workflows nunca montam resposta HTTP; todo o mapeamento acontece aqui.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Status, appErr)
}

func RespondSuccess(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
