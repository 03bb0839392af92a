package controllers

import (
	"strings"

	"roleplay/apperrors"
	dbpkg "roleplay/db"
	"roleplay/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"
const ctxTokenKey = "auth_token"

// AuthRequired resolve o Bearer token contra api_tokens e carrega o usuário
// no contexto. Token de sessão é opaco: existir na tabela = sessão válida,
// linha apagada = sessão revogada.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, apperrors.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}
		tokenValue := strings.TrimSpace(h[len("Bearer "):])

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, apperrors.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		var token models.ApiToken
		if err := db.Where("token = ?", tokenValue).First(&token).Error; err != nil {
			RespondError(c, apperrors.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, token.UserID).Error; err != nil {
			RespondError(c, apperrors.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, token.Token)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// GetSessionToken returns the bearer token validated by AuthRequired.
func GetSessionToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
