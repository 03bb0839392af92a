package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"roleplay/models"
	"roleplay/workflows"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordEndpoint(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, "email@mail.com", "user", "1234")

	w := s.do(t, http.MethodPost, "/forgot-password", gin.H{
		"email":            "email@mail.com",
		"resetPasswordUrl": "https://app.roleplay.com/reset",
	}, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	var token models.PasswordResetToken
	require.NoError(t, s.db.Where("user_id = ?", asID(t, user, "id")).First(&token).Error)

	assert.Equal(t, 1, s.mail.sent)
	assert.Equal(t, "email@mail.com", s.mail.to)
	assert.Equal(t, "user", s.mail.username)
	assert.Contains(t, s.mail.link, "https://app.roleplay.com/reset")
	assert.Contains(t, s.mail.link, token.Token)
}

func TestForgotPasswordMissingData(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/forgot-password", gin.H{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "BAD_REQUEST", body["code"])
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/forgot-password", gin.H{
		"email":            "nobody@mail.com",
		"resetPasswordUrl": "url",
	}, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, s.mail.sent)
}

// Cenário completo: pede reset, erra o token, acerta o token, loga com a
// senha nova e tenta o replay.
func TestResetPasswordFlow(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, "email@mail.com", "user", "1234")

	w := s.do(t, http.MethodPost, "/forgot-password", gin.H{
		"email":            "email@mail.com",
		"resetPasswordUrl": "url",
	}, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	var token models.PasswordResetToken
	require.NoError(t, s.db.Where("user_id = ?", asID(t, user, "id")).First(&token).Error)

	// Token errado.
	w = s.do(t, http.MethodPost, "/reset-password", gin.H{
		"token":    "wrong-token",
		"password": "abcdef",
	}, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])

	// Token certo.
	w = s.do(t, http.MethodPost, "/reset-password", gin.H{
		"token":    token.Token,
		"password": "abcdef",
	}, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// A senha nova autentica.
	s.login(t, "email@mail.com", "abcdef")

	// Replay do mesmo token.
	w = s.do(t, http.MethodPost, "/reset-password", gin.H{
		"token":    token.Token,
		"password": "abcdef",
	}, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}

func TestResetPasswordExpiredToken(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, "email@mail.com", "user", "1234")

	token := models.PasswordResetToken{
		UserID: asID(t, user, "id"),
		Token:  "token",
	}
	require.NoError(t, s.db.Create(&token).Error)
	old := time.Now().Add(-workflows.ResetTokenTTL - time.Minute)
	require.NoError(t, s.db.Model(&token).UpdateColumn("created_at", &old).Error)

	w := s.do(t, http.MethodPost, "/reset-password", gin.H{
		"token":    "token",
		"password": "abcdef",
	}, "")
	require.Equal(t, http.StatusGone, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "TOKEN_EXPIRED", body["code"])
	assert.Equal(t, "token has expired", body["message"])
	assert.Equal(t, float64(http.StatusGone), body["status"])

	// A senha antiga continua autenticando.
	s.login(t, "email@mail.com", "1234")
}

func TestResetPasswordMissingData(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/reset-password", gin.H{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decodeBody(t, w)["code"])
}
