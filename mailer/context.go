package mailer

import "github.com/gin-gonic/gin"

const mailerKey = "mailer"

// Use este middleware no setup do gin (mesmo esquema do db.SetDBtoContext).
func SetMailerToContext(m Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(mailerKey, m)
		c.Next()
	}
}

func Instance(c *gin.Context) Mailer {
	v, ok := c.Get(mailerKey)
	if !ok {
		return nil
	}
	m, _ := v.(Mailer)
	return m
}
