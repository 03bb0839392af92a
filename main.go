package main

import (
	"log"
	"os"
	"strings"

	"roleplay/config"
	dbpkg "roleplay/db"
	"roleplay/mailer"
	"roleplay/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))
	dbpkg.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	m := mailer.NewResendMailer(cfg.Mail.ApiKey, cfg.Mail.From)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	r.Use(mailer.SetMailerToContext(m))
	router.Initialize(r, cfg)

	log.Printf("Roleplay listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
