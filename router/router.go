package router

import (
	"log"

	"roleplay/config"
	"roleplay/controllers"
	"roleplay/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes + authenticated
// routes (bearer token). A listagem de pedidos é pública de propósito — o
// filtro é o query param master.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Public (no auth)
	r.POST("/users", Logger(), controllers.CreateUser)
	r.POST("/sessions", Logger(), controllers.CreateSession)
	r.POST("/forgot-password", Logger(), controllers.ForgotPassword)
	r.POST("/reset-password", Logger(), controllers.ResetPassword)
	r.GET("/groups/:groupId/requests", Logger(), controllers.ListGroupRequests)

	// Authenticated routes (token required)
	auth := r.Group("")
	auth.Use(controllers.AuthRequired())
	auth.PUT("/users/:id", Logger(), controllers.UpdateUser)
	auth.DELETE("/sessions", Logger(), controllers.DeleteSession)
	auth.POST("/groups", Logger(), controllers.CreateGroup)
	auth.POST("/groups/:groupId/requests", Logger(), controllers.CreateGroupRequest)
	auth.POST("/groups/:groupId/requests/:requestId/accept", Logger(), controllers.AcceptGroupRequest)
	auth.POST("/groups/:groupId/requests/:requestId/reject", Logger(), controllers.RejectGroupRequest)

	log.Printf("Routes initialized")
}
