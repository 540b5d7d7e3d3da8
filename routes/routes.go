package routes

import (
	"github.com/gofiber/fiber/v2"

	"birthday-timeline-api/handler"
	"birthday-timeline-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.RelationshipHandler
	*handler.TimelineHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
	rc.GetAdminRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)

	app.Get("/auth/me", rc.UserHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Put("/profile", rc.UserHandler.EditProfile)

	app.Get("/timeline", rc.TimelineHandler.GetTimeline)
	app.Get("/stats", rc.TimelineHandler.GetStats)

	app.Get("/relationships", rc.RelationshipHandler.GetMyRelationships)
	app.Put("/relationships", rc.RelationshipHandler.ReplaceMyRelationships)
}

func (rc *ConfigRoute) GetAdminRoute() {
	app := rc.App.Group("/api/v1/admin")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.AdminOnly)

	app.Post("/users", rc.UserHandler.CreateUser)
	app.Put("/users/:userId", rc.UserHandler.UpdateUser)
	app.Delete("/users/:userId", rc.UserHandler.DeleteUser)

	app.Get("/relationships", rc.RelationshipHandler.GetAllRelationships)
	app.Post("/relationships", rc.RelationshipHandler.CreateRelationship)
	app.Delete("/relationships/:relationshipId", rc.RelationshipHandler.DeleteRelationship)
}
