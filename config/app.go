package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"birthday-timeline-api/config/common"
	"birthday-timeline-api/config/logger"
	"birthday-timeline-api/handler"
	"birthday-timeline-api/middleware"
	"birthday-timeline-api/repository"
	"birthday-timeline-api/routes"
	"birthday-timeline-api/security"
	"birthday-timeline-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Config *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	// middleware CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Config:     newConfig,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newAuthRepository := repository.NewAuthRepository()
	newUserRepository := repository.NewUserRepository()
	newRelationshipRepository := repository.NewRelationshipRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT, aC.Config)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, newAuthRepository, newRelationshipRepository, aC.Validate, aC.GetDB(), aC.AppLog, aC.JWT, aC.Config)
	newRelationshipUsecase := usecase.NewRelationshipUsecase(newRelationshipRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.AppLog, aC.JWT)
	newTimelineUsecase := usecase.NewTimelineUsecase(newUserRepository, newRelationshipRepository, aC.GetDB(), aC.AppLog, aC.JWT)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newRelationshipHandler := handler.NewRelationshipHandler(newRelationshipUsecase, aC.Logger)
	newTimelineHandler := handler.NewTimelineHandler(newTimelineUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		UserHandler:         newUserHandler,
		RelationshipHandler: newRelationshipHandler,
		TimelineHandler:     newTimelineHandler,
	}
	route.GetRoute()
}
