package main

import (
	"github.com/fumiya-dev/entrymarket-go/config"
	"github.com/fumiya-dev/entrymarket-go/db"
	_ "github.com/fumiya-dev/entrymarket-go/docs"
	"github.com/fumiya-dev/entrymarket-go/middleware"
	"github.com/fumiya-dev/entrymarket-go/routes"
	"github.com/gin-gonic/gin"
)

// @title Entry Market API
// @version 1.0
// @description Project marketplace where users apply to projects and admins review the applications.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, db.DB)
	r.Run(":" + config.ServerPort)
}
