package routes

import (
	"github.com/fumiya-dev/entrymarket-go/handlers"
	"github.com/fumiya-dev/entrymarket-go/middleware"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repositories.NewRepositories(db)
	svcs := services.New(repos)
	h := handlers.New(svcs)
	authz := middleware.NewAuth(repos)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/ws/entries", h.WS.WatchEntries)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		entries := auth.Group("/entries")
		{
			entries.GET("", h.Entry.ListEntries)
			entries.GET("/find", h.Entry.FindEntry)
			entries.POST("", h.Entry.CreateEntry)
			entries.PUT("", h.Entry.UpdateEntryStatus)
			entries.DELETE("", authz.Admin(), h.Entry.DeleteEntry)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.GetProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.GET("/:id/skills", h.Project.GetProjectSkills)
			projects.POST("", authz.Admin(), h.Project.CreateProject)
			projects.PUT("/:id", authz.Admin(), h.Project.UpdateProject)
			projects.PUT("/:id/skills", authz.Admin(), h.Project.UpdateProjectSkills)
			projects.DELETE("/:id", authz.Admin(), h.Project.DeleteProject)
		}

		skills := auth.Group("/skills")
		{
			skills.GET("", h.Skill.GetSkills)
			skills.GET("/find", h.Skill.GetSkillByName)
		}

		users := auth.Group("/users")
		{
			users.GET("", authz.Admin(), h.User.GetUsers)
			users.GET(":id", h.User.GetUserByID)
			users.POST("", authz.Admin(), h.User.CreateUser)
			users.PUT("/me", h.User.UpdateUser)
			users.DELETE(":id", authz.Admin(), h.User.DeleteUser)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authz.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
