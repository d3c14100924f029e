package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/Alaebelamkaddame/content-management/docs"
	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/Alaebelamkaddame/content-management/internal/infra/storage"
	"github.com/Alaebelamkaddame/content-management/internal/middleware"
	"github.com/Alaebelamkaddame/content-management/internal/modules/handler"
	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/Alaebelamkaddame/content-management/internal/telemetry"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config         *config.Config
	Log            *zap.Logger
	Tokens         *token.Manager
	ClientTokens   service.ClientTokenService
	Store          *storage.LocalStore
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
	ContentHandler *handler.ContentHandler
	ClientHandler  *handler.ClientHandler
	UploadHandler  *handler.UploadHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// uploaded assets
	r.Static("/uploads", d.Store.Dir())

	api := r.Group("/api")
	{
		api.POST("/auth/login", d.AuthHandler.Login)

		staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleTeamLeader)
		adminOnly := middleware.RequireRole(model.RoleAdmin)

		authed := api.Group("")
		authed.Use(middleware.Auth(d.Tokens))
		{
			users := authed.Group("/users")
			{
				users.GET("", staffOnly, d.UserHandler.ListUsers)
				users.POST("", adminOnly, d.UserHandler.CreateUser)
				users.GET("/:id", d.UserHandler.GetUser)
				users.PUT("/:id", d.UserHandler.UpdateUser)
				users.DELETE("/:id", adminOnly, d.UserHandler.DeleteUser)
				users.GET("/:id/projects", d.UserHandler.GetUserProjects)
			}

			projects := authed.Group("/projects")
			{
				projects.GET("", d.ProjectHandler.ListProjects)
				projects.POST("", staffOnly, d.ProjectHandler.CreateProject)
				projects.GET("/:id", d.ProjectHandler.GetProject)
				projects.PUT("/:id", staffOnly, d.ProjectHandler.UpdateProject)
				projects.DELETE("/:id", adminOnly, d.ProjectHandler.DeleteProject)

				projects.GET("/:id/assignments", d.ProjectHandler.GetAssignments)
				projects.PUT("/:id/assignments", staffOnly, d.ProjectHandler.ReplaceAssignments)
				projects.POST("/:id/assignments", staffOnly, d.ProjectHandler.AddAssignment)

				projects.GET("/:id/client-token", d.ProjectHandler.GetClientToken)
				projects.POST("/:id/client-token", staffOnly, d.ProjectHandler.IssueClientToken)
			}

			authed.DELETE("/assignments/:id", staffOnly, d.ProjectHandler.RemoveAssignment)
			authed.DELETE("/client-tokens/:id", staffOnly, d.ProjectHandler.DeleteClientToken)

			content := authed.Group("/content")
			{
				content.GET("", d.ContentHandler.ListContent)
				content.GET("/date-range", d.ContentHandler.ListContentRange)
				content.GET("/my-assignments", d.ContentHandler.MyAssignments)
				content.POST("", staffOnly, d.ContentHandler.CreateContent)
				content.GET("/:id", d.ContentHandler.GetContent)
				content.PUT("/:id", d.ContentHandler.UpdateContent)
				content.DELETE("/:id", staffOnly, d.ContentHandler.DeleteContent)
			}

			authed.POST("/upload", d.UploadHandler.Upload)
		}

		client := api.Group("/client")
		client.Use(middleware.ClientAuth(d.Tokens, d.ClientTokens))
		{
			client.GET("/project", d.ClientHandler.GetProject)
			client.GET("/content", d.ClientHandler.ListContent)
			client.PUT("/content/:id/notes", d.ClientHandler.UpdateNotes)
		}
	}

	return r
}
