package handler

import (
	"net/http"

	"shipsy/internal/app/handler/api"
	"shipsy/internal/app/handler/middleware"
	"shipsy/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

type Handler struct {
	Repository     *repository.Repository
	ShipAPIHandler *api.ShipHandler
	UserAPIHandler *api.UserHandler
}

func NewHandler(rep *repository.Repository, minioClient *minio.Client, minioBucket string) *Handler {
	return &Handler{
		Repository: rep,
		ShipAPIHandler: &api.ShipHandler{
			Repository:  rep,
			MinioClient: minioClient,
			MinioBucket: minioBucket,
		},
		UserAPIHandler: &api.UserHandler{Repository: rep},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Read endpoints are public.
		apiGroup.GET("/ships", h.ShipAPIHandler.ListShipsAPI)
		apiGroup.GET("/ships/stats/overview", h.ShipAPIHandler.FleetStatsAPI)
		apiGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)

		apiGroup.POST("/users/register", h.UserAPIHandler.RegisterUserAPI)
		apiGroup.POST("/users/login", h.UserAPIHandler.LoginUserAPI)

		authGroup := apiGroup.Group("", middleware.AuthMiddleware(h.Repository))
		{
			authGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
			authGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
			authGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
			authGroup.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)

			authGroup.POST("/users/logout", h.UserAPIHandler.LogoutUserAPI)
			authGroup.GET("/users/profile", h.UserAPIHandler.GetUserProfileAPI)
			authGroup.PUT("/users/profile", h.UserAPIHandler.UpdateUserProfileAPI)
		}
	}
}
