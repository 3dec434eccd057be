package main

// go run cmd/shipsy/main.go

import (
	"shipsy/internal/app/config"
	"shipsy/internal/app/dsn"
	"shipsy/internal/app/handler"
	"shipsy/internal/app/pkg"
	"shipsy/internal/app/repository"
	"shipsy/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "shipsy/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
		c.Next()
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, errRep := repository.New(dsn.FromEnv(), conf.RedisEndpoint, conf.RedisPassword, conf.JwtKey)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	minioClient, err := utils.NewMinioClient(conf)
	if err != nil {
		// Photo upload degrades to 503, the rest of the API still works.
		logrus.Warnf("minio unavailable: %v", err)
		minioClient = nil
	}

	hand := handler.NewHandler(rep, minioClient, conf.MinioBucket)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
