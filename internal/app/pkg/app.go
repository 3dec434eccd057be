package pkg

import (
	"fmt"
	"net/http"
	"time"

	"shipsy/internal/app/config"
	"shipsy/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, h *handler.Handler) *App {
	return &App{
		Config:  cfg,
		Router:  router,
		Handler: h,
	}
}

// RunApp wires the routes and serves with per-request boundary timeouts.
func (a *App) RunApp() {
	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logrus.Infof("server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
