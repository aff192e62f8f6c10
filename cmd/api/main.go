package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/verisclinic/clinic-scheduler/internal/config"
	dbpkg "github.com/verisclinic/clinic-scheduler/internal/db"
	"github.com/verisclinic/clinic-scheduler/internal/logger"
	"github.com/verisclinic/clinic-scheduler/internal/middleware"
	"github.com/verisclinic/clinic-scheduler/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
