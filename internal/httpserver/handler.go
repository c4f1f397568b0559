package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"content-copilot/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "running in production mode")
	} else {
		srv.l.Infof(ctx, "running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	api.POST("/conversations/:collection/open", srv.conversationHandler.Open)
	api.POST("/conversations/:collection/send", srv.conversationHandler.Send)
	api.GET("/conversations/:collection", srv.conversationHandler.List)
	api.DELETE("/conversations/:collection/:subjectId", srv.conversationHandler.Delete)
	api.DELETE("/conversations/:collection", srv.conversationHandler.Clear)

	srv.l.Infof(ctx, "conversation routes registered under /api/v1/conversations")
}
