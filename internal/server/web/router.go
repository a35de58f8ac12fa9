package web

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/noflow/engine/internal/logging"
	"github.com/noflow/engine/internal/server/config"
	"github.com/noflow/engine/internal/server/services"
	"github.com/noflow/engine/internal/server/sessions"
)

// NewRouter wires the middleware chain and the account routes.
func NewRouter(cfg *config.Config, logger logging.Logger, svc *services.AuthService, codec *sessions.Codec, db *sql.DB) *gin.Engine {
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler(db))

	account := NewAccountHandler(svc, codec, logger)

	api := router.Group("/api")
	{
		acct := api.Group("/account")
		{
			acct.POST("/register", account.Register)
			acct.POST("/login", account.Login)
			acct.POST("/logout", account.Logout)
			acct.GET("/me", RequireSession(codec), account.Me)
		}
	}

	return router
}

// healthHandler reports liveness plus database reachability.
func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
