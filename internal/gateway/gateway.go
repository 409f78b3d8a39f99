// Package gateway exposes the guild service to game clients over HTTP. Every route answers 200 with
// the service Response envelope; clients check its success flag.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"guild-service/internal/guild"
	"guild-service/internal/service"
	"net/http"
	"sync"
	"time"
)

const shutdownTimeout = 10 * time.Second

func Run(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg *config.Config,
	svc service.GuildServiceServer) {

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           NewRouter(logger, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Infow("listening for HTTP requests", "port", cfg.HTTPPort)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to serve HTTP", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("failed to shut down HTTP server", "error", err)
		}
	}()
}

func NewRouter(logger *zap.SugaredLogger, svc service.GuildServiceServer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1/guild")
	{
		v1.POST("/create", handle(svc.CreateGuild))
		v1.POST("/search", handle(svc.SearchGuilds))
		v1.POST("/get", handle(svc.GetGuild))
		v1.POST("/leave", handle(svc.LeaveGuild))
		v1.POST("/notice", handle(svc.UpdateGuildNotice))
		v1.POST("/attendance", handle(svc.RecordAttendance))

		v1.POST("/join-requests", handle(svc.RequestToJoin))
		v1.POST("/join-requests/list", handle(svc.ListJoinRequests))
		v1.POST("/join-requests/approve", handle(svc.ApproveJoinRequest))
		v1.POST("/join-requests/decline", handle(svc.DeclineJoinRequest))

		v1.POST("/members/role", handle(svc.ChangeGuildRole))
		v1.POST("/members/ban", handle(svc.BanGuildMember))
	}

	return router
}

func handle[Req any](call func(context.Context, *Req) (*service.Response, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := new(Req)
		if err := c.ShouldBindJSON(req); err != nil {
			c.JSON(http.StatusOK, &service.Response{
				Message:   "malformed request body: " + err.Error(),
				ErrorType: string(guild.ErrorTypeValidation),
			})
			return
		}

		res, err := call(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusOK, &service.Response{
				Message:   "internal error",
				ErrorType: string(guild.ErrorTypeUpstream),
			})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}
